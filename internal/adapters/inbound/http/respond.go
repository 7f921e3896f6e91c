package http

import (
	"encoding/json"
	"net/http"
)

type errorCode string

const (
	ErrorCode_BadRequest   errorCode = "BAD_REQUEST"
	ErrorCode_Unauthorized errorCode = "UNAUTHORIZED"
	ErrorCode_NotFound     errorCode = "NOT_FOUND"
	ErrorCode_Internal     errorCode = "INTERNAL_ERROR"
)

type errorResp struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

func newErrorResp(code errorCode, message string) errorResp {
	return errorResp{Error: errorBody{Code: code, Message: message}}
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err errorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case ErrorCode_BadRequest:
		statusCode = http.StatusBadRequest
	case ErrorCode_Unauthorized:
		statusCode = http.StatusUnauthorized
	case ErrorCode_NotFound:
		statusCode = http.StatusNotFound
	}
	respondJSON(w, statusCode, err)
}
