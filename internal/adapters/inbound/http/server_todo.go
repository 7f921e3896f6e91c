package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
)

// ListTodos serves GET /api/todos. An optional date=YYYY-MM-DD query
// parameter narrows the listing to a single day.
func (api TodoAppServer) ListTodos(w http.ResponseWriter, r *http.Request) {
	ownerSeq := ownerSeqFromRequest(r)
	if ownerSeq == 0 {
		respondError(w, newErrorResp(ErrorCode_Unauthorized, "missing user context"))
		return
	}

	var opts []domain.ListTodoOption
	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		date, err := time.Parse(time.DateOnly, rawDate)
		if err != nil {
			respondError(w, newErrorResp(ErrorCode_BadRequest, fmt.Sprintf("invalid date parameter: %q", rawDate)))
			return
		}
		opts = append(opts, domain.WithDateOn(date))
	}

	todos, err := api.ListTodosUseCase.Execute(r.Context(), ownerSeq, opts...)
	if err != nil {
		api.Logger.Printf("Error listing todos: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := listTodosResp{Items: []todoResp{}, TotalCount: len(todos)}
	for _, t := range todos {
		resp.Items = append(resp.Items, toTodo(t))
	}

	respondJSON(w, http.StatusOK, resp)
}

// CreateTodo serves POST /api/todos.
func (api TodoAppServer) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ownerSeq := ownerSeqFromRequest(r)
	if ownerSeq == 0 {
		respondError(w, newErrorResp(ErrorCode_Unauthorized, "missing user context"))
		return
	}

	var req createTodoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	date, err := time.Parse(time.DateOnly, req.TodoDate)
	if err != nil {
		// Accept phrases like "내일" or "2026.3.10" alongside the strict form.
		var ok bool
		date, ok = domain.ExtractTimeFromText(req.TodoDate, api.TimeProvider.Now(), time.UTC)
		if !ok {
			respondError(w, newErrorResp(ErrorCode_BadRequest, fmt.Sprintf("invalid todoDate: %q", req.TodoDate)))
			return
		}
	}

	todo, err := api.CreateTodoUseCase.Execute(r.Context(), ownerSeq, req.TodoContent, date, req.TodoNote, clientAddrFromRequest(r))
	if err != nil {
		api.Logger.Printf("Error creating todo: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toTodo(todo))
}

// UpdateTodo serves PATCH /api/todos/{todoSeq}.
func (api TodoAppServer) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ownerSeq := ownerSeqFromRequest(r)
	if ownerSeq == 0 {
		respondError(w, newErrorResp(ErrorCode_Unauthorized, "missing user context"))
		return
	}

	seq, err := strconv.ParseInt(r.PathValue("todoSeq"), 10, 64)
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, "invalid todoSeq path parameter"))
		return
	}

	var req updateTodoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	patch := domain.TodoPatch{
		Content:   req.TodoContent,
		Note:      req.TodoNote,
		Completed: req.IsCompleted,
	}

	todo, err := api.UpdateTodoUseCase.Execute(r.Context(), seq, ownerSeq, patch, clientAddrFromRequest(r))
	if err != nil {
		api.Logger.Printf("Error updating todo: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTodo(todo))
}

// DeleteTodo serves DELETE /api/todos/{todoSeq}.
func (api TodoAppServer) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ownerSeq := ownerSeqFromRequest(r)
	if ownerSeq == 0 {
		respondError(w, newErrorResp(ErrorCode_Unauthorized, "missing user context"))
		return
	}

	seq, err := strconv.ParseInt(r.PathValue("todoSeq"), 10, 64)
	if err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, "invalid todoSeq path parameter"))
		return
	}

	if err := api.DeleteTodoUseCase.Execute(r.Context(), seq, ownerSeq, clientAddrFromRequest(r)); err != nil {
		api.Logger.Printf("Error deleting todo: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
