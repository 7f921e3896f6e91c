package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTodoAppServer_AssistantChat(t *testing.T) {
	successResp := domain.ChatResponse{
		Success:   true,
		Response:  "<p>안녕하세요!</p>",
		Timestamp: "2026-03-10T15:30:00Z",
	}
	failureResp := domain.ChatResponse{
		Success:   false,
		Error:     "문제가 발생했습니다. 잠시 후 다시 시도해주세요.",
		Timestamp: "2026-03-10T15:30:00Z",
	}

	tests := map[string]struct {
		userSeqHeader   string
		userNameHeader  string
		requestBody     []byte
		setExpectations func(*mocks.MockAssistantChat)
		expectedStatus  int
		expectedBody    *domain.ChatResponse
		expectedError   *errorResp
	}{
		"success-with-owner-context": {
			userSeqHeader:  "7",
			userNameHeader: "홍길동",
			requestBody:    serializeJSON(t, chatReq{Message: "내일 할 일 알려줘"}),
			setExpectations: func(m *mocks.MockAssistantChat) {
				m.EXPECT().
					Execute(mock.Anything, domain.ChatRequest{
						Prompt:      "내일 할 일 알려줘",
						OwnerSeq:    7,
						ClientAddr:  "192.0.2.1",
						DisplayName: "홍길동",
					}).
					Return(successResp)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &successResp,
		},
		"anonymous-request-still-served": {
			requestBody: serializeJSON(t, chatReq{Message: "안녕"}),
			setExpectations: func(m *mocks.MockAssistantChat) {
				m.EXPECT().
					Execute(mock.Anything, domain.ChatRequest{
						Prompt:     "안녕",
						ClientAddr: "192.0.2.1",
					}).
					Return(successResp)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &successResp,
		},
		"usecase-failure-still-responds-ok": {
			userSeqHeader: "7",
			requestBody:   serializeJSON(t, chatReq{Message: "내일 할 일 알려줘"}),
			setExpectations: func(m *mocks.MockAssistantChat) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(failureResp)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &failureResp,
		},
		"invalid-json-body": {
			requestBody:     []byte(`{"message":`),
			setExpectations: func(m *mocks.MockAssistantChat) {},
			expectedStatus:  http.StatusBadRequest,
			expectedError: &errorResp{Error: errorBody{
				Code:    ErrorCode_BadRequest,
				Message: "invalid request body: unexpected EOF",
			}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockChat := mocks.NewMockAssistantChat(t)
			tt.setExpectations(mockChat)

			server := TodoAppServer{
				AssistantChatUseCase: mockChat,
				Logger:               discardLogger(),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/assistant/chat", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			if tt.userSeqHeader != "" {
				req.Header.Set(headerUserSeq, tt.userSeqHeader)
			}
			if tt.userNameHeader != "" {
				req.Header.Set(headerUserName, tt.userNameHeader)
			}
			w := httptest.NewRecorder()

			server.AssistantChat(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response domain.ChatResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}
			if tt.expectedError != nil {
				var response errorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}
