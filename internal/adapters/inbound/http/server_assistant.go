package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
)

// AssistantChat serves POST /api/assistant/chat. The assistant answers
// read-only questions even without owner context, so unlike the todo
// endpoints this one does not reject anonymous requests. The usecase
// maps every failure to a user-facing message, so the handler always
// responds 200 once the body decodes.
func (api TodoAppServer) AssistantChat(w http.ResponseWriter, r *http.Request) {
	var req chatReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newErrorResp(ErrorCode_BadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	resp := api.AssistantChatUseCase.Execute(r.Context(), domain.ChatRequest{
		Prompt:      req.Message,
		OwnerSeq:    ownerSeqFromRequest(r),
		ClientAddr:  clientAddrFromRequest(r),
		DisplayName: r.Header.Get(headerUserName),
	})

	respondJSON(w, http.StatusOK, resp)
}
