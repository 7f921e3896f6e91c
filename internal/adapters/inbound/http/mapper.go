package http

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
)

// Request owner context comes from the reverse proxy in front of this
// service: X-User-Seq carries the authenticated user's sequence and
// X-User-Name the display name.
const (
	headerUserSeq  = "X-User-Seq"
	headerUserName = "X-User-Name"
)

type todoResp struct {
	TodoSeq     int64      `json:"todoSeq"`
	TodoContent string     `json:"todoContent"`
	TodoDate    string     `json:"todoDate"`
	TodoNote    *string    `json:"todoNote,omitempty"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type listTodosResp struct {
	Items      []todoResp `json:"items"`
	TotalCount int        `json:"totalCount"`
}

type createTodoReq struct {
	TodoContent string  `json:"todoContent"`
	TodoDate    string  `json:"todoDate"`
	TodoNote    *string `json:"todoNote"`
}

type updateTodoReq struct {
	TodoContent *string `json:"todoContent"`
	TodoNote    *string `json:"todoNote"`
	IsCompleted *bool   `json:"isCompleted"`
}

type chatReq struct {
	Message string `json:"message"`
}

func toError(err error) errorResp {
	switch e := err.(type) {
	case *domain.ValidationErr:
		return newErrorResp(ErrorCode_BadRequest, e.Error())
	case *domain.NotFoundErr:
		return newErrorResp(ErrorCode_NotFound, e.Error())
	default:
		return newErrorResp(ErrorCode_Internal, "internal server error")
	}
}

func toTodo(t domain.Todo) todoResp {
	return todoResp{
		TodoSeq:     t.Seq,
		TodoContent: t.Content,
		TodoDate:    t.Date.Format(time.DateOnly),
		TodoNote:    t.Note,
		IsCompleted: t.IsCompleted(),
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ownerSeqFromRequest extracts the authenticated user's sequence. Zero means
// the request carries no owner context.
func ownerSeqFromRequest(r *http.Request) int64 {
	seq, err := strconv.ParseInt(r.Header.Get(headerUserSeq), 10, 64)
	if err != nil || seq <= 0 {
		return 0
	}
	return seq
}

// clientAddrFromRequest extracts the caller IP for audit columns.
func clientAddrFromRequest(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
