package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CreateTodo defines the interface for the CreateTodo use case.
type CreateTodo interface {
	Execute(ctx context.Context, ownerSeq int64, content string, date time.Time, note *string, clientIP string) (domain.Todo, error)
}

// CreateTodoImpl is the implementation of the CreateTodo use case.
type CreateTodoImpl struct {
	repo         domain.TodoRepository
	timeProvider domain.CurrentTimeProvider
}

// NewCreateTodoImpl creates a new instance of CreateTodoImpl.
func NewCreateTodoImpl(repo domain.TodoRepository, timeProvider domain.CurrentTimeProvider) CreateTodoImpl {
	return CreateTodoImpl{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Execute creates a new todo item.
func (ct CreateTodoImpl) Execute(ctx context.Context, ownerSeq int64, content string, date time.Time, note *string, clientIP string) (domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := ct.timeProvider.Now()
	todo := domain.Todo{
		OwnerSeq:  ownerSeq,
		Content:   strings.TrimSpace(content),
		Date:      domain.DateOnly(date),
		Note:      note,
		CreatedAt: now,
		CreatedIP: clientIP,
		UpdatedAt: now,
		UpdatedIP: clientIP,
	}
	if err := todo.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	created, err := ct.repo.CreateTodo(spanCtx, todo)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}
	return created, nil
}

// InitCreateTodo initializes the CreateTodo use case and registers it in the dependency container.
type InitCreateTodo struct {
	TodoRepo     domain.TodoRepository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the CreateTodoImpl use case and registers it in the dependency container.
func (ict InitCreateTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTodo](NewCreateTodoImpl(ict.TodoRepo, ict.TimeProvider))
	return ctx, nil
}
