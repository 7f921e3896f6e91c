package usecases

import (
	"context"
	"strings"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// UpdateTodo defines the interface for the UpdateTodo use case.
type UpdateTodo interface {
	Execute(ctx context.Context, seq, ownerSeq int64, patch domain.TodoPatch, clientIP string) (domain.Todo, error)
}

// UpdateTodoImpl is the implementation of the UpdateTodo use case.
type UpdateTodoImpl struct {
	repo         domain.TodoRepository
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateTodoImpl creates a new instance of UpdateTodoImpl.
func NewUpdateTodoImpl(repo domain.TodoRepository, timeProvider domain.CurrentTimeProvider) UpdateTodoImpl {
	return UpdateTodoImpl{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Execute applies a partial update to one of the owner's todo items.
func (ut UpdateTodoImpl) Execute(ctx context.Context, seq, ownerSeq int64, patch domain.TodoPatch, clientIP string) (domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := validateUpdateTodoInputParams(seq, ownerSeq, patch); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	updated, found, err := ut.repo.UpdateTodo(spanCtx, seq, ownerSeq, patch, ut.timeProvider.Now(), clientIP)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}
	if !found {
		err := domain.NewNotFoundErr("todo not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Todo{}, err
	}
	return updated, nil
}

func validateUpdateTodoInputParams(seq, ownerSeq int64, patch domain.TodoPatch) error {
	if seq <= 0 {
		return domain.NewValidationErr("todo_seq is required")
	}
	if ownerSeq <= 0 {
		return domain.NewValidationErr("owner is required")
	}
	if patch.IsEmpty() {
		return domain.NewValidationErr("no fields to update")
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return domain.NewValidationErr("content cannot be empty")
	}
	return nil
}

// InitUpdateTodo initializes the UpdateTodo use case and registers it in the dependency container.
type InitUpdateTodo struct {
	TodoRepo     domain.TodoRepository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the UpdateTodoImpl use case and registers it in the dependency container.
func (iut InitUpdateTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateTodo](NewUpdateTodoImpl(iut.TodoRepo, iut.TimeProvider))
	return ctx, nil
}
