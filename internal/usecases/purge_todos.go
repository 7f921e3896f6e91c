package usecases

import (
	"context"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// PurgeTodos defines the interface for the PurgeTodos use case.
type PurgeTodos interface {
	// Execute permanently removes soft-deleted todos older than retentionDays
	// and returns the number of rows purged.
	Execute(ctx context.Context, retentionDays int) (int64, error)
}

// PurgeTodosImpl is the implementation of the PurgeTodos use case.
type PurgeTodosImpl struct {
	repo         domain.TodoRepository
	timeProvider domain.CurrentTimeProvider
}

// NewPurgeTodosImpl creates a new instance of PurgeTodosImpl.
func NewPurgeTodosImpl(repo domain.TodoRepository, timeProvider domain.CurrentTimeProvider) PurgeTodosImpl {
	return PurgeTodosImpl{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// Execute purges soft-deleted todos past the retention window.
func (pt PurgeTodosImpl) Execute(ctx context.Context, retentionDays int) (int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if retentionDays < 0 {
		return 0, domain.NewValidationErr("retention days cannot be negative")
	}

	cutoff := pt.timeProvider.Now().AddDate(0, 0, -retentionDays)
	purged, err := pt.repo.PurgeDeletedBefore(spanCtx, cutoff)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("todos.purged", purged))
	return purged, nil
}

// InitPurgeTodos initializes the PurgeTodos use case and registers it in the dependency container.
type InitPurgeTodos struct {
	TodoRepo     domain.TodoRepository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the PurgeTodosImpl use case and registers it in the dependency container.
func (ipt InitPurgeTodos) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[PurgeTodos](NewPurgeTodosImpl(ipt.TodoRepo, ipt.TimeProvider))
	return ctx, nil
}
