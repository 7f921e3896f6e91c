package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateTodoImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	patch := domain.TodoPatch{Completed: boolPtr(true)}
	updated := domain.Todo{
		Seq:         3,
		OwnerSeq:    7,
		Content:     "우유 사기",
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CompletedAt: &fixedTime,
		UpdatedAt:   fixedTime,
		UpdatedIP:   "10.0.0.1",
	}

	tests := map[string]struct {
		seq             int64
		ownerSeq        int64
		patch           domain.TodoPatch
		setExpectations func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider)
		expectedTodo    domain.Todo
		expectedErr     error
	}{
		"success": {
			seq:      3,
			ownerSeq: 7,
			patch:    patch,
			setExpectations: func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
				repo.EXPECT().UpdateTodo(mock.Anything, int64(3), int64(7), patch, fixedTime, "10.0.0.1").
					Return(updated, true, nil)
			},
			expectedTodo: updated,
		},
		"not-found": {
			seq:      99,
			ownerSeq: 7,
			patch:    patch,
			setExpectations: func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
				repo.EXPECT().UpdateTodo(mock.Anything, int64(99), int64(7), patch, fixedTime, "10.0.0.1").
					Return(domain.Todo{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("todo not found"),
		},
		"validation-error-missing-seq": {
			seq:         0,
			ownerSeq:    7,
			patch:       patch,
			expectedErr: domain.NewValidationErr("todo_seq is required"),
		},
		"validation-error-missing-owner": {
			seq:         3,
			ownerSeq:    0,
			patch:       patch,
			expectedErr: domain.NewValidationErr("owner is required"),
		},
		"validation-error-empty-patch": {
			seq:         3,
			ownerSeq:    7,
			patch:       domain.TodoPatch{},
			expectedErr: domain.NewValidationErr("no fields to update"),
		},
		"validation-error-blank-content": {
			seq:         3,
			ownerSeq:    7,
			patch:       domain.TodoPatch{Content: strPtr("  ")},
			expectedErr: domain.NewValidationErr("content cannot be empty"),
		},
		"repository-error": {
			seq:      3,
			ownerSeq: 7,
			patch:    patch,
			setExpectations: func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
				repo.EXPECT().UpdateTodo(mock.Anything, int64(3), int64(7), patch, fixedTime, "10.0.0.1").
					Return(domain.Todo{}, false, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTodoRepository(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo, timeProvider)
			}

			ut := NewUpdateTodoImpl(repo, timeProvider)

			got, gotErr := ut.Execute(context.Background(), tt.seq, tt.ownerSeq, tt.patch, "10.0.0.1")
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedTodo, got)
		})
	}
}

func TestInitUpdateTodo_Initialize(t *testing.T) {
	iut := InitUpdateTodo{
		TodoRepo:     domain.NewMockTodoRepository(t),
		TimeProvider: domain.NewMockCurrentTimeProvider(t),
	}

	ctx, err := iut.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[UpdateTodo]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
