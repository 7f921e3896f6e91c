package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTodoImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	todo := domain.Todo{
		OwnerSeq:  7,
		Content:   "우유 사기",
		Date:      date,
		CreatedAt: fixedTime,
		CreatedIP: "10.0.0.1",
		UpdatedAt: fixedTime,
		UpdatedIP: "10.0.0.1",
	}
	created := todo
	created.Seq = 42

	tests := map[string]struct {
		content         string
		setExpectations func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider)
		expectedTodo    domain.Todo
		expectedErr     error
	}{
		"success": {
			content: "우유 사기",
			setExpectations: func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
				repo.EXPECT().CreateTodo(mock.Anything, todo).Return(created, nil)
			},
			expectedTodo: created,
		},
		"trims-content": {
			content: "  우유 사기  ",
			setExpectations: func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
				repo.EXPECT().CreateTodo(mock.Anything, todo).Return(created, nil)
			},
			expectedTodo: created,
		},
		"validation-error-empty-content": {
			content: "   ",
			setExpectations: func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
			},
			expectedErr: domain.NewValidationErr("content cannot be empty"),
		},
		"validation-error-long-content": {
			content: strings.Repeat("가", 501),
			setExpectations: func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
			},
			expectedErr: domain.NewValidationErr("content must be at most 500 characters"),
		},
		"repository-error": {
			content: "우유 사기",
			setExpectations: func(repo *domain.MockTodoRepository, timeProvider *domain.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
				repo.EXPECT().CreateTodo(mock.Anything, todo).Return(domain.Todo{}, errors.New("database error"))
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

			ct := NewCreateTodoImpl(repo, timeProvider)

			got, gotErr := ct.Execute(context.Background(), 7, tt.content, date, nil, "10.0.0.1")
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedTodo, got)
		})
	}
}

func TestInitCreateTodo_Initialize(t *testing.T) {
	ict := InitCreateTodo{
		TodoRepo:     domain.NewMockTodoRepository(t),
		TimeProvider: domain.NewMockCurrentTimeProvider(t),
	}

	ctx, err := ict.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[CreateTodo]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
