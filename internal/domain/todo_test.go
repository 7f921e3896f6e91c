package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodo_Validate(t *testing.T) {
	valid := Todo{
		OwnerSeq: 7,
		Content:  "Buy groceries",
		Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := map[string]struct {
		mutate      func(*Todo)
		expectedErr string
	}{
		"valid": {
			mutate: func(td *Todo) {},
		},
		"empty-content": {
			mutate:      func(td *Todo) { td.Content = "" },
			expectedErr: "content cannot be empty",
		},
		"content-too-long": {
			mutate: func(td *Todo) {
				long := make([]byte, 501)
				for i := range long {
					long[i] = 'a'
				}
				td.Content = string(long)
			},
			expectedErr: "content must be at most 500 characters",
		},
		"zero-date": {
			mutate:      func(td *Todo) { td.Date = time.Time{} },
			expectedErr: "date cannot be empty",
		},
		"missing-owner": {
			mutate:      func(td *Todo) { td.OwnerSeq = 0 },
			expectedErr: "owner is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			todo := valid
			tt.mutate(&todo)

			err := todo.Validate()
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}

func TestTodo_IsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	completed := now.Add(-time.Hour)

	tests := map[string]struct {
		todo     Todo
		expected bool
	}{
		"incomplete-dated-yesterday": {
			todo:     Todo{Date: now.AddDate(0, 0, -1)},
			expected: true,
		},
		"incomplete-dated-today": {
			todo:     Todo{Date: now},
			expected: false,
		},
		"incomplete-dated-today-midnight": {
			todo:     Todo{Date: DateOnly(now)},
			expected: false,
		},
		"completed-dated-yesterday": {
			todo:     Todo{Date: now.AddDate(0, 0, -1), CompletedAt: &completed},
			expected: false,
		},
		"incomplete-dated-tomorrow": {
			todo:     Todo{Date: now.AddDate(0, 0, 1)},
			expected: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.todo.IsOverdue(now))
		})
	}
}

func TestChatRequest_HasOwnerContext(t *testing.T) {
	assert.True(t, ChatRequest{OwnerSeq: 1, ClientAddr: "10.0.0.1"}.HasOwnerContext())
	assert.False(t, ChatRequest{OwnerSeq: 0, ClientAddr: "10.0.0.1"}.HasOwnerContext())
	assert.False(t, ChatRequest{OwnerSeq: 1}.HasOwnerContext())
}
