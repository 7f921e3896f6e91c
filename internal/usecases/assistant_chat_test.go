package usecases

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

// assistantTurnStub replays a scripted sequence of turn outcomes.
type assistantTurnStub struct {
	outcomes []turnOutcome
	calls    int
}

type turnOutcome struct {
	text string
	err  error
}

func (s *assistantTurnStub) Execute(ctx context.Context, req domain.ChatRequest) (string, error) {
	outcome := s.outcomes[s.calls]
	s.calls++
	return outcome.text, outcome.err
}

func TestAssistantChatImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	req := domain.ChatRequest{Prompt: "안녕", OwnerSeq: 7, ClientAddr: "10.0.0.1"}
	rateLimited := &domain.LLMAPIErr{StatusCode: 429, Status: "RESOURCE_EXHAUSTED", Message: "rate limit"}

	tests := map[string]struct {
		outcomes       []turnOutcome
		expectedCalls  int
		expectedSleeps []time.Duration
		verify         func(t *testing.T, resp domain.ChatResponse)
	}{
		"success-renders-markdown": {
			outcomes:      []turnOutcome{{text: "**오늘 일정**\n- 우유 사기"}},
			expectedCalls: 1,
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.True(t, resp.Success)
				assert.Empty(t, resp.Error)
				assert.Contains(t, resp.Response, "<strong>오늘 일정</strong>")
				assert.Contains(t, resp.Response, "<li>우유 사기</li>")
				assert.Equal(t, "2026-03-10T15:30:00Z", resp.Timestamp)
			},
		},
		"rate-limit-retries-then-succeeds": {
			outcomes: []turnOutcome{
				{err: rateLimited},
				{err: rateLimited},
				{text: "다시 시도해서 성공했어요."},
			},
			expectedCalls: 3,
			// Exponential base plus fixed test jitter of 500ms.
			expectedSleeps: []time.Duration{1500 * time.Millisecond, 2500 * time.Millisecond},
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.True(t, resp.Success)
			},
		},
		"rate-limit-exhausts-attempts": {
			outcomes: []turnOutcome{
				{err: rateLimited},
				{err: rateLimited},
				{err: rateLimited},
			},
			expectedCalls:  3,
			expectedSleeps: []time.Duration{1500 * time.Millisecond, 2500 * time.Millisecond},
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.False(t, resp.Success)
				assert.Empty(t, resp.Response)
				assert.Equal(t, FailureMsg_Overloaded, resp.Error)
			},
		},
		"retry-after-hint-wins-over-schedule": {
			outcomes: []turnOutcome{
				{err: &domain.LLMAPIErr{StatusCode: 429, Status: "RESOURCE_EXHAUSTED", RetryAfterSeconds: 7}},
				{text: "성공"},
			},
			expectedCalls:  2,
			expectedSleeps: []time.Duration{7 * time.Second},
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.True(t, resp.Success)
			},
		},
		"delay-capped-at-thirty-seconds": {
			outcomes: []turnOutcome{
				{err: &domain.LLMAPIErr{StatusCode: 429, Status: "RESOURCE_EXHAUSTED", RetryAfterSeconds: 45}},
				{text: "성공"},
			},
			expectedCalls:  2,
			expectedSleeps: []time.Duration{30 * time.Second},
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.True(t, resp.Success)
			},
		},
		"auth-failure-never-retried": {
			outcomes:      []turnOutcome{{err: &domain.LLMAPIErr{StatusCode: 401, Status: "UNAUTHENTICATED"}}},
			expectedCalls: 1,
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.False(t, resp.Success)
				assert.Equal(t, FailureMsg_AuthFailed, resp.Error)
			},
		},
		"quota-exhausted": {
			outcomes: []turnOutcome{{err: &domain.LLMAPIErr{
				StatusCode: 403, Status: "PERMISSION_DENIED", Message: "quota exceeded for project",
			}}},
			expectedCalls: 1,
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.False(t, resp.Success)
				assert.Equal(t, FailureMsg_QuotaExhausted, resp.Error)
			},
		},
		"upstream-failure-never-retried": {
			outcomes:      []turnOutcome{{err: &domain.LLMAPIErr{StatusCode: 503, Status: "UNAVAILABLE"}}},
			expectedCalls: 1,
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.False(t, resp.Success)
				assert.Equal(t, FailureMsg_Upstream, resp.Error)
			},
		},
		"network-failure": {
			outcomes:      []turnOutcome{{err: &url.Error{Op: "Post", URL: "https://example.invalid", Err: errors.New("connection refused")}}},
			expectedCalls: 1,
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.False(t, resp.Success)
				assert.Equal(t, FailureMsg_Network, resp.Error)
			},
		},
		"bad-request": {
			outcomes:      []turnOutcome{{err: &domain.LLMAPIErr{StatusCode: 400, Status: "INVALID_ARGUMENT"}}},
			expectedCalls: 1,
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.False(t, resp.Success)
				assert.Equal(t, FailureMsg_BadRequest, resp.Error)
			},
		},
		"unclassified-failure": {
			outcomes:      []turnOutcome{{err: domain.ErrMalformedLLMResponse}},
			expectedCalls: 1,
			verify: func(t *testing.T, resp domain.ChatResponse) {
				assert.False(t, resp.Success)
				assert.Equal(t, FailureMsg_Generic, resp.Error)
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime)

			turn := &assistantTurnStub{outcomes: tt.outcomes}
			ac := NewAssistantChatImpl(turn, NewReplySanitizer(), timeProvider, discardLogger())
			ac.jitterMillis = func() int64 { return 500 }

			var sleeps []time.Duration
			ac.sleep = func(ctx context.Context, d time.Duration) error {
				sleeps = append(sleeps, d)
				return nil
			}

			resp := ac.Execute(context.Background(), req)

			assert.Equal(t, tt.expectedCalls, turn.calls)
			assert.Equal(t, tt.expectedSleeps, sleeps)
			tt.verify(t, resp)
		})
	}
}

func TestAssistantChatImpl_Execute_CanceledDuringBackoff(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	timeProvider := domain.NewMockCurrentTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime)

	turn := &assistantTurnStub{outcomes: []turnOutcome{
		{err: &domain.LLMAPIErr{StatusCode: 429, Status: "RESOURCE_EXHAUSTED"}},
	}}
	ac := NewAssistantChatImpl(turn, NewReplySanitizer(), timeProvider, discardLogger())
	ac.sleep = func(ctx context.Context, d time.Duration) error {
		return context.Canceled
	}

	resp := ac.Execute(context.Background(), domain.ChatRequest{Prompt: "안녕"})

	assert.Equal(t, 1, turn.calls)
	assert.False(t, resp.Success)
	assert.Equal(t, FailureMsg_Generic, resp.Error)
}

func TestSleepWithContext(t *testing.T) {
	err := sleepWithContext(context.Background(), time.Millisecond)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = sleepWithContext(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInitAssistantChat_Initialize(t *testing.T) {
	iac := InitAssistantChat{
		Turn:         &assistantTurnStub{},
		Sanitizer:    NewReplySanitizer(),
		TimeProvider: domain.NewMockCurrentTimeProvider(t),
		Logger:       discardLogger(),
	}

	ctx, err := iac.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[AssistantChat]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
