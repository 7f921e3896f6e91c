package usecases

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/url"
	"time"

	"github.com/bhyunvin/TO-DO-list-sub001/internal/domain"
	"github.com/bhyunvin/TO-DO-list-sub001/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

const (
	// Maximum number of generation attempts per chat request.
	MAX_ASSISTANT_ATTEMPTS = 3

	// Base and ceiling of the rate-limit backoff, in milliseconds.
	RETRY_BASE_DELAY_MS = 1000
	RETRY_MAX_DELAY_MS  = 30000
)

// User-facing failure messages. The assistant speaks Korean, so do these.
const (
	FailureMsg_AuthFailed     = "AI 서비스 인증에 실패했습니다. 관리자에게 문의해주세요."
	FailureMsg_Overloaded     = "현재 AI 어시스턴트 이용량이 많습니다. 잠시 후 다시 시도해주세요."
	FailureMsg_QuotaExhausted = "AI 서비스 사용 한도를 초과했습니다. 잠시 후 다시 시도해주세요."
	FailureMsg_Upstream       = "AI 서비스에 일시적인 문제가 발생했습니다. 잠시 후 다시 시도해주세요."
	FailureMsg_Network        = "AI 서비스에 연결할 수 없습니다. 네트워크 상태를 확인해주세요."
	FailureMsg_BadRequest     = "요청 처리 중 오류가 발생했습니다. 다시 시도해주세요."
	FailureMsg_Generic        = "문제가 발생했습니다. 잠시 후 다시 시도해주세요."
)

// AssistantChat defines the interface for the chat entry point. It absorbs
// every failure into a ChatResponse and never returns an error.
type AssistantChat interface {
	Execute(ctx context.Context, req domain.ChatRequest) domain.ChatResponse
}

// AssistantChatImpl is the implementation of the AssistantChat use case.
type AssistantChatImpl struct {
	turn         AssistantTurn
	sanitizer    ReplySanitizer
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	jitterMillis func() int64
	sleep        func(ctx context.Context, d time.Duration) error
}

// NewAssistantChatImpl creates a new instance of AssistantChatImpl.
func NewAssistantChatImpl(
	turn AssistantTurn,
	sanitizer ReplySanitizer,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) AssistantChatImpl {
	return AssistantChatImpl{
		turn:         turn,
		sanitizer:    sanitizer,
		timeProvider: timeProvider,
		logger:       logger,
		jitterMillis: func() int64 { return rand.Int63n(RETRY_BASE_DELAY_MS + 1) },
		sleep:        sleepWithContext,
	}
}

// Execute runs the assistant exchange with rate-limit retries and maps any
// failure to a localized message.
func (ac AssistantChatImpl) Execute(ctx context.Context, req domain.ChatRequest) domain.ChatResponse {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var (
		markdown string
		err      error
	)
	for attempt := 1; attempt <= MAX_ASSISTANT_ATTEMPTS; attempt++ {
		if attempt == 1 {
			RecordAssistantAttempt(spanCtx, "first")
		} else {
			RecordAssistantAttempt(spanCtx, "retry")
		}

		markdown, err = ac.turn.Execute(spanCtx, req)
		if err == nil {
			break
		}

		apiErr := &domain.LLMAPIErr{}
		if !errors.As(err, &apiErr) || !apiErr.IsRateLimit() || attempt == MAX_ASSISTANT_ATTEMPTS {
			break
		}

		delay := ac.rateLimitDelay(attempt, apiErr.RetryAfterSeconds)
		ac.logger.Printf("assistant: rate limited, attempt %d/%d, retrying in %s", attempt, MAX_ASSISTANT_ATTEMPTS, delay)
		if sleepErr := ac.sleep(spanCtx, delay); sleepErr != nil {
			err = sleepErr
			break
		}
	}

	timestamp := ac.timeProvider.Now().Format(time.RFC3339)
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		ac.logger.Printf("assistant: chat failed: %v", err)
		return domain.ChatResponse{
			Success:   false,
			Error:     failureMessage(err),
			Timestamp: timestamp,
		}
	}

	html, err := ac.sanitizer.Sanitize(markdown)
	if telemetry.RecordErrorAndStatus(span, err) {
		ac.logger.Printf("assistant: reply rendering failed: %v", err)
		return domain.ChatResponse{
			Success:   false,
			Error:     FailureMsg_Generic,
			Timestamp: timestamp,
		}
	}

	span.SetAttributes(attribute.Int("assistant.response_chars", len(html)))
	return domain.ChatResponse{
		Success:   true,
		Response:  html,
		Timestamp: timestamp,
	}
}

// rateLimitDelay computes the backoff before the next attempt. A Retry-After
// hint from the service wins over the exponential schedule; either way the
// delay never exceeds RETRY_MAX_DELAY_MS.
func (ac AssistantChatImpl) rateLimitDelay(attempt int, retryAfterSeconds int) time.Duration {
	var delayMs int64
	if retryAfterSeconds > 0 {
		delayMs = int64(retryAfterSeconds) * 1000
	} else {
		delayMs = RETRY_BASE_DELAY_MS*(1<<(attempt-1)) + ac.jitterMillis()
	}
	if delayMs > RETRY_MAX_DELAY_MS {
		delayMs = RETRY_MAX_DELAY_MS
	}
	return time.Duration(delayMs) * time.Millisecond
}

// failureMessage maps an internal error to the message shown to the user.
func failureMessage(err error) string {
	apiErr := &domain.LLMAPIErr{}
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401:
			return FailureMsg_AuthFailed
		case apiErr.IsRateLimit():
			return FailureMsg_Overloaded
		case apiErr.IsQuotaExhausted():
			return FailureMsg_QuotaExhausted
		case apiErr.StatusCode >= 500:
			return FailureMsg_Upstream
		default:
			return FailureMsg_BadRequest
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return FailureMsg_Network
	}

	return FailureMsg_Generic
}

// sleepWithContext waits for d unless the context ends first.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// InitAssistantChat initializes the AssistantChat use case and registers it
// in the dependency container.
type InitAssistantChat struct {
	Turn         AssistantTurn              `resolve:""`
	Sanitizer    ReplySanitizer             `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
}

// Initialize initializes the AssistantChatImpl use case and registers it in
// the dependency container.
func (iac InitAssistantChat) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AssistantChat](NewAssistantChatImpl(
		iac.Turn,
		iac.Sanitizer,
		iac.TimeProvider,
		iac.Logger,
	))
	return ctx, nil
}
