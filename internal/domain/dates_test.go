package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractTimeFromText(t *testing.T) {
	ref := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		text     string
		expected time.Time
		found    bool
	}{
		"iso-date": {
			text:     "create a todo for 2026-04-30 please",
			expected: time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
			found:    true,
		},
		"dotted-date": {
			text:     "2026.4.30까지",
			expected: time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
			found:    true,
		},
		"today-english": {
			text:     "what is due today?",
			expected: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			found:    true,
		},
		"tomorrow-korean": {
			text:     "내일 할 일 추가해줘",
			expected: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			found:    true,
		},
		"day-after-tomorrow-korean": {
			text:     "모레까지 끝내기",
			expected: time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			found:    true,
		},
		"yesterday-english": {
			text:     "I missed it yesterday",
			expected: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			found:    true,
		},
		"no-date": {
			text:  "remind me about the dentist",
			found: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, found := ExtractTimeFromText(tt.text, ref, time.UTC)
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
