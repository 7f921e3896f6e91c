package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := map[string]struct {
		incomingID string
	}{
		"generates-id-when-absent":  {},
		"preserves-id-when-present": {incomingID: "client-supplied-id"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var seenID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = r.Header.Get(headerRequestID)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			if tt.incomingID != "" {
				req.Header.Set(headerRequestID, tt.incomingID)
			}
			w := httptest.NewRecorder()

			requestIDMiddleware(next).ServeHTTP(w, req)

			echoed := w.Header().Get(headerRequestID)
			assert.Equal(t, seenID, echoed)

			if tt.incomingID != "" {
				assert.Equal(t, tt.incomingID, echoed)
			} else {
				_, err := uuid.Parse(echoed)
				assert.NoError(t, err)
			}
		})
	}
}
