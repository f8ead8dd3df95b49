package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/utils"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		incoming      string
		wantSame      bool
		wantValidUUID bool
	}{
		{name: "incoming trace ID is reused", incoming: "my-custom-trace-id", wantSame: true},
		{name: "UUID incoming trace ID", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSame: true},
		{name: "missing trace ID is generated", wantValidUUID: true},
	}

	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, captured := executeWithTraceID(h, tt.incoming)

			require.NotNil(t, captured)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantValidUUID {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}
	seen := map[string]bool{}

	for range 50 {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)
		assert.False(t, seen[id], "duplicate trace id %s", id)
		seen[id] = true
	}
}

func TestWithTraceID_LoggerInContextCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	_, captured := executeWithTraceID(h, "trace-42")
	require.NotNil(t, captured)

	logger.FromRequest(captured).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	h := &Handler{logger: logger.Nop(), traceIDs: utils.NewUUIDGenerator()}

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr, _ := executeWithTraceID(h, "")
			assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
		}()
	}
	wg.Wait()
}
