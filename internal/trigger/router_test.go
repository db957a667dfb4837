package trigger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchbench/orchbench/internal/common/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type countingSubmit struct {
	mu          sync.Mutex
	instanceIds []string
}

func (s *countingSubmit) submit(ctx context.Context, instanceId string, workloadName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instanceIds = append(s.instanceIds, instanceId)
	return nil
}

func newTestServer(submit *countingSubmit) *gin.Engine {
	server := NewServer(submit.submit, 3)
	server.Clock = &util.DummyClock{T: time.Date(2024, 4, 24, 4, 8, 47, 0, time.UTC)}
	return NewRouter(server)
}

func TestStartHandler(t *testing.T) {
	submit := &countingSubmit{}
	router := newTestServer(submit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/start?count=5&prefix=nightly", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "nightly20240424-040847", body["prefix"])
	assert.Equal(t, float64(5), body["submitted"])
	assert.Equal(t, float64(0), body["failed"])
	assert.Equal(t, "Scheduled 5 orchestrations prefixed with 'nightly20240424-040847'.", body["message"])
	assert.Len(t, submit.instanceIds, 5)
}

func TestStartHandler_MissingCount(t *testing.T) {
	submit := &countingSubmit{}
	router := newTestServer(submit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/start", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, submit.instanceIds)
}

func TestStartHandler_NonPositiveCount(t *testing.T) {
	for _, rawCount := range []string{"0", "-3", "five", "1.5"} {
		submit := &countingSubmit{}
		router := newTestServer(submit)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/start?count="+rawCount, nil)
		router.ServeHTTP(w, req)

		assert.Equalf(t, http.StatusBadRequest, w.Code, "count=%s", rawCount)
		assert.Empty(t, submit.instanceIds)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestServer(&countingSubmit{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
