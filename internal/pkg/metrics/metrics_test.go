package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTransitionsCounter(t *testing.T) {
	before := testutil.ToFloat64(Transitions.WithLabelValues("ACCEPTED", "ok"))
	Transitions.WithLabelValues("ACCEPTED", "ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Transitions.WithLabelValues("ACCEPTED", "ok")))
}

func TestRegisterExposesMetrics(t *testing.T) {
	e := echo.New()
	Register(e)
	SessionsCreated.Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "escort_sessions_created_total")
}
