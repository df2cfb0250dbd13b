package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
)

func TestSpecializationObserver(t *testing.T) {
	cache := specialize.New()
	m := NewMetrics(cache)
	cache.SetObserver(m)

	_, err := specialize.Resolve(cache, "Add", func() (int, error) { return 1, nil }, reflect.TypeFor[int]())
	require.NoError(t, err)
	_, err = specialize.Resolve(cache, "Sqrt", func() (int, error) { return 0, errors.New("no sqrt") }, reflect.TypeFor[int]())
	require.Error(t, err)
	_, _ = specialize.Resolve(cache, "Add", func() (int, error) { return 1, nil }, reflect.TypeFor[int]())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpecializationBuilds.WithLabelValues("Add", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SpecializationBuilds.WithLabelValues("Sqrt", "failure")))

	n, err := testutil.GatherAndCount(m.Registry(), "numengine_specialization_slots")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordServiceCall(t *testing.T) {
	m := NewMetrics(nil)
	m.RecordServiceCall("math", "math.add", "success", time.Millisecond)
	m.RecordServiceCall("math", "math.divide", "failure", time.Millisecond)

	timer := NewTimer(m, "math", "math.add")
	timer.Stop("success")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ServiceCalls.WithLabelValues("math", "math.add", "success")))
	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.ToolCalls)
	assert.Equal(t, int64(1), snap.ToolFailures)
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics(nil)

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/items/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/items/2", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalErrors)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "numengine_http_requests_total")
	assert.Contains(t, w.Body.String(), "numengine_uptime_seconds")
}

func TestWebSocketGauges(t *testing.T) {
	m := NewMetrics(nil)
	m.IncWSConnections()
	m.IncWSConnections()
	m.DecWSConnections()
	m.RecordWSMessage("in", "execute")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSConnections))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WSMessages.WithLabelValues("in", "execute")))
}
