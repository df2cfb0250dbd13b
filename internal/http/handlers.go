package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/numengine/internal/middleware"
	"github.com/GriffinCanCode/numengine/internal/monitoring"
	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
	"github.com/GriffinCanCode/numengine/internal/service"
	"github.com/GriffinCanCode/numengine/internal/types"
	"github.com/GriffinCanCode/numengine/internal/utils"
)

// Version is reported by the root endpoint.
const Version = "0.3.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry  *service.Registry
	cache     *specialize.Cache
	metrics   *monitoring.Metrics
	validator *utils.JSONSizeValidator
	started   time.Time
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(registry *service.Registry, cache *specialize.Cache, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry:  registry,
		cache:     cache,
		metrics:   metrics,
		validator: utils.DefaultJSONValidator(),
		started:   time.Now(),
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Numeric Engine",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"uptime_seconds":   time.Since(h.started).Seconds(),
		"service_registry": h.registry.Stats(),
		"specializations":  h.cache.Stats(),
		"series_budget":    numeric.DefaultBudget(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	// Validate category if provided
	if err := utils.ValidateCategory(categoryStr, false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices discovers relevant services for an intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if !h.bind(c, &req) {
		return
	}

	if err := utils.ValidateIntent(req.Intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Intent,
		"services": h.registry.Discover(req.Intent, limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if !h.bind(c, &req) {
		return
	}

	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateParams(req.Params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Params == nil {
		req.Params = map[string]any{}
	}

	appCtx := &types.Context{
		RequestID: middleware.GetRequestID(c),
		ClientIP:  c.ClientIP(),
		Transport: "http",
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Specializations reports the contents of the specialization cache
func (h *Handlers) Specializations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"entries": h.cache.Entries(),
		"stats":   h.cache.Stats(),
	})
}

// bind decodes the request body, writing a 400 on failure.
func (h *Handlers) bind(c *gin.Context, out any) bool {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, int64(utils.MaxJSONSize)+1))
	if err == nil {
		err = h.validator.Decode(body, out)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidToolID):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrServiceNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
