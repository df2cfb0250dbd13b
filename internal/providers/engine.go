package providers

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
	"github.com/GriffinCanCode/numengine/internal/types"
)

// LevelController reads and changes the server's log level at runtime.
type LevelController interface {
	SetLevel(level string) error
	Level() zapcore.Level
}

// Engine reports on the numeric engine itself
type Engine struct {
	cache     *specialize.Cache
	levels    LevelController
	startTime time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogLevel exposes levels through the engine.log_level tool.
func WithLogLevel(levels LevelController) EngineOption {
	return func(e *Engine) { e.levels = levels }
}

// NewEngine creates an engine provider over cache
func NewEngine(cache *specialize.Cache, opts ...EngineOption) *Engine {
	e := &Engine{
		cache:     cache,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Definition returns service metadata
func (e *Engine) Definition() types.Service {
	return types.Service{
		ID:          "engine",
		Name:        "Engine Service",
		Description: "Runtime information and specialization cache introspection",
		Category:    types.CategoryEngine,
		Capabilities: []string{
			"info",
			"specializations",
			"monitoring",
		},
		Tools: []types.Tool{
			{
				ID:          "engine.info",
				Name:        "Engine Info",
				Description: "Get runtime information",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "engine.specializations",
				Name:        "Specializations",
				Description: "List specialized operations, optionally filtered by operation name",
				Parameters: []types.Parameter{
					{Name: "op", Type: "string", Description: "Substring of the operation name", Required: false},
					{Name: "failed", Type: "boolean", Description: "Only entries whose build failed", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "engine.stats",
				Name:        "Cache Stats",
				Description: "Specialization cache counters",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "engine.log_level",
				Name:        "Log Level",
				Description: "Report the log level, or change it when level is given",
				Parameters: []types.Parameter{
					{Name: "level", Type: "string", Description: "debug, info, warn or error", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "engine.ping",
				Name:        "Ping",
				Description: "Test service availability",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute runs an engine operation
func (e *Engine) Execute(ctx context.Context, toolID string, params map[string]any, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "engine.info":
		return e.info()
	case "engine.specializations":
		return e.specializations(params)
	case "engine.stats":
		return success(map[string]any{"stats": e.cache.Stats()})
	case "engine.log_level":
		return e.logLevel(params)
	case "engine.ping":
		return e.ping()
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (e *Engine) info() (*types.Result, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return success(map[string]any{
		"go_version":     runtime.Version(),
		"os":             runtime.GOOS,
		"arch":           runtime.GOARCH,
		"cpus":           runtime.NumCPU(),
		"goroutines":     runtime.NumGoroutine(),
		"memory_alloc":   m.Alloc / 1024 / 1024, // MB
		"memory_sys":     m.Sys / 1024 / 1024,   // MB
		"series_budget":  numeric.DefaultBudget(),
		"uptime_seconds": time.Since(e.startTime).Seconds(),
	})
}

func (e *Engine) specializations(params map[string]any) (*types.Result, error) {
	op, _ := params["op"].(string)
	onlyFailed, _ := params["failed"].(bool)

	filtered := []specialize.Entry{}
	for _, entry := range e.cache.Entries() {
		if op != "" && !strings.Contains(strings.ToLower(entry.Op), strings.ToLower(op)) {
			continue
		}
		if onlyFailed && entry.Error == "" {
			continue
		}
		filtered = append(filtered, entry)
	}

	return success(map[string]any{
		"entries": filtered,
		"count":   len(filtered),
	})
}

func (e *Engine) logLevel(params map[string]any) (*types.Result, error) {
	if e.levels == nil {
		return failure("log level control is not configured")
	}
	if level, ok := params["level"].(string); ok && level != "" {
		previous := e.levels.Level()
		if err := e.levels.SetLevel(level); err != nil {
			return failure(fmt.Sprintf("invalid level: %v", err))
		}
		return success(map[string]any{
			"level":    e.levels.Level().String(),
			"previous": previous.String(),
		})
	}
	return success(map[string]any{"level": e.levels.Level().String()})
}

func (e *Engine) ping() (*types.Result, error) {
	return success(map[string]any{
		"pong":      true,
		"timestamp": time.Now().Unix(),
	})
}
