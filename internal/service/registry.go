package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/numengine/internal/types"
)

var (
	// ErrInvalidToolID is returned for tool IDs without a service prefix.
	ErrInvalidToolID = errors.New("invalid tool ID format")

	// ErrServiceNotFound is returned when no provider owns the tool's service.
	ErrServiceNotFound = errors.New("service not found")

	// ErrNotStreamable is returned when a tool has no streaming form.
	ErrNotStreamable = errors.New("tool does not stream")
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]any, appCtx *types.Context) (*types.Result, error)
}

// Streamer is implemented by providers whose tools can yield results one
// element at a time.
type Streamer interface {
	Stream(ctx context.Context, toolID string, params map[string]any) (iter.Seq[any], error)
}

// Recorder receives one notification per executed tool.
type Recorder interface {
	RecordServiceCall(service, tool, status string, duration time.Duration)
}

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
	logger   *zap.Logger
	recorder Recorder
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger logs registrations and failed executions.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// WithRecorder reports executions to rec.
func WithRecorder(rec Recorder) Option {
	return func(r *Registry) { r.recorder = rec }
}

// NewRegistry creates a new service registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	if strings.Contains(def.ID, ".") {
		return fmt.Errorf("service ID %q must not contain '.'", def.ID)
	}

	r.services.Store(def.ID, provider)
	r.logger.Info("service registered",
		zap.String("service", def.ID),
		zap.Int("tools", len(def.Tools)),
	)
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// Tool looks up a tool definition by its full ID.
func (r *Registry) Tool(toolID string) (types.Tool, bool) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok {
		return types.Tool{}, false
	}
	provider, ok := r.Get(serviceID)
	if !ok {
		return types.Tool{}, false
	}
	for _, tool := range provider.Definition().Tools {
		if tool.ID == toolID {
			return tool, true
		}
	}
	return types.Tool{}, false
}

// List returns all registered services sorted by ID
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value any) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	r.services.Range(func(_, value any) bool {
		provider := value.(Provider)
		def := provider.Definition()
		score := r.calculateRelevance(intentLower, def)
		if score > 0 {
			results = append(results, scoredService{
				service: def,
				score:   score,
			})
		}
		return true
	})

	// Sort by score descending, ID ascending on ties
	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].service.ID < results[j].service.ID
	})

	if limit <= 0 {
		limit = len(results)
	}
	output := make([]types.Service, 0, min(limit, len(results)))
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}

	return output
}

// Execute runs a service tool
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]any, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok {
		return failure(ErrInvalidToolID.Error()), fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}

	provider, ok := r.Get(serviceID)
	if !ok {
		msg := fmt.Sprintf("%s: %s", ErrServiceNotFound, serviceID)
		return failure(msg), fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}

	start := time.Now()
	result, err := provider.Execute(ctx, toolID, params, appCtx)
	status := "success"
	if err != nil || result == nil || !result.Success {
		status = "failure"
	}
	if r.recorder != nil {
		r.recorder.RecordServiceCall(serviceID, toolID, status, time.Since(start))
	}
	if err != nil {
		r.logger.Warn("tool execution failed",
			zap.String("tool", toolID),
			zap.Error(err),
		)
	}
	return result, err
}

// Stream runs a streaming tool. The returned sequence is lazy; elements are
// computed as the caller ranges over it.
func (r *Registry) Stream(ctx context.Context, toolID string, params map[string]any) (iter.Seq[any], error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}
	provider, ok := r.Get(serviceID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}
	tool, ok := r.Tool(toolID)
	streamer, streams := provider.(Streamer)
	if !ok || !tool.Streams || !streams {
		return nil, fmt.Errorf("%w: %s", ErrNotStreamable, toolID)
	}

	start := time.Now()
	seq, err := streamer.Stream(ctx, toolID, params)
	if r.recorder != nil {
		status := "success"
		if err != nil {
			status = "failure"
		}
		r.recorder.RecordServiceCall(serviceID, toolID, status, time.Since(start))
	}
	if err != nil {
		r.logger.Warn("tool stream failed",
			zap.String("tool", toolID),
			zap.Error(err),
		)
		return nil, err
	}
	return seq, nil
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]any {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value any) bool {
		provider := value.(Provider)
		def := provider.Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]any{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func (r *Registry) calculateRelevance(intent string, service types.Service) float64 {
	score := 0.0

	// Check service name and ID
	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	// Check tool names, e.g. "median" or "is prime"
	for _, tool := range service.Tools {
		name := strings.ReplaceAll(strings.ToLower(tool.Name), "_", " ")
		if name != "" && strings.Contains(intent, name) {
			score += 4.0
		}
	}

	// Check description words, ignoring short fillers
	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		if len(word) > 3 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	// Check capabilities
	for _, cap := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(cap), "_", " ")
		if strings.Contains(intent, capClean) {
			score += 3.0
		}
	}

	// Check category
	if strings.Contains(intent, string(service.Category)) {
		score += 2.0
	}

	return score
}

func failure(msg string) *types.Result {
	return &types.Result{Success: false, Error: &msg}
}
