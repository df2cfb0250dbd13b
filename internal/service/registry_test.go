package service

import (
	"context"
	"errors"
	"iter"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numengine/internal/types"
)

type mockProvider struct {
	id       string
	category types.Category
	fail     bool
}

func (m *mockProvider) Definition() types.Service {
	category := m.category
	if category == "" {
		category = types.CategoryMath
	}
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service computing statistics",
		Category:     category,
		Capabilities: []string{"mean", "median"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "test",
				Description: "A test tool",
				Returns:     "number",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]any, appCtx *types.Context) (*types.Result, error) {
	if m.fail {
		return nil, errors.New("boom")
	}
	return &types.Result{
		Success: true,
		Data:    map[string]any{"result": "success"},
	}, nil
}

type recorded struct {
	service, tool, status string
}

type mockRecorder struct {
	mu    sync.Mutex
	calls []recorded
}

func (m *mockRecorder) RecordServiceCall(service, tool, status string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, recorded{service, tool, status})
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test"}))

	_, ok := r.Get("test")
	assert.True(t, ok)

	assert.Error(t, r.Register(&mockProvider{id: ""}))
	assert.Error(t, r.Register(&mockProvider{id: "a.b"}))
}

func TestList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test2"}))
	require.NoError(t, r.Register(&mockProvider{id: "test1"}))
	require.NoError(t, r.Register(&mockProvider{id: "engine", category: types.CategoryEngine}))

	services := r.List(nil)
	require.Len(t, services, 3)
	assert.Equal(t, "engine", services[0].ID)
	assert.Equal(t, "test1", services[1].ID)

	cat := types.CategoryMath
	assert.Len(t, r.List(&cat), 2)
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "math"}))
	require.NoError(t, r.Register(&mockProvider{id: "other", category: types.CategoryEngine}))

	results := r.Discover("math median of five numbers", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "math", results[0].ID)

	assert.Len(t, r.Discover("median", 1), 1)
	assert.Empty(t, r.Discover("weather forecast", 5))
}

func TestTool(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test"}))

	tool, ok := r.Tool("test.test")
	require.True(t, ok)
	assert.Equal(t, "number", tool.Returns)

	_, ok = r.Tool("test.missing")
	assert.False(t, ok)
	_, ok = r.Tool("nodot")
	assert.False(t, ok)
}

func TestExecute(t *testing.T) {
	rec := &mockRecorder{}
	r := NewRegistry(WithRecorder(rec))
	require.NoError(t, r.Register(&mockProvider{id: "test"}))
	require.NoError(t, r.Register(&mockProvider{id: "bad", fail: true}))

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]any{}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)

	_, err = r.Execute(ctx, "bad.test", nil, nil)
	assert.Error(t, err)

	result, err = r.Execute(ctx, "nodot", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidToolID)
	assert.False(t, result.Success)

	result, err = r.Execute(ctx, "missing.tool", nil, nil)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "missing")

	assert.Equal(t, []recorded{
		{"test", "test.test", "success"},
		{"bad", "bad.test", "failure"},
	}, rec.calls)
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test1"}))
	require.NoError(t, r.Register(&mockProvider{id: "test2"}))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{"math": 2}, stats["categories"])
}

type streamingProvider struct {
	mockProvider
}

func (s *streamingProvider) Definition() types.Service {
	def := s.mockProvider.Definition()
	def.Tools = append(def.Tools, types.Tool{ID: s.id + ".count", Name: "count", Streams: true})
	return def
}

func (s *streamingProvider) Stream(ctx context.Context, toolID string, params map[string]any) (iter.Seq[any], error) {
	if s.fail {
		return nil, errors.New("boom")
	}
	return func(yield func(any) bool) {
		for i := range 3 {
			if !yield(i) {
				return
			}
		}
	}, nil
}

func TestStream(t *testing.T) {
	rec := &mockRecorder{}
	r := NewRegistry(WithRecorder(rec))
	require.NoError(t, r.Register(&streamingProvider{mockProvider{id: "seq"}}))
	require.NoError(t, r.Register(&streamingProvider{mockProvider{id: "broken", fail: true}}))
	require.NoError(t, r.Register(&mockProvider{id: "plain"}))

	ctx := context.Background()
	seq, err := r.Stream(ctx, "seq.count", nil)
	require.NoError(t, err)
	assert.Equal(t, []any{0, 1, 2}, slices.Collect(seq))

	_, err = r.Stream(ctx, "seq.test", nil)
	assert.ErrorIs(t, err, ErrNotStreamable)

	_, err = r.Stream(ctx, "plain.test", nil)
	assert.ErrorIs(t, err, ErrNotStreamable)

	_, err = r.Stream(ctx, "nodot", nil)
	assert.ErrorIs(t, err, ErrInvalidToolID)

	_, err = r.Stream(ctx, "missing.count", nil)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = r.Stream(ctx, "broken.count", nil)
	assert.EqualError(t, err, "boom")

	assert.Equal(t, []recorded{
		{"seq", "seq.count", "success"},
		{"broken", "broken.count", "failure"},
	}, rec.calls)
}
