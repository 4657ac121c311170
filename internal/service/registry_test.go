package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/utilkit/internal/providers/calculator"
	"github.com/GriffinCanCode/utilkit/internal/providers/formatter"
	"github.com/GriffinCanCode/utilkit/internal/types"
)

type mockProvider struct {
	mock.Mock
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryText,
		Capabilities: []string{"echo"},
		Tools: []types.Tool{
			{ID: m.id + ".test", Name: "Test Tool", Description: "A test tool", Returns: "string"},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	return args.Get(0).(*types.Result), args.Error(1)
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register(calculator.NewProvider(nil)))
	require.NoError(t, r.Register(formatter.NewProvider(nil)))
	return r
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test"}))

	_, ok := r.Get("test")
	assert.True(t, ok)

	assert.Error(t, r.Register(&mockProvider{id: ""}))

	r.Unregister("test")
	_, ok = r.Get("test")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	r := newTestRegistry(t)

	services := r.List(nil)
	require.Len(t, services, 2)
	assert.Equal(t, "calculator", services[0].ID)
	assert.Equal(t, "formatter", services[1].ID)

	cat := types.CategoryText
	filtered := r.List(&cat)
	require.Len(t, filtered, 1)
	assert.Equal(t, "formatter", filtered[0].ID)

	empty := NewRegistry().List(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestDiscover(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		intent string
		want   string
	}{
		{"calculate the square root of 16", "calculator"},
		{"convert my text to kebab case", "formatter"},
		{"I need an average", "calculator"},
		{"truncate this title", "formatter"},
	}

	for _, tt := range tests {
		t.Run(tt.intent, func(t *testing.T) {
			results := r.Discover(tt.intent, 5)
			require.NotEmpty(t, results)
			assert.Equal(t, tt.want, results[0].ID)
		})
	}

	assert.Len(t, r.Discover("average and truncate", 1), 1)
	assert.Empty(t, r.Discover("zzz", 5))
}

func TestExecute(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	result, err := r.Execute(ctx, "calculator.add", map[string]interface{}{"numbers": []interface{}{1.0, 2.0}}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, 3.0, result.Data["result"])

	result, err = r.Execute(ctx, "formatter.uppercase", map[string]interface{}{"text": "abc"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC", result.Data["formatted"])
}

func TestExecutePassesContext(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "mock"}
	require.NoError(t, r.Register(p))

	ctx := context.Background()
	requestID := "req-1"
	appCtx := &types.Context{RequestID: &requestID}
	want := &types.Result{Success: true}

	p.On("Execute", ctx, "mock.test", map[string]interface{}{}, appCtx).Return(want, nil).Once()

	got, err := r.Execute(ctx, "mock.test", nil, appCtx)
	require.NoError(t, err)
	assert.Same(t, want, got)
	p.AssertExpectations(t)
}

func TestExecuteErrors(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	result, err := r.Execute(ctx, "nodot", nil, nil)
	assert.True(t, errors.Is(err, ErrInvalidToolID))
	assert.False(t, result.Success)

	result, err = r.Execute(ctx, "weather.today", nil, nil)
	assert.True(t, errors.Is(err, ErrServiceNotFound))
	require.NotNil(t, result.Error)
	assert.Equal(t, "service not found: weather", *result.Error)

	// Evaluation failures are results, not errors
	result, err = r.Execute(ctx, "calculator.divide", map[string]interface{}{"a": 1.0, "b": 0.0}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestStats(t *testing.T) {
	r := newTestRegistry(t)

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 18, stats["total_tools"])
	assert.Equal(t, map[string]int{"math": 1, "text": 1}, stats["categories"])
}
