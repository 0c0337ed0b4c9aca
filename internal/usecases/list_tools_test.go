package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-agentruntime/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestListToolsImpl_Query(t *testing.T) {
	definitions := []domain.ToolDefinition{
		{Name: "code_search", Description: "Search file contents."},
		{Name: "glob_search", Description: "Find files."},
	}

	registry := domain.NewMockToolRegistry(t)
	registry.EXPECT().List().Return(definitions)

	lt := NewListToolsImpl(registry)
	got, err := lt.Query(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, definitions, got)
}

func TestInitListTools_Initialize(t *testing.T) {
	i := InitListTools{}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	lt, err := depend.Resolve[ListTools]()
	assert.NoError(t, err)
	assert.NotNil(t, lt)
}
