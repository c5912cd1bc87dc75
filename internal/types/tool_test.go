package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSurface_UnionAndLowercase(t *testing.T) {
	tool := &Tool{
		Categories: []string{"Writing", "Content"},
		Problems:   []string{"writer's block"},
		UseCases:   []string{"Blog Posts"},
		BestFor:    []string{"Marketers"},
	}

	surface := tool.TagSurface()

	assert.Equal(t, []string{"writing", "content", "writer's block", "blog posts", "marketers"}, surface)
}

func TestTagSurface_Deduplicates(t *testing.T) {
	tool := &Tool{
		Categories: []string{"Coding", "coding"},
		UseCases:   []string{"CODING", "debugging"},
	}

	surface := tool.TagSurface()

	assert.Equal(t, []string{"coding", "debugging"}, surface)
}

func TestTagSurface_SkipsEmptyTags(t *testing.T) {
	tool := &Tool{
		Categories: []string{"", "  ", "design"},
	}

	assert.Equal(t, []string{"design"}, tool.TagSurface())
}

func TestTagSurface_DoesNotMutateSource(t *testing.T) {
	tool := &Tool{
		Categories: []string{"Writing"},
	}

	_ = tool.TagSurface()

	assert.Equal(t, []string{"Writing"}, tool.Categories)
}

func TestTagSurface_EmptyTool(t *testing.T) {
	tool := &Tool{}

	assert.Empty(t, tool.TagSurface())
}
