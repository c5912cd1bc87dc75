package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_PlainJSON(t *testing.T) {
	input := `{"whyRecommended": "fits"}`

	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"a\": 1}\n```"

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"a\": 1}\n```"

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceWithLanguageIdentifier(t *testing.T) {
	input := "```javascript\n{\"a\": 1}\n```"

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_SurroundingWhitespace(t *testing.T) {
	input := "  \n```json\n{\"a\": 1}\n```\n  "

	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_FenceInsideStringUntouched(t *testing.T) {
	input := `{"text": "use three backticks"}`

	assert.Equal(t, input, CleanJSONBlock(input))
}
