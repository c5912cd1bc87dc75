package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExplanation_Valid(t *testing.T) {
	doc := `{"whyRecommended":"Strong match.","bestFor":"Writers.","whenNotToUse":"Data work."}`

	assert.NoError(t, ValidateExplanation(doc))
}

func TestValidateExplanation_MissingField(t *testing.T) {
	doc := `{"whyRecommended":"Strong match.","bestFor":"Writers."}`

	err := ValidateExplanation(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateExplanation_EmptyField(t *testing.T) {
	doc := `{"whyRecommended":"","bestFor":"Writers.","whenNotToUse":"Data work."}`

	assert.Error(t, ValidateExplanation(doc))
}

func TestValidateExplanation_WrongType(t *testing.T) {
	doc := `{"whyRecommended":42,"bestFor":"Writers.","whenNotToUse":"Data work."}`

	assert.Error(t, ValidateExplanation(doc))
}

func TestValidateExplanation_NotAnObject(t *testing.T) {
	assert.Error(t, ValidateExplanation(`["a","b"]`))
}

func TestValidateExplanation_MalformedDocument(t *testing.T) {
	assert.Error(t, ValidateExplanation(`{not json`))
}

func TestValidateExplanation_ExtraFieldsAllowed(t *testing.T) {
	doc := `{"whyRecommended":"x","bestFor":"y","whenNotToUse":"z","confidence":0.9}`

	assert.NoError(t, ValidateExplanation(doc))
}
