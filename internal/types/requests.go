package types

import "github.com/go-playground/validator/v10"

// RecommendRequest is the body of POST /recommendations.
type RecommendRequest struct {
	Tags  []string `json:"tags" validate:"required,min=1,dive,required"`
	Limit int      `json:"limit" validate:"omitempty,min=1,max=10"`
	UseAI bool     `json:"useAI"`
}

// Validate validates the RecommendRequest using the validator.
func (r *RecommendRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
