package request

import (
	"github.com/go-playground/validator/v10"

	"github.com/tastebookhq/tastebook/domain"
)

var validate = validator.New()

type CreateComment struct {
	Content string `json:"content" validate:"required"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

func (r *CreateComment) Validate() error {
	return validate.Struct(r)
}

// ToDomain builds the domain comment; recipe and author come from the
// URL and the authenticated actor, not the body.
func (r *CreateComment) ToDomain(recipeID int64, actor domain.Actor) domain.Comment {
	return domain.Comment{
		RecipeID: recipeID,
		UserID:   actor.ID,
		Content:  r.Content,
		Rating:   r.Rating,
	}
}
