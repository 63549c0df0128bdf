package response

import (
	"github.com/tastebookhq/tastebook/domain"
)

type Comment struct {
	ID               int64  `json:"id"`
	RecipeID         int64  `json:"recipe_id"`
	UserID           int64  `json:"user_id"`
	UserName         string `json:"user_name,omitempty"`
	Content          string `json:"content"`
	Rating           *int   `json:"rating,omitempty"`
	Status           string `json:"status"`
	ModeratedBy      *int64 `json:"moderated_by,omitempty"`
	ModeratedAt      string `json:"moderated_at,omitempty"`
	ModerationReason string `json:"moderation_reason,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	res := Comment{
		ID:               c.ID,
		RecipeID:         c.RecipeID,
		UserID:           c.UserID,
		UserName:         c.UserName,
		Content:          c.Content,
		Rating:           c.Rating,
		Status:           string(c.Status),
		ModeratedBy:      c.ModeratedBy,
		ModerationReason: c.ModerationReason,
		CreatedAt:        c.CreatedAt.Format(DateTimeFormat),
	}
	if c.ModeratedAt != nil {
		res.ModeratedAt = c.ModeratedAt.Format(DateTimeFormat)
	}
	return res
}

type CommentList struct {
	Items    []Comment       `json:"items"`
	PageInfo domain.PageInfo `json:"page_info"`
	Total    int64           `json:"total"`
}

func NewCommentListFromDomain(items []domain.Comment, pageInfo domain.PageInfo) CommentList {
	res := CommentList{
		Items:    make([]Comment, len(items)),
		PageInfo: pageInfo,
		Total:    pageInfo.Total,
	}
	for i := range items {
		res.Items[i] = NewCommentFromDomain(&items[i])
	}
	return res
}
