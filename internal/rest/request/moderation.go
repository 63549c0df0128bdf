package request

type HideComment struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (r *HideComment) Validate() error {
	return validate.Struct(r)
}

// BulkModerate carries the raw action string; whether it is in the
// allowed set is the moderation usecase's call, so that an unknown action
// surfaces as INVALID_ACTION rather than a generic binding error.
type BulkModerate struct {
	IDs    []int64 `json:"ids" validate:"required,min=1"`
	Action string  `json:"action" validate:"required"`
	Reason string  `json:"reason" validate:"max=500"`
}

func (r *BulkModerate) Validate() error {
	return validate.Struct(r)
}
