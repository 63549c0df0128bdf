package request

import (
	"github.com/tastebookhq/tastebook/domain"
)

type CreateReport struct {
	TargetType  string `json:"target_type" validate:"required"`
	TargetID    int64  `json:"target_id" validate:"required,gt=0"`
	Reason      string `json:"reason" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
}

func (r *CreateReport) Validate() error {
	return validate.Struct(r)
}

func (r *CreateReport) ToDomain(reporter domain.Actor) domain.Report {
	return domain.Report{
		Target: domain.ReportTarget{
			Type: domain.ReportTargetType(r.TargetType),
			ID:   r.TargetID,
		},
		Reason:      r.Reason,
		Description: r.Description,
		ReporterID:  reporter.ID,
	}
}

type ResolveReport struct {
	Action string `json:"action" validate:"required"`
	Note   string `json:"note" validate:"max=1000"`
}

func (r *ResolveReport) Validate() error {
	return validate.Struct(r)
}

type RejectReport struct {
	Note string `json:"note" validate:"max=1000"`
}

func (r *RejectReport) Validate() error {
	return validate.Struct(r)
}
