package response

import (
	"github.com/tastebookhq/tastebook/domain"
)

type Resolution struct {
	Action     string `json:"action"`
	Note       string `json:"note,omitempty"`
	ResolvedBy int64  `json:"resolved_by"`
	ResolvedAt string `json:"resolved_at"`
}

type Report struct {
	ID          int64       `json:"id"`
	TargetType  string      `json:"target_type"`
	TargetID    int64       `json:"target_id"`
	Reason      string      `json:"reason"`
	Description string      `json:"description,omitempty"`
	ReporterID  int64       `json:"reporter_id"`
	Status      string      `json:"status"`
	Resolution  *Resolution `json:"resolution,omitempty"`
	CreatedAt   string      `json:"created_at"`
}

// NewReportFromDomain: Domain -> Response
func NewReportFromDomain(r *domain.Report) Report {
	res := Report{
		ID:          r.ID,
		TargetType:  string(r.Target.Type),
		TargetID:    r.Target.ID,
		Reason:      r.Reason,
		Description: r.Description,
		ReporterID:  r.ReporterID,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.Format(DateTimeFormat),
	}
	if r.Resolution != nil {
		res.Resolution = &Resolution{
			Action:     string(r.Resolution.Action),
			Note:       r.Resolution.Note,
			ResolvedBy: r.Resolution.ResolvedBy,
			ResolvedAt: r.Resolution.ResolvedAt.Format(DateTimeFormat),
		}
	}
	return res
}

type ReportList struct {
	Items    []Report        `json:"items"`
	PageInfo domain.PageInfo `json:"page_info"`
	Total    int64           `json:"total"`
}

func NewReportListFromDomain(items []domain.Report, pageInfo domain.PageInfo) ReportList {
	res := ReportList{
		Items:    make([]Report, len(items)),
		PageInfo: pageInfo,
		Total:    pageInfo.Total,
	}
	for i := range items {
		res.Items[i] = NewReportFromDomain(&items[i])
	}
	return res
}
