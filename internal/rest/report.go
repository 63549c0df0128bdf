package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/internal/rest/request"
	"github.com/tastebookhq/tastebook/internal/rest/response"
)

// ReportHandler covers report filing (user-facing) and the report queue,
// resolution and stats (admin-facing).
type ReportHandler struct {
	Service domain.ReportUsecase
}

func NewReportHandler(svc domain.ReportUsecase) *ReportHandler {
	return &ReportHandler{
		Service: svc,
	}
}

// CreateReport files a report against a comment, recipe or post.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.CreateReport
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := req.ToDomain(actor)

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &report); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewReportFromDomain(&report))
}

// FetchReports lists reports for the admin queue.
func (h *ReportHandler) FetchReports(c *gin.Context) {
	filter := domain.ReportFilter{
		Status:     domain.ReportStatus(c.Query("status")),
		TargetType: domain.ReportTargetType(c.Query("target_type")),
		ReporterID: queryInt64(c, "reporter_id"),
	}

	window := parseListWindow(c)

	ctx := c.Request.Context()
	reports, pageInfo, err := h.Service.Fetch(ctx, filter, window)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewReportListFromDomain(reports, pageInfo))
}

// GetReport returns one report by id.
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	report, err := h.Service.GetByID(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewReportFromDomain(report))
}

// ResolveReport executes a resolution decision against a report.
func (h *ReportHandler) ResolveReport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.ResolveReport
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	report, err := h.Service.Resolve(ctx, id, actor, domain.ResolutionRequest{
		Action: domain.ResolutionAction(req.Action),
		Note:   req.Note,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewReportFromDomain(report))
}

// RejectReport dismisses a report without side effects.
func (h *ReportHandler) RejectReport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.RejectReport
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	report, err := h.Service.Reject(ctx, id, actor, req.Note)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewReportFromDomain(report))
}

// ReportStats returns aggregate report counts for the dashboard.
func (h *ReportHandler) ReportStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := h.Service.Stats(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
