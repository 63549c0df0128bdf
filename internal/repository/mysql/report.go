package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/internal/repository"
	"github.com/tastebookhq/tastebook/internal/repository/mysql/model"
)

const mysqlDuplicateEntry = 1062

type reportRepository struct {
	DB *gorm.DB
}

var _ domain.ReportRepository = (*reportRepository)(nil)

func NewReportRepository(db *gorm.DB) *reportRepository {
	return &reportRepository{
		DB: db,
	}
}

func (r *reportRepository) Store(ctx context.Context, report *domain.Report) error {
	m := model.NewReportFromDomain(report)
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.ErrAlreadyReported
		}
		return err
	}
	report.ID = m.ID
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	var m model.Report
	err := r.DB.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	report := m.ToDomain()
	return &report, nil
}

func (r *reportRepository) ExistsForTarget(ctx context.Context, reporterID int64, target domain.ReportTarget) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Report{}).
		Where("reporter_id = ? AND target_type = ? AND target_id = ?", reporterID, target.Type, target.ID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reportRepository) filtered(ctx context.Context, filter domain.ReportFilter) *gorm.DB {
	query := r.DB.WithContext(ctx).Model(&model.Report{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TargetType != "" {
		query = query.Where("target_type = ?", filter.TargetType)
	}
	if filter.ReporterID != 0 {
		query = query.Where("reporter_id = ?", filter.ReporterID)
	}
	return query
}

func (r *reportRepository) Fetch(ctx context.Context, filter domain.ReportFilter, window domain.ListWindow) ([]domain.Report, domain.PageInfo, error) {
	limit := window.ClampedLimit()
	direction := "ASC"
	if window.Desc() {
		direction = "DESC"
	}
	order := "created_at " + direction + ", id " + direction

	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, domain.PageInfo{}, err
	}

	if window.PageMode() {
		page := window.Page
		var models []model.Report
		err := r.filtered(ctx, filter).
			Order(order).
			Offset(int((page - 1) * limit)).
			Limit(int(limit)).
			Find(&models).Error
		if err != nil {
			return nil, domain.PageInfo{}, err
		}
		return reportsToDomain(models), domain.NewPagePageInfo(page, limit, total), nil
	}

	query := r.filtered(ctx, filter)
	if cursorID := repository.DecodeCursor(window.Cursor); cursorID > 0 {
		if window.Desc() {
			query = query.Where("id < ?", cursorID)
		} else {
			query = query.Where("id > ?", cursorID)
		}
	}

	var models []model.Report
	err := query.Order(order).Limit(int(limit + 1)).Find(&models).Error
	if err != nil {
		return nil, domain.PageInfo{}, err
	}

	hasNext := int64(len(models)) > limit
	if hasNext {
		models = models[:limit]
	}
	items := reportsToDomain(models)

	nextCursor := ""
	if len(items) > 0 {
		nextCursor = repository.EncodeCursor(items[len(items)-1].ID)
	}
	return items, domain.NewCursorPageInfo(total, nextCursor, hasNext), nil
}

func reportsToDomain(models []model.Report) []domain.Report {
	res := make([]domain.Report, len(models))
	for i := range models {
		res[i] = models[i].ToDomain()
	}
	return res
}

func (r *reportRepository) UpdateResolution(ctx context.Context, id int64, status domain.ReportStatus, res *domain.Resolution) error {
	updates := map[string]any{
		"status": string(status),
	}
	if res != nil {
		updates["resolution_action"] = string(res.Action)
		updates["resolution_note"] = res.Note
		updates["resolved_by"] = res.ResolvedBy
		updates["resolved_at"] = res.ResolvedAt
	}

	result := r.DB.WithContext(ctx).Model(&model.Report{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reportRepository) CountByStatus(ctx context.Context) (map[domain.ReportStatus]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := r.DB.WithContext(ctx).Model(&model.Report{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[domain.ReportStatus]int64, len(rows))
	for _, row := range rows {
		res[domain.ReportStatus(row.Status)] = row.Cnt
	}
	return res, nil
}

func (r *reportRepository) CountByTargetType(ctx context.Context) (map[domain.ReportTargetType]int64, error) {
	var rows []struct {
		TargetType string
		Cnt        int64
	}
	err := r.DB.WithContext(ctx).Model(&model.Report{}).
		Select("target_type, COUNT(*) AS cnt").
		Group("target_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[domain.ReportTargetType]int64, len(rows))
	for _, row := range rows {
		res[domain.ReportTargetType(row.TargetType)] = row.Cnt
	}
	return res, nil
}

func (r *reportRepository) CountByReason(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Reason string
		Cnt    int64
	}
	err := r.DB.WithContext(ctx).Model(&model.Report{}).
		Select("reason, COUNT(*) AS cnt").
		Group("reason").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[string]int64, len(rows))
	for _, row := range rows {
		res[row.Reason] = row.Cnt
	}
	return res, nil
}

func (r *reportRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Report{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
