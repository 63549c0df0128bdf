package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/internal/repository/mysql/model"
)

// auditRepository is append-only: there is deliberately no update or
// delete method.
type auditRepository struct {
	DB *gorm.DB
}

var _ domain.AuditRepository = (*auditRepository)(nil)

func NewAuditRepository(db *gorm.DB) *auditRepository {
	return &auditRepository{
		DB: db,
	}
}

func (a *auditRepository) Store(ctx context.Context, e *domain.AuditEntry) error {
	m := model.NewAuditEntryFromDomain(e)
	if err := a.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	e.ID = m.ID
	return nil
}
