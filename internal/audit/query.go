package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type LogFilter struct {
	Action string
	Entity string
	From   time.Time // inclusive, zero = open
	To     time.Time // exclusive, zero = open

	Page  int
	Limit int
}

// Normalize clamps paging to page >= 1 and 1 <= limit <= 200. A missing
// limit defaults to 50.
func (f LogFilter) Normalize() LogFilter {
	if f.Page <= 0 {
		f.Page = 1
	}
	switch {
	case f.Limit <= 0:
		f.Limit = 50
	case f.Limit > 200:
		f.Limit = 200
	}
	return f
}

// List returns one page of audit rows, newest first, and the total match count.
func (s *GormSink) List(ctx context.Context, filter LogFilter) ([]models.AuditLog, int64, error) {
	filter = filter.Normalize()

	q := s.db.WithContext(ctx).Model(&models.AuditLog{})

	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.Entity != "" {
		q = q.Where("entity = ?", filter.Entity)
	}
	if !filter.From.IsZero() {
		q = q.Where("created_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("created_at < ?", filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := q.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
