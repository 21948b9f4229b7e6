package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/ports"
)

// SubmissionRepository persists contact submissions.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id uint) (*domain.Submission, error) {
	var s domain.Submission
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return &s, nil
}

// List returns one page ordered newest-first plus the total matching count.
func (r *SubmissionRepository) List(ctx context.Context, filter ports.ListSubmissionsFilter) ([]*domain.Submission, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Submission{})
	if filter.IsRead != nil {
		q = q.Where("is_read = ?", *filter.IsRead)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count submissions: %w", err)
	}

	var items []*domain.Submission
	err := q.Order("submitted_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list submissions: %w", err)
	}

	return items, total, nil
}

func (r *SubmissionRepository) SetRead(ctx context.Context, id uint, read bool) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("id = ?", id).
		Update("is_read", read)
	if res.Error != nil {
		return fmt.Errorf("update submission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Distinguish "missing row" from "already at that value".
		var n int64
		if err := r.db.WithContext(ctx).Model(&domain.Submission{}).Where("id = ?", id).Count(&n).Error; err != nil {
			return fmt.Errorf("update submission: %w", err)
		}
		if n == 0 {
			return domain.ErrSubmissionNotFound
		}
	}
	return nil
}

func (r *SubmissionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Submission{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete submission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSubmissionNotFound
	}
	return nil
}

func (r *SubmissionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.Submission{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

func (r *SubmissionRepository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("is_read = ?", false).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count unread submissions: %w", err)
	}
	return n, nil
}

func (r *SubmissionRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Where("submitted_at >= ?", since).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count recent submissions: %w", err)
	}
	return n, nil
}

func (r *SubmissionRepository) CountByService(ctx context.Context) ([]domain.ServiceCount, error) {
	var rows []domain.ServiceCount
	err := r.db.WithContext(ctx).
		Model(&domain.Submission{}).
		Select("service, COUNT(id) AS count").
		Group("service").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count submissions by service: %w", err)
	}
	return rows, nil
}
