package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalsuccessindia/portfolio-backend/internal/core/domain"
	"github.com/legalsuccessindia/portfolio-backend/internal/core/ports"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
	recentWindow   = 7 * 24 * time.Hour
)

// ContactService owns the submission lifecycle.
type ContactService struct {
	repo   ports.SubmissionRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.SubmissionRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

// Submit persists a validator-approved submission. The timestamp is set here,
// exactly once; the record starts unread.
func (s *ContactService) Submit(ctx context.Context, input ports.SubmitContactInput) (*domain.Submission, error) {
	submission := &domain.Submission{
		Name:        input.Name,
		Email:       input.Email,
		Service:     input.Service,
		Message:     input.Message,
		SubmittedAt: time.Now().UTC(),
		IsRead:      false,
		IPAddress:   input.IPAddress,
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		s.logger.Error().Err(err).Msg("failed to store submission")
		return nil, err
	}

	s.logger.Info().Uint("id", submission.ID).Str("service", submission.Service).Msg("contact submission received")
	return submission, nil
}

// List returns one page of submissions, newest first, with pagination metadata.
func (s *ContactService) List(ctx context.Context, filter ports.ListSubmissionsFilter) (*ports.SubmissionPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage))

	return &ports.SubmissionPage{
		Items: items,
		Pagination: ports.Pagination{
			Page:    filter.Page,
			PerPage: filter.PerPage,
			Total:   total,
			Pages:   pages,
			HasNext: filter.Page < pages,
			HasPrev: filter.Page > 1,
		},
	}, nil
}

// Get fetches a submission by id. The first admin view flips the read flag;
// repeat views are no-ops.
func (s *ContactService) Get(ctx context.Context, id uint) (*domain.Submission, error) {
	submission, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !submission.IsRead {
		if err := s.repo.SetRead(ctx, id, true); err != nil {
			return nil, err
		}
		submission.IsRead = true
	}

	return submission, nil
}

// SetRead sets the read flag to an explicit value and returns the updated record.
func (s *ContactService) SetRead(ctx context.Context, id uint, read bool) (*domain.Submission, error) {
	if err := s.repo.SetRead(ctx, id, read); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("id", id).Msg("submission deleted")
	return nil
}

// Stats computes the dashboard aggregates. The recent window is the trailing
// seven days, inclusive, measured from now.
func (s *ContactService) Stats(ctx context.Context) (*ports.ContactStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.CountSince(ctx, time.Now().UTC().Add(-recentWindow))
	if err != nil {
		return nil, err
	}
	breakdown, err := s.repo.CountByService(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.ContactStats{
		Total:            total,
		Unread:           unread,
		RecentWeek:       recent,
		ServiceBreakdown: breakdown,
	}, nil
}
