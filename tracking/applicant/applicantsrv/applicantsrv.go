package applicantsrv

import (
	"context"
	"time"

	"github.com/roster-ats/roster/pkg/errx"
	"github.com/roster-ats/roster/pkg/kernel"
	"github.com/roster-ats/roster/pkg/logx"
	"github.com/roster-ats/roster/tracking/applicant"
	"github.com/roster-ats/roster/tracking/asset/assetsrv"
)

// dateAddedLayout is the human-readable form dateAdded is stamped with
const dateAddedLayout = "January 2, 2006"

// ApplicantService provides business operations over applicant records.
// assets is nil when the record store is the document backend: only the
// file backend owns resume files and cleans them up on delete.
type ApplicantService struct {
	repo   applicant.Repository
	assets *assetsrv.AssetManager

	newID func() kernel.ApplicantID
	today func() string
}

// NewApplicantService creates a new instance of the applicant service
func NewApplicantService(repo applicant.Repository, assets *assetsrv.AssetManager) *ApplicantService {
	return &ApplicantService{
		repo:   repo,
		assets: assets,
		newID:  kernel.NewApplicantID,
		today: func() string {
			return time.Now().Format(dateAddedLayout)
		},
	}
}

// ListApplicants retrieves every applicant record
func (s *ApplicantService) ListApplicants(ctx context.Context) ([]applicant.Applicant, error) {
	applicants, err := s.repo.List(ctx)
	if err != nil {
		return nil, wrapInternal(err, "failed to list applicants")
	}
	return applicants, nil
}

// CreateApplicant stamps ID and DateAdded and persists the new record
func (s *ApplicantService) CreateApplicant(ctx context.Context, req applicant.CreateApplicantRequest) (*applicant.Applicant, error) {
	newApplicant := &applicant.Applicant{
		ID:             s.newID(),
		FullName:       req.FullName,
		LinkedinURL:    req.LinkedinURL,
		ExpectedSalary: req.ExpectedSalary,
		Notes:          req.Notes,
		ResumeName:     req.ResumeName,
		ResumePath:     req.ResumePath,
		DateAdded:      s.today(),
		Comments:       []applicant.Comment{},
	}

	if err := s.repo.Insert(ctx, newApplicant); err != nil {
		return nil, wrapInternal(err, "failed to create applicant")
	}

	return newApplicant, nil
}

// UpdateApplicant shallow-merges the supplied fields onto the stored record
func (s *ApplicantService) UpdateApplicant(ctx context.Context, id kernel.ApplicantID, req applicant.UpdateApplicantRequest) (*applicant.Applicant, error) {
	updated, err := s.repo.UpdateByID(ctx, id, req)
	if err != nil {
		return nil, wrapInternal(err, "failed to update applicant")
	}
	return updated, nil
}

// DeleteApplicant removes the record and, on the file backend, its resume
// file. File removal is best effort and never fails the request.
func (s *ApplicantService) DeleteApplicant(ctx context.Context, id kernel.ApplicantID) error {
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return wrapInternal(err, "failed to delete applicant")
	}

	s.cleanupResume(ctx, removed)
	return nil
}

// ClearAll removes every record and every referenced resume file
func (s *ApplicantService) ClearAll(ctx context.Context) error {
	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return wrapInternal(err, "failed to clear applicants")
	}

	for i := range removed {
		s.cleanupResume(ctx, &removed[i])
	}
	return nil
}

// AddComment appends a comment, replacing any earlier one by the same author
func (s *ApplicantService) AddComment(ctx context.Context, id kernel.ApplicantID, req applicant.AddCommentRequest) (*applicant.Comment, error) {
	comment := req.Comment()
	if err := s.repo.AddComment(ctx, id, comment); err != nil {
		return nil, wrapInternal(err, "failed to add comment")
	}
	return &comment, nil
}

func (s *ApplicantService) cleanupResume(ctx context.Context, a *applicant.Applicant) {
	if s.assets == nil || !a.HasResume() {
		return
	}
	if err := s.assets.DeleteIfExists(ctx, a.ResumePath); err != nil {
		logx.Warnf("failed to remove resume %s for applicant %s: %v", a.ResumePath, a.ID, err)
	}
}

// wrapInternal keeps transport-aware errors intact and classifies everything
// else as a persistence failure
func wrapInternal(err error, message string) error {
	if e, ok := err.(*errx.Error); ok {
		return e
	}
	return errx.Wrap(err, message, errx.TypeInternal)
}
