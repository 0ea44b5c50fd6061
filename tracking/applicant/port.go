package applicant

import (
	"context"

	"github.com/roster-ats/roster/pkg/kernel"
)

// Repository is the persistence contract shared by both storage backends.
// Clients must not be able to tell the backends apart through it.
type Repository interface {
	// List retrieves every applicant in the backend's natural order
	List(ctx context.Context) ([]Applicant, error)

	// Insert persists a fully stamped applicant record
	Insert(ctx context.Context, a *Applicant) error

	// UpdateByID shallow-merges the supplied fields onto the stored record
	// and returns the result. Last write wins; there is no optimistic
	// concurrency check.
	UpdateByID(ctx context.Context, id kernel.ApplicantID, req UpdateApplicantRequest) (*Applicant, error)

	// DeleteByID removes the matching record and returns it so the caller
	// can clean up any associated resume asset
	DeleteByID(ctx context.Context, id kernel.ApplicantID) (*Applicant, error)

	// DeleteAll removes every record and returns the removed set for
	// asset cleanup
	DeleteAll(ctx context.Context) ([]Applicant, error)

	// AddComment appends c to the applicant's thread after removing any
	// earlier comment from the same author
	AddComment(ctx context.Context, id kernel.ApplicantID, c Comment) error
}
