package applicantinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/roster-ats/roster/pkg/kernel"
	"github.com/roster-ats/roster/tracking/applicant"
)

// FileApplicantRepository implements applicant.Repository on a single JSON
// document holding the full applicant array. Every mutation reads the whole
// file, mutates the slice in memory and rewrites the file. A process-local
// mutex serializes the read-modify-write cycles so concurrent requests
// within one process cannot lose updates; the rewrite itself goes through a
// temp file and rename so readers never see a torn document. Writers in
// other processes are not coordinated.
type FileApplicantRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileApplicantRepository creates a repository backed by the JSON file at
// path, creating the parent directory if needed. A missing file reads as an
// empty store.
func NewFileApplicantRepository(path string) (*FileApplicantRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir %s: %w", dir, err)
		}
	}
	return &FileApplicantRepository{path: path}, nil
}

func (r *FileApplicantRepository) load() ([]applicant.Applicant, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []applicant.Applicant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	applicants := make([]applicant.Applicant, 0)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &applicants); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.path, err)
		}
	}
	return applicants, nil
}

func (r *FileApplicantRepository) save(applicants []applicant.Applicant) error {
	data, err := json.MarshalIndent(applicants, "", "  ")
	if err != nil {
		return fmt.Errorf("encode applicants: %w", err)
	}

	tmp := r.path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", r.path, err)
	}
	return nil
}

func indexOf(applicants []applicant.Applicant, id kernel.ApplicantID) int {
	for i := range applicants {
		if applicants[i].ID == id {
			return i
		}
	}
	return -1
}

// List retrieves all applicants in file order
func (r *FileApplicantRepository) List(ctx context.Context) ([]applicant.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Insert appends a fully stamped applicant and rewrites the file
func (r *FileApplicantRepository) Insert(ctx context.Context, a *applicant.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	applicants, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(applicants, *a))
}

// UpdateByID shallow-merges the supplied fields onto the stored record
func (r *FileApplicantRepository) UpdateByID(ctx context.Context, id kernel.ApplicantID, req applicant.UpdateApplicantRequest) (*applicant.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	applicants, err := r.load()
	if err != nil {
		return nil, err
	}

	i := indexOf(applicants, id)
	if i < 0 {
		return nil, applicant.ErrApplicantNotFound().WithDetail("id", id.String())
	}

	req.ApplyTo(&applicants[i])
	if err := r.save(applicants); err != nil {
		return nil, err
	}

	updated := applicants[i]
	return &updated, nil
}

// DeleteByID removes the matching record and returns it
func (r *FileApplicantRepository) DeleteByID(ctx context.Context, id kernel.ApplicantID) (*applicant.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	applicants, err := r.load()
	if err != nil {
		return nil, err
	}

	i := indexOf(applicants, id)
	if i < 0 {
		return nil, applicant.ErrApplicantNotFound().WithDetail("id", id.String())
	}

	removed := applicants[i]
	if err := r.save(append(applicants[:i], applicants[i+1:]...)); err != nil {
		return nil, err
	}

	return &removed, nil
}

// DeleteAll truncates the store to an empty array and returns the removed set
func (r *FileApplicantRepository) DeleteAll(ctx context.Context) ([]applicant.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed, err := r.load()
	if err != nil {
		return nil, err
	}

	if err := r.save([]applicant.Applicant{}); err != nil {
		return nil, err
	}

	return removed, nil
}

// AddComment applies the replace-by-author merge and rewrites the file
func (r *FileApplicantRepository) AddComment(ctx context.Context, id kernel.ApplicantID, c applicant.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	applicants, err := r.load()
	if err != nil {
		return err
	}

	i := indexOf(applicants, id)
	if i < 0 {
		return applicant.ErrApplicantNotFound().WithDetail("id", id.String())
	}

	applicants[i].Comments = applicant.MergeComment(applicants[i].Comments, c)
	return r.save(applicants)
}
