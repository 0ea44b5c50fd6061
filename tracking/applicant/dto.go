package applicant

// CreateApplicantRequest - DTO for creating a new applicant. ID and
// DateAdded are stamped by the service, everything else comes from the
// caller as-is.
type CreateApplicantRequest struct {
	FullName       string `json:"fullName"`
	LinkedinURL    string `json:"linkedinUrl"`
	ExpectedSalary string `json:"expectedSalary"`
	Notes          string `json:"notes"`
	ResumeName     string `json:"resumeName"`
	ResumePath     string `json:"resumePath"`
}

// UpdateApplicantRequest - DTO for partially updating an applicant. Only
// supplied fields overwrite; absent fields are left untouched. Comments are
// not updatable here, they change only through the comment operation.
type UpdateApplicantRequest struct {
	FullName       *string `json:"fullName,omitempty"`
	LinkedinURL    *string `json:"linkedinUrl,omitempty"`
	ExpectedSalary *string `json:"expectedSalary,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	ResumeName     *string `json:"resumeName,omitempty"`
	ResumePath     *string `json:"resumePath,omitempty"`
}

// ApplyTo overwrites a's fields with the supplied values
func (r UpdateApplicantRequest) ApplyTo(a *Applicant) {
	if r.FullName != nil {
		a.FullName = *r.FullName
	}
	if r.LinkedinURL != nil {
		a.LinkedinURL = *r.LinkedinURL
	}
	if r.ExpectedSalary != nil {
		a.ExpectedSalary = *r.ExpectedSalary
	}
	if r.Notes != nil {
		a.Notes = *r.Notes
	}
	if r.ResumeName != nil {
		a.ResumeName = *r.ResumeName
	}
	if r.ResumePath != nil {
		a.ResumePath = *r.ResumePath
	}
}

// IsEmpty reports whether no field was supplied
func (r UpdateApplicantRequest) IsEmpty() bool {
	return r.FullName == nil &&
		r.LinkedinURL == nil &&
		r.ExpectedSalary == nil &&
		r.Notes == nil &&
		r.ResumeName == nil &&
		r.ResumePath == nil
}

// AddCommentRequest - DTO for appending a comment to an applicant's thread
type AddCommentRequest struct {
	Person string `json:"person"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// Comment converts the request into the embedded comment value
func (r AddCommentRequest) Comment() Comment {
	return Comment{
		Person: r.Person,
		Text:   r.Text,
		Date:   r.Date,
	}
}
