package applicant

import (
	"github.com/roster-ats/roster/pkg/kernel"
)

// Applicant is the tracked entity representing one candidate's application.
// All descriptive fields are free-form text; nothing beyond type coercion is
// validated. JSON and BSON field names are the wire contract and must match
// across both storage backends.
type Applicant struct {
	ID             kernel.ApplicantID `json:"id" bson:"id"`
	FullName       string             `json:"fullName" bson:"fullName"`
	LinkedinURL    string             `json:"linkedinUrl" bson:"linkedinUrl"`
	ExpectedSalary string             `json:"expectedSalary" bson:"expectedSalary"`
	Notes          string             `json:"notes" bson:"notes"`
	ResumeName     string             `json:"resumeName" bson:"resumeName"`
	ResumePath     string             `json:"resumePath" bson:"resumePath"`
	DateAdded      string             `json:"dateAdded" bson:"dateAdded"`
	Comments       []Comment          `json:"comments" bson:"comments"`
}

// Comment is one note on an applicant's thread. Person is the uniqueness
// key: adding a comment replaces any earlier comment from the same author.
type Comment struct {
	Person string `json:"person" bson:"person"`
	Text   string `json:"text" bson:"text"`
	Date   string `json:"date" bson:"date"`
}

// HasResume reports whether a resume file is associated with the record
func (a *Applicant) HasResume() bool {
	return a.ResumePath != ""
}

// CommentBy returns the comment left by person, if any
func (a *Applicant) CommentBy(person string) (Comment, bool) {
	for _, c := range a.Comments {
		if c.Person == person {
			return c, true
		}
	}
	return Comment{}, false
}

// MergeComment applies the replace-by-author policy: any existing comment
// whose Person equals c.Person is removed, then c is appended at the end.
// The input slice is never mutated.
func MergeComment(existing []Comment, c Comment) []Comment {
	merged := make([]Comment, 0, len(existing)+1)
	for _, e := range existing {
		if e.Person != c.Person {
			merged = append(merged, e)
		}
	}
	return append(merged, c)
}
