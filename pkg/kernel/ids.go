package kernel

import (
	"strconv"
	"sync/atomic"
	"time"
)

// ApplicantID identifies one applicant record. IDs are stamped from the
// wall clock in milliseconds at creation time and bumped past the last
// issued value, so they stay unique within one process even when records
// are created inside the same millisecond.
type ApplicantID int64

var lastIssued atomic.Int64

// NewApplicantID stamps a fresh clock-derived identifier
func NewApplicantID() ApplicantID {
	now := time.Now().UnixMilli()
	for {
		last := lastIssued.Load()
		if now <= last {
			now = last + 1
		}
		if lastIssued.CompareAndSwap(last, now) {
			return ApplicantID(now)
		}
	}
}

// ParseApplicantID parses the decimal form used in URL paths
func ParseApplicantID(s string) (ApplicantID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ApplicantID(n), nil
}

func (id ApplicantID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id ApplicantID) Int64() int64   { return int64(id) }
func (id ApplicantID) IsZero() bool   { return id == 0 }
