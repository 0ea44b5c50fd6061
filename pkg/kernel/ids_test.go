package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicantIDIsUniquePerProcess(t *testing.T) {
	seen := make(map[ApplicantID]bool)
	for i := 0; i < 1000; i++ {
		id := NewApplicantID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewApplicantIDIsIncreasing(t *testing.T) {
	prev := NewApplicantID()
	for i := 0; i < 100; i++ {
		next := NewApplicantID()
		assert.Greater(t, next.Int64(), prev.Int64())
		prev = next
	}
}

func TestParseApplicantIDRoundtrip(t *testing.T) {
	id := NewApplicantID()

	parsed, err := ParseApplicantID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseApplicantIDRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "abc", "12.5", "12abc"} {
		_, err := ParseApplicantID(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, ApplicantID(0).IsZero())
	assert.False(t, NewApplicantID().IsZero())
}
