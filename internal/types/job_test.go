package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeJobType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"full_time", JobTypeFullTime},
		{"Full-Time", JobTypeFullTime},
		{"fulltime", JobTypeFullTime},
		{"part time", JobTypePartTime},
		{"Intern", JobTypeInternship},
		{"freelance", JobTypeContract},
		{"REMOTE", JobTypeRemote},
		{"something else", JobTypeFullTime},
		{"", JobTypeFullTime},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeJobType(tt.in), "input %q", tt.in)
	}
}

func TestValidJobType(t *testing.T) {
	for _, jt := range JobTypes {
		assert.True(t, ValidJobType(jt))
	}
	assert.False(t, ValidJobType("gig"))
}
