package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"golang", "Go"},
		{"Golang", "Go"},
		{"js", "JavaScript"},
		{"k8s", "Kubernetes"},
		{"postgres", "PostgreSQL"},
		{"python", "Python"},
		{"GraphQL", "GraphQL"},
		{"  Go  ", "Go"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeSkillName(tt.input), "input: %q", tt.input)
	}
}

func TestNormalizeSkills_Dedupes(t *testing.T) {
	result := NormalizeSkills([]string{"golang", "Go", "js", "JavaScript", "", "react.js"})
	assert.Equal(t, []string{"Go", "JavaScript", "React"}, result)
}

func TestNormalizeKeywords(t *testing.T) {
	result := NormalizeKeywords([]string{"  Distributed Systems ", "distributed systems", "gRPC", ""})
	assert.Equal(t, []string{"distributed systems", "grpc"}, result)
}
