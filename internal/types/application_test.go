package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("ghosted"))
	assert.False(t, ValidStatus(""))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Interview", StatusLabel("interview"))
	assert.Equal(t, "Draft", StatusLabel("DRAFT"))
	assert.Empty(t, StatusLabel("  "))
}
