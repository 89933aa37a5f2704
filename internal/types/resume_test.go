package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactLine_SkipsEmptyFields(t *testing.T) {
	h := Header{Email: "ada@example.com", Location: "London", Phone: "  "}
	assert.Equal(t, "London | ada@example.com", h.ContactLine())

	assert.Empty(t, Header{}.ContactLine())
}

func TestVisibleBullets(t *testing.T) {
	bullets := []Bullet{
		{ID: "b1", Text: "kept", Enabled: true},
		{ID: "b2", Text: "hidden", Enabled: false},
		{ID: "b3", Text: "also kept", Enabled: true},
	}

	visible := VisibleBullets(bullets)

	require.Len(t, visible, 2)
	assert.Equal(t, "b1", visible[0].ID)
	assert.Equal(t, "b3", visible[1].ID)
}

func TestFilterEnabled_DoesNotMutateOriginal(t *testing.T) {
	resume := MasterResume{
		Experience: []Experience{
			{
				ID:      "exp-1",
				Company: "Globex",
				Bullets: []Bullet{
					{ID: "b1", Text: "kept", Enabled: true},
					{ID: "b2", Text: "hidden", Enabled: false},
				},
			},
		},
		Projects: []Project{
			{ID: "p1", Name: "Side Project", Bullets: []Bullet{{ID: "b3", Enabled: false}}},
		},
	}

	filtered := resume.FilterEnabled()

	require.Len(t, filtered.Experience[0].Bullets, 1)
	assert.Equal(t, "b1", filtered.Experience[0].Bullets[0].ID)
	assert.Empty(t, filtered.Projects[0].Bullets)

	// Original keeps the disabled bullets
	assert.Len(t, resume.Experience[0].Bullets, 2)
	assert.Len(t, resume.Projects[0].Bullets, 1)
}

func TestDefaultSummary(t *testing.T) {
	m := MasterResume{Summaries: []Summary{
		{ID: "s1", Text: "first"},
		{ID: "s2", Text: "flagged", IsDefault: true},
	}}
	require.NotNil(t, m.DefaultSummary())
	assert.Equal(t, "s2", m.DefaultSummary().ID)

	m.Summaries[1].IsDefault = false
	assert.Equal(t, "s1", m.DefaultSummary().ID)

	empty := MasterResume{}
	assert.Nil(t, empty.DefaultSummary())
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "2024-01 - 2025-06", FormatDateRange("2024-01", "2025-06"))
	assert.Equal(t, "2024-01 - Present", FormatDateRange("2024-01", ""))
	assert.Equal(t, "2025-06", FormatDateRange("", "2025-06"))
	assert.Empty(t, FormatDateRange(" ", ""))
}
