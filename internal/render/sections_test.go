package render

import (
	"testing"

	"github.com/jonathan/applytrack/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *types.MasterResume {
	return &types.MasterResume{
		Header: types.Header{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Boston, MA",
		},
		Education: []types.Education{
			{
				ID:          "edu-1",
				Institution: "State University",
				Degree:      "B.S. Computer Science",
				Location:    "Boston, MA",
				StartDate:   "2018-09",
				EndDate:     "2022-05",
				Bullets: []types.Bullet{
					{ID: "b1", Text: "Graduated with honors", Enabled: true},
					{ID: "b2", Text: "Hidden coursework bullet", Enabled: false},
				},
			},
		},
		Experience: []types.Experience{
			{
				ID:        "exp-1",
				Company:   "Acme Corp",
				Title:     "Software Engineer",
				Location:  "Remote",
				StartDate: "2022-06",
				Bullets: []types.Bullet{
					{ID: "b3", Text: "Shipped the billing service", Enabled: true},
				},
			},
		},
		Projects: []types.Project{
			{
				ID:   "proj-1",
				Name: "Compiler Playground",
				Link: "https://example.com/playground",
				Bullets: []types.Bullet{
					{ID: "b4", Text: "Built an educational compiler UI", Enabled: true},
				},
			},
		},
		Skills: types.Skills{
			Technical: []string{"Go", "SQL"},
			Languages: []string{"English", "Spanish"},
		},
	}
}

func TestBuildSections_EmptyResume(t *testing.T) {
	sections := buildSections(&types.MasterResume{})
	assert.Empty(t, sections)
}

func TestBuildSections_OrderAndPresence(t *testing.T) {
	sections := buildSections(sampleResume())
	headings := make([]string, 0, len(sections))
	for _, s := range sections {
		headings = append(headings, s.Heading)
	}
	// Leadership is empty, so its section must be absent.
	assert.Equal(t, []string{
		HeadingEducation,
		HeadingExperience,
		HeadingProjects,
		HeadingSkills,
		HeadingLanguages,
	}, headings)
}

func TestBuildSections_FiltersDisabledBullets(t *testing.T) {
	sections := buildSections(sampleResume())
	require.NotEmpty(t, sections)

	education := sections[0]
	require.Len(t, education.Entries, 1)
	assert.Equal(t, []string{"Graduated with honors"}, education.Entries[0].Bullets)
}

func TestBuildSections_EntryFields(t *testing.T) {
	sections := buildSections(sampleResume())

	experience := sections[1]
	require.Len(t, experience.Entries, 1)
	e := experience.Entries[0]
	assert.Equal(t, "Software Engineer", e.Title)
	assert.Equal(t, "Acme Corp, Remote", e.Sub)
	assert.Equal(t, "2022-06 - Present", e.Dates)

	projects := sections[2]
	require.Len(t, projects.Entries, 1)
	assert.Equal(t, "https://example.com/playground", projects.Entries[0].Link)
	assert.Empty(t, projects.Entries[0].Dates)
}

func TestSubLine(t *testing.T) {
	assert.Equal(t, "Acme, Boston", subLine("Acme", "Boston"))
	assert.Equal(t, "Acme", subLine("Acme", ""))
	assert.Equal(t, "Boston", subLine("", "Boston"))
	assert.Equal(t, "", subLine("", ""))
}

func TestSkillLines(t *testing.T) {
	lines := skillLines(types.Skills{
		Technical:      []string{"Go"},
		Certifications: []string{"AWS SAA"},
	})
	assert.Equal(t, []string{"Technical: Go", "Certifications: AWS SAA"}, lines)
}
