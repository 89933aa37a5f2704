package parsing

import "strings"

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
}

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	normalized := strings.TrimSpace(skillName)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	// Capitalize all-lowercase single words; leave mixed case and acronyms alone
	if normalized == lower && !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeSkills normalizes and deduplicates a skill list, preserving
// first-seen order.
func NormalizeSkills(skills []string) []string {
	if len(skills) == 0 {
		return skills
	}

	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool)
	for _, s := range skills {
		n := NormalizeSkillName(s)
		if n == "" || seen[n] {
			continue
		}
		normalized = append(normalized, n)
		seen[n] = true
	}
	return normalized
}

// NormalizeKeywords lowercases, trims, and deduplicates keywords.
func NormalizeKeywords(keywords []string) []string {
	if len(keywords) == 0 {
		return keywords
	}

	normalized := make([]string, 0, len(keywords))
	seen := make(map[string]bool)
	for _, k := range keywords {
		n := strings.ToLower(strings.TrimSpace(k))
		if n == "" || seen[n] {
			continue
		}
		normalized = append(normalized, n)
		seen[n] = true
	}
	return normalized
}
