// Package soap extracts Subjective/Objective/Assessment/Plan sections
// from the free text an AI provider returns when drafting a clinical
// note.
package soap

import (
	"regexp"
	"strings"
)

// Note holds the four SOAP sections. Sections the model did not emit
// stay empty; absence is never an error.
type Note struct {
	Subjective string `json:"subjective"`
	Objective  string `json:"objective"`
	Assessment string `json:"assessment"`
	Plan       string `json:"plan"`
}

// IsEmpty reports whether no section was recognized.
func (n *Note) IsEmpty() bool {
	return n.Subjective == "" && n.Objective == "" && n.Assessment == "" && n.Plan == ""
}

// Heading forms the models actually produce: "Subjective:", "S:",
// "**Subjective:**", "## Subjective", "S - ...". Matched per line,
// case-insensitively.
var headingRe = regexp.MustCompile(`(?i)^\s*(?:#+\s*)?(?:\*\*)?\s*(subjective|objective|assessment|plan|s|o|a|p)\s*(?:\*\*)?\s*(?:[:\-]\s*(.*)|$)`)

var sectionNames = map[string]string{
	"s":          "subjective",
	"o":          "objective",
	"a":          "assessment",
	"p":          "plan",
	"subjective": "subjective",
	"objective":  "objective",
	"assessment": "assessment",
	"plan":       "plan",
}

// Parse splits raw LLM output into SOAP sections. Text before the
// first recognized heading is dropped; text after a heading accrues to
// that section until the next heading.
func Parse(raw string) *Note {
	note := &Note{}
	if strings.TrimSpace(raw) == "" {
		return note
	}

	sections := map[string][]string{}
	current := ""

	for _, line := range strings.Split(raw, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			current = sectionNames[strings.ToLower(m[1])]
			if rest := strings.TrimSpace(stripEmphasis(m[2])); rest != "" {
				sections[current] = append(sections[current], rest)
			}
			continue
		}

		if current == "" {
			continue
		}

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			sections[current] = append(sections[current], trimmed)
		}
	}

	note.Subjective = strings.Join(sections["subjective"], "\n")
	note.Objective = strings.Join(sections["objective"], "\n")
	note.Assessment = strings.Join(sections["assessment"], "\n")
	note.Plan = strings.Join(sections["plan"], "\n")

	return note
}

func stripEmphasis(s string) string {
	return strings.Trim(s, "* ")
}
