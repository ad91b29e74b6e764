package soap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_SpelledOutHeadings(t *testing.T) {
	raw := `Subjective: Patient reports throbbing pain in lower left molar for three days.
Objective: Tooth #19 shows deep occlusal caries. Percussion positive.
Assessment: Irreversible pulpitis, tooth #19.
Plan: Endodontic therapy followed by crown. Prescribed ibuprofen 600mg.`

	note := Parse(raw)

	assert.Contains(t, note.Subjective, "throbbing pain")
	assert.Contains(t, note.Objective, "deep occlusal caries")
	assert.Contains(t, note.Assessment, "Irreversible pulpitis")
	assert.Contains(t, note.Plan, "Endodontic therapy")
}

func TestParse_SingleLetterHeadings(t *testing.T) {
	raw := `S: Sensitivity to cold, upper right.
O: No visible caries, gingival recession #3.
A: Dentin hypersensitivity.
P: Desensitizing varnish, review in 4 weeks.`

	note := Parse(raw)

	assert.Equal(t, "Sensitivity to cold, upper right.", note.Subjective)
	assert.Equal(t, "No visible caries, gingival recession #3.", note.Objective)
	assert.Equal(t, "Dentin hypersensitivity.", note.Assessment)
	assert.Equal(t, "Desensitizing varnish, review in 4 weeks.", note.Plan)
}

func TestParse_MarkdownHeadings(t *testing.T) {
	raw := `## Subjective
Patient here for routine cleaning, no complaints.

## Objective
Light supragingival calculus, probing depths 2-3mm.

## Assessment
Healthy periodontium.

## Plan
Adult prophylaxis completed. Recall 6 months.`

	note := Parse(raw)

	assert.Contains(t, note.Subjective, "routine cleaning")
	assert.Contains(t, note.Objective, "calculus")
	assert.Contains(t, note.Assessment, "Healthy periodontium")
	assert.Contains(t, note.Plan, "Recall 6 months")
}

func TestParse_BoldHeadings(t *testing.T) {
	raw := `**Subjective:** Broken filling, no pain.
**Plan:** Replace with composite restoration.`

	note := Parse(raw)

	assert.Equal(t, "Broken filling, no pain.", note.Subjective)
	assert.Equal(t, "Replace with composite restoration.", note.Plan)
	assert.Empty(t, note.Objective)
	assert.Empty(t, note.Assessment)
}

func TestParse_MultilineSections(t *testing.T) {
	raw := `Objective:
Tooth #30 fractured cusp.
Radiograph shows no periapical pathology.

Assessment: Fractured cusp, restorable.`

	note := Parse(raw)

	assert.Contains(t, note.Objective, "fractured cusp")
	assert.Contains(t, note.Objective, "no periapical pathology")
	assert.Equal(t, "Fractured cusp, restorable.", note.Assessment)
}

func TestParse_PreambleDropped(t *testing.T) {
	raw := `Here is the SOAP note you requested:

Subjective: No complaints.`

	note := Parse(raw)

	assert.Equal(t, "No complaints.", note.Subjective)
	assert.NotContains(t, note.Subjective, "SOAP note you requested")
}

func TestParse_MissingSectionsAreEmpty(t *testing.T) {
	note := Parse("Assessment: Gingivitis.")

	assert.Empty(t, note.Subjective)
	assert.Empty(t, note.Objective)
	assert.Equal(t, "Gingivitis.", note.Assessment)
	assert.Empty(t, note.Plan)
	assert.False(t, note.IsEmpty())
}

func TestParse_EmptyInput(t *testing.T) {
	assert.True(t, Parse("").IsEmpty())
	assert.True(t, Parse("   \n\t ").IsEmpty())
	assert.True(t, Parse("no headings anywhere in this text").IsEmpty())
}
