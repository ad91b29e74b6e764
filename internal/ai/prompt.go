package ai

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a dental clinical documentation assistant. ` +
	`Convert the visit transcript into a SOAP note. Respond with exactly four ` +
	`sections labeled "Subjective:", "Objective:", "Assessment:" and "Plan:". ` +
	`Use professional dental terminology, reference teeth by universal numbering, ` +
	`and do not invent findings that are not supported by the transcript.`

// SystemPrompt returns the drafting instruction shared by all providers.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt assembles the user message for a draft request.
func BuildUserPrompt(req DraftRequest) string {
	var b strings.Builder

	if req.ChiefComplaint != "" {
		fmt.Fprintf(&b, "Chief complaint: %s\n\n", req.ChiefComplaint)
	}
	if req.PatientContext != "" {
		fmt.Fprintf(&b, "Patient context: %s\n\n", req.PatientContext)
	}
	fmt.Fprintf(&b, "Visit transcript:\n%s", req.Transcript)

	return b.String()
}
