package services

import (
	"dentalai_backend/internal/cdt"
	"dentalai_backend/internal/services/dto"
)

type CodeService interface {
	// Suggest scores the description against the CDT reference table
	// and returns matches best first. limit <= 0 returns everything.
	Suggest(description string, limit int) *dto.CodeSuggestionsResponse

	// Table returns the full CDT reference table.
	Table() []cdt.CodeEntry
}

type CodeServiceImpl struct{}

func NewCodeService() CodeService {
	return &CodeServiceImpl{}
}

func (s *CodeServiceImpl) Suggest(description string, limit int) *dto.CodeSuggestionsResponse {
	matches := cdt.TopN(cdt.Match(description), limit)

	suggestions := make([]dto.CodeSuggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, dto.CodeSuggestion{
			Code:        m.Code,
			Description: m.Description,
			Score:       m.Score,
		})
	}

	return &dto.CodeSuggestionsResponse{
		Query:       description,
		Suggestions: suggestions,
	}
}

func (s *CodeServiceImpl) Table() []cdt.CodeEntry {
	return cdt.ReferenceTable
}
