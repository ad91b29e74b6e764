package dto

// CodeSuggestion is one scored CDT match returned by the lookup endpoint.
type CodeSuggestion struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Score       int    `json:"score"`
}

type CodeSuggestionsResponse struct {
	Query       string           `json:"query"`
	Suggestions []CodeSuggestion `json:"suggestions"`
}
