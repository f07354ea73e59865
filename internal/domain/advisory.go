package domain

// AdvisoryNormalized carries the normalized view of the request derived by the
// advisory analyzer. The inferred language is display-level only; it never
// overrides an explicitly supplied language.
type AdvisoryNormalized struct {
	Language       string   `json:"language"`
	StyleHints     []string `json:"styleHints"`
	CulturalGuards []string `json:"culturalGuards"`
}

// AdvisoryResult is the output of the input-quality advisory. It is a pure,
// deterministic function of the request text and carries no state.
type AdvisoryResult struct {
	Warnings    []string           `json:"warnings"`
	Suggestions []string           `json:"suggestions"`
	Normalized  AdvisoryNormalized `json:"normalized"`
}

// HasWarnings reports whether the advisory raised at least one warning.
func (a *AdvisoryResult) HasWarnings() bool {
	return a != nil && len(a.Warnings) > 0
}
