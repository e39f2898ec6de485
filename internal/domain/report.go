package domain

// AggregateResult is the complete output of one export run.
type AggregateResult struct {
	Profile        Profile        `json:"profile"`
	Repos          []Repository   `json:"repos"`
	LanguageGroups LanguageGroups `json:"languageGroups"`
	RawData        *RawData       `json:"rawData,omitempty"`
}

// RawData holds the provider payloads an AggregateResult was built from.
type RawData struct {
	User         RawUser         `json:"user"`
	Repositories []RawRepository `json:"repositories"`
}
