package domain

import "encoding/json"

// Repository is the simplified view of a repository.
type Repository struct {
	Name        string  `json:"name"`
	Language    *string `json:"language"`
	Description *string `json:"description"`
	Link        string  `json:"link"`
	IsFork      bool    `json:"isFork"`
}

// RawRepository is a repository record as returned by the provider.
// Like RawUser it keeps the full payload next to the decoded fields.
type RawRepository struct {
	Name        string
	FullName    string
	Language    *string
	Description *string
	Fork        bool

	payload json.RawMessage
}

type rawRepositoryFields struct {
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Language    *string `json:"language"`
	Description *string `json:"description"`
	Fork        bool    `json:"fork"`
}

// UnmarshalJSON decodes the used fields and retains the original payload.
func (r *RawRepository) UnmarshalJSON(data []byte) error {
	var f rawRepositoryFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	r.Name = f.Name
	r.FullName = f.FullName
	r.Language = f.Language
	r.Description = f.Description
	r.Fork = f.Fork
	r.payload = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the original payload when available.
func (r RawRepository) MarshalJSON() ([]byte, error) {
	if len(r.payload) > 0 {
		return r.payload, nil
	}
	return json.Marshal(rawRepositoryFields{
		Name:        r.Name,
		FullName:    r.FullName,
		Language:    r.Language,
		Description: r.Description,
		Fork:        r.Fork,
	})
}
