package domain

import "encoding/json"

// Profile is the simplified view of a user account.
type Profile struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	PublicRepos int     `json:"public_repos"`
}

// DisplayName returns the user's name, or the login when the name is empty.
func (p Profile) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.Login
}

// RawUser is a user record as returned by the provider.
// Only the fields used downstream are decoded; the full payload is kept
// so it can be written back unchanged.
type RawUser struct {
	Login       string
	Name        *string
	PublicRepos int

	payload json.RawMessage
}

type rawUserFields struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	PublicRepos int     `json:"public_repos"`
}

// UnmarshalJSON decodes the used fields and retains the original payload.
func (u *RawUser) UnmarshalJSON(data []byte) error {
	var f rawUserFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	u.Login = f.Login
	u.Name = f.Name
	u.PublicRepos = f.PublicRepos
	u.payload = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes the original payload when available.
func (u RawUser) MarshalJSON() ([]byte, error) {
	if len(u.payload) > 0 {
		return u.payload, nil
	}
	return json.Marshal(rawUserFields{Login: u.Login, Name: u.Name, PublicRepos: u.PublicRepos})
}
