package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// LanguageGroups maps a group key to its repositories.
// Keys keep the order in which they were first added, both in memory and
// when encoded as a JSON object.
type LanguageGroups struct {
	keys   []string
	groups map[string][]Repository
}

// NewLanguageGroups returns an empty LanguageGroups.
func NewLanguageGroups() LanguageGroups {
	return LanguageGroups{groups: make(map[string][]Repository)}
}

// Ensure creates an empty group for key if it does not exist yet.
func (g *LanguageGroups) Ensure(key string) {
	if g.groups == nil {
		g.groups = make(map[string][]Repository)
	}
	if _, ok := g.groups[key]; ok {
		return
	}
	g.keys = append(g.keys, key)
	g.groups[key] = []Repository{}
}

// Append adds repo to the group named key, creating the group on first use.
func (g *LanguageGroups) Append(key string, repo Repository) {
	g.Ensure(key)
	g.groups[key] = append(g.groups[key], repo)
}

// Delete removes the group named key.
func (g *LanguageGroups) Delete(key string) {
	if _, ok := g.groups[key]; !ok {
		return
	}
	delete(g.groups, key)
	for i, k := range g.keys {
		if k == key {
			g.keys = append(g.keys[:i:i], g.keys[i+1:]...)
			break
		}
	}
}

// Get returns the repositories of a group and whether the group exists.
func (g LanguageGroups) Get(key string) ([]Repository, bool) {
	repos, ok := g.groups[key]
	return repos, ok
}

// Has reports whether a group named key exists.
func (g LanguageGroups) Has(key string) bool {
	_, ok := g.groups[key]
	return ok
}

// Keys returns the group keys in insertion order.
func (g LanguageGroups) Keys() []string {
	keys := make([]string, len(g.keys))
	copy(keys, g.keys)
	return keys
}

// Len returns the number of groups.
func (g LanguageGroups) Len() int {
	return len(g.keys)
}

// MarshalJSON encodes the groups as a JSON object in insertion order.
func (g LanguageGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		repos := g.groups[key]
		if repos == nil {
			repos = []Repository{}
		}
		v, err := json.Marshal(repos)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the order of its keys.
func (g *LanguageGroups) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("language groups: expected object, got %v", tok)
	}

	groups := NewLanguageGroups()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("language groups: expected key, got %v", tok)
		}

		var repos []Repository
		if err := dec.Decode(&repos); err != nil {
			return fmt.Errorf("group %q: %w", key, err)
		}

		groups.Ensure(key)
		groups.groups[key] = append(groups.groups[key], repos...)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*g = groups
	return nil
}
