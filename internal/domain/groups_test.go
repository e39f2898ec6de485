package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func strPtr(s string) *string { return &s }

// TestLanguageGroups_KeepsInsertionOrder tests that keys come back in the order they were added.
func TestLanguageGroups_KeepsInsertionOrder(t *testing.T) {
	// Arrange
	groups := NewLanguageGroups()

	// Act
	groups.Ensure(GroupForks)
	groups.Append("Rust", Repository{Name: "a"})
	groups.Append("Go", Repository{Name: "b"})
	groups.Append("Rust", Repository{Name: "c"})

	// Assert
	if diff := cmp.Diff([]string{GroupForks, "Rust", "Go"}, groups.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	rust, ok := groups.Get("Rust")
	if !ok || len(rust) != 2 {
		t.Fatalf("expected 2 repositories in Rust, got %d (exists=%v)", len(rust), ok)
	}
}

// TestLanguageGroups_Delete tests removing a group.
func TestLanguageGroups_Delete(t *testing.T) {
	// Arrange
	groups := NewLanguageGroups()
	groups.Ensure(GroupForks)
	groups.Append("Go", Repository{Name: "b"})

	// Act
	groups.Delete(GroupForks)
	groups.Delete("missing")

	// Assert
	if groups.Has(GroupForks) {
		t.Error("expected Forks group to be removed")
	}
	if diff := cmp.Diff([]string{"Go"}, groups.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

// TestLanguageGroups_JSONRoundTrip tests that encoding preserves key order and content.
func TestLanguageGroups_JSONRoundTrip(t *testing.T) {
	// Arrange
	groups := NewLanguageGroups()
	groups.Append("TypeScript", Repository{Name: "web", Language: strPtr("TypeScript"), Link: RepositoryLinkPrefix + "u/web"})
	groups.Append(GroupOther, Repository{Name: "notes", Link: RepositoryLinkPrefix + "u/notes"})
	groups.Append("C", Repository{Name: "kernel", Language: strPtr("C"), Description: strPtr("toy kernel")})

	// Act
	data, err := json.Marshal(groups)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var decoded LanguageGroups
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Assert
	if diff := cmp.Diff(groups.Keys(), decoded.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	for _, key := range groups.Keys() {
		want, _ := groups.Get(key)
		got, _ := decoded.Get(key)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("group %s mismatch (-want +got):\n%s", key, diff)
		}
	}
}

// TestLanguageGroups_UnmarshalRejectsArray tests that a non-object payload is an error.
func TestLanguageGroups_UnmarshalRejectsArray(t *testing.T) {
	// Arrange
	var groups LanguageGroups

	// Act
	err := json.Unmarshal([]byte(`[1,2]`), &groups)

	// Assert
	if err == nil {
		t.Fatal("expected error for array payload")
	}
}

// TestRawRepository_KeepsPayload tests that unknown provider fields survive a round trip.
func TestRawRepository_KeepsPayload(t *testing.T) {
	// Arrange
	payload := `{"name":"repo","full_name":"u/repo","language":null,"description":"d","fork":true,"stargazers_count":7}`

	// Act
	var raw RawRepository
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out, err := json.Marshal(raw)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(out) != payload {
		t.Errorf("expected payload %s, got %s", payload, out)
	}
	if raw.FullName != "u/repo" || !raw.Fork || raw.Language != nil {
		t.Errorf("unexpected decoded fields: %+v", raw)
	}
}

// TestProfile_DisplayName tests the name fallback to login.
func TestProfile_DisplayName(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
	}{
		{"name set", Profile{Login: "octo", Name: strPtr("Octo Cat")}, "Octo Cat"},
		{"name nil", Profile{Login: "octo"}, "octo"},
		{"name empty", Profile{Login: "octo", Name: strPtr("")}, "octo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.DisplayName(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
