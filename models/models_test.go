package models

import (
	"errors"
	"reflect"
	"testing"
)

// Test placeholder extraction
func TestParsePathTemplate(t *testing.T) {
	tmpl, err := ParsePathTemplate("/api/v2/users/{user_id}/roles/{role_id}")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"user_id", "role_id"}
	if got := tmpl.Placeholders(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected placeholders %v, got %v", want, got)
	}

	if tmpl.String() != "/api/v2/users/{user_id}/roles/{role_id}" {
		t.Errorf("Expected raw template to be preserved, got %s", tmpl.String())
	}

	plain, err := ParsePathTemplate("/api/v2/users")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(plain.Placeholders()) != 0 {
		t.Errorf("Expected no placeholders, got %v", plain.Placeholders())
	}
}

// Test malformed templates
func TestParsePathTemplateErrors(t *testing.T) {
	invalid := []string{
		"/api/v2/users/{user_id",
		"/api/v2/users/user_id}",
		"/api/v2/users/{}",
		"/api/v2/users/{{user_id}",
		"/api/v2/users/{a/b}",
	}

	for _, raw := range invalid {
		if _, err := ParsePathTemplate(raw); err == nil {
			t.Errorf("Expected error for template %q", raw)
		}
	}
}

// Test substitution and escaping
func TestPathTemplateExpand(t *testing.T) {
	tmpl := MustParsePathTemplate("/api/v2/users/{user_id}/logs")

	path, err := tmpl.Expand(func(name string) (string, error) {
		if name != "user_id" {
			t.Errorf("Unexpected placeholder %s", name)
		}
		return "auth0|abc 123", nil
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if path != "/api/v2/users/auth0%7Cabc%20123/logs" {
		t.Errorf("Unexpected expanded path: %s", path)
	}
}

// Test that lookup errors stop expansion
func TestPathTemplateExpandError(t *testing.T) {
	tmpl := MustParsePathTemplate("/api/v2/roles/{role_id}")
	lookupErr := errors.New("missing")

	_, err := tmpl.Expand(func(string) (string, error) { return "", lookupErr })
	if !errors.Is(err, lookupErr) {
		t.Errorf("Expected lookup error, got: %v", err)
	}
}

// Test which methods carry a body
func TestMethodHasBody(t *testing.T) {
	cases := map[Method]bool{
		MethodGet:    false,
		MethodDelete: false,
		MethodPost:   true,
		MethodPut:    true,
		MethodPatch:  true,
	}

	for method, want := range cases {
		if method.HasBody() != want {
			t.Errorf("Expected %s HasBody=%v", method, want)
		}
	}
}

func TestMustParsePathTemplatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for malformed template")
		}
	}()
	MustParsePathTemplate("/api/v2/{broken")
}
