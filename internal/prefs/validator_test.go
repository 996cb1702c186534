package prefs

import "testing"

func TestValidate_ValidDocument(t *testing.T) {
	doc := `{"packageManager": "yarn", "defaultFramework": "react", "gitInit": true, "plugins": []}`

	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("Validate() invalid, issues: %v", result.Issues)
	}
}

func TestValidate_InvalidEnum(t *testing.T) {
	doc := `{"packageManager": "bun"}`

	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Error("Validate() reported valid for an unknown package manager")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestValidate_WrongType(t *testing.T) {
	doc := `{"gitInit": "yes"}`

	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Error("Validate() reported valid for a non-boolean gitInit")
	}
}

func TestValidate_UnknownKey(t *testing.T) {
	doc := `{"packageManager": "npm", "theme": "dark"}`

	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Error("Validate() reported valid for an unknown key")
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if _, err := Validate([]byte("{")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
