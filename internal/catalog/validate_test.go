package catalog

import (
	"strings"
	"testing"
)

func validQuestion(id string) Question {
	return Question{
		ID:     id,
		Active: true,
		Options: []Option{
			{OptionID: id + "-a", Text: "first", Alignment: "Investigative"},
			{OptionID: id + "-b", Text: "second", Alignment: "Openness"},
		},
	}
}

func TestValidateQuestions(t *testing.T) {
	tests := []struct {
		name      string
		questions []Question
		wantErr   string
	}{
		{
			name:      "valid",
			questions: []Question{validQuestion("q1"), validQuestion("q2")},
		},
		{
			name:      "duplicate question id",
			questions: []Question{validQuestion("q1"), validQuestion("q1")},
			wantErr:   "duplicate question id",
		},
		{
			name: "too few options",
			questions: []Question{{
				ID:      "q1",
				Options: []Option{{OptionID: "q1-a", Text: "only"}},
			}},
			wantErr: "need at least 2",
		},
		{
			name: "duplicate option id",
			questions: []Question{{
				ID: "q1",
				Options: []Option{
					{OptionID: "q1-a", Text: "first"},
					{OptionID: "q1-a", Text: "second"},
				},
			}},
			wantErr: "duplicate option id",
		},
		{
			name: "unknown alignment",
			questions: []Question{{
				ID: "q1",
				Options: []Option{
					{OptionID: "q1-a", Text: "first", Alignment: "Charisma"},
					{OptionID: "q1-b", Text: "second"},
				},
			}},
			wantErr: "unknown alignment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestions(tt.questions)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTypes(t *testing.T) {
	full := make([]PersonalityType, 0, 30)
	for _, key := range CombinedKeys() {
		full = append(full, PersonalityType{ID: key, Title: key})
	}

	if err := validateTypes(full); err != nil {
		t.Fatalf("full catalog should validate: %v", err)
	}

	if err := validateTypes(nil); err == nil {
		t.Error("empty catalog should fail")
	}

	missing := full[1:]
	if err := validateTypes(missing); err == nil || !strings.Contains(err.Error(), "no personality type record") {
		t.Errorf("missing key error = %v", err)
	}

	dup := append([]PersonalityType{full[0]}, full...)
	if err := validateTypes(dup); err == nil || !strings.Contains(err.Error(), "duplicate personality type id") {
		t.Errorf("duplicate id error = %v", err)
	}
}

func TestEmbeddedDocumentsPassSchemaValidation(t *testing.T) {
	// load() runs the JSON Schema pass as well as the structural checks;
	// re-running it here pins a regression in the embedded data.
	if _, err := load(); err != nil {
		t.Fatalf("embedded catalog failed to load: %v", err)
	}
}
