package portfolio

import (
	"errors"
	"testing"
)

const completeDoc = `{
	"personal": {"summary": "hi"},
	"experience": [],
	"education": [],
	"technicalSkills": {},
	"projects": []
}`

func TestValidateComplete(t *testing.T) {
	// Empty arrays and objects are present and truthy; only the key's
	// absence (or a falsy scalar) rejects the document.
	if err := Validate([]byte(completeDoc)); err != nil {
		t.Errorf("Validate error: %v", err)
	}
}

func TestValidateMissingKeys(t *testing.T) {
	err := Validate([]byte(`{"personal":{"summary":"hi"}}`))

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}

	want := []string{"experience", "education", "technicalSkills", "projects"}
	if len(valErr.Missing) != len(want) {
		t.Fatalf("missing = %v, want %v", valErr.Missing, want)
	}
	for i, key := range want {
		if valErr.Missing[i] != key {
			t.Errorf("missing[%d] = %q, want %q (order must follow the required list)", i, valErr.Missing[i], key)
		}
	}

	wantMsg := "portfolio data missing required sections: experience, education, technicalSkills, projects"
	if valErr.Error() != wantMsg {
		t.Errorf("message = %q, want %q", valErr.Error(), wantMsg)
	}
}

func TestValidateFalsyValues(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		ok   bool
	}{
		{"null section", `{"personal":null,"experience":[],"education":[],"technicalSkills":{},"projects":[]}`, false},
		{"false section", `{"personal":false,"experience":[],"education":[],"technicalSkills":{},"projects":[]}`, false},
		{"empty string section", `{"personal":"","experience":[],"education":[],"technicalSkills":{},"projects":[]}`, false},
		{"zero section", `{"personal":0,"experience":[],"education":[],"technicalSkills":{},"projects":[]}`, false},
		{"truthy scalar section", `{"personal":"x","experience":[],"education":[],"technicalSkills":{},"projects":[]}`, true},
		{"all present", completeDoc, true},
	}

	for _, tt := range tests {
		err := Validate([]byte(tt.doc))
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%s: expected a validation error", tt.name)
		}
	}
}

func TestStarterDocumentValidates(t *testing.T) {
	doc := StarterDocument()
	data, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if err := Validate(data); err != nil {
		t.Errorf("starter document must validate: %v", err)
	}
}
