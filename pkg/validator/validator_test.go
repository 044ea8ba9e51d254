package validator

import "testing"

type samplePayload struct {
	Name     string `validate:"required,max=10"`
	Email    string `validate:"omitempty,email"`
	Gender   string `validate:"required,oneof=M F O"`
	Duration int    `validate:"required,gt=0"`
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()
	payload := samplePayload{Name: "Ada", Email: "ada@example.com", Gender: "F", Duration: 30}
	if err := v.Validate(&payload); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}

func TestValidateOptionalEmailSkipped(t *testing.T) {
	v := NewValidator()
	payload := samplePayload{Name: "Ada", Gender: "F", Duration: 30}
	if err := v.Validate(&payload); err != nil {
		t.Fatalf("empty optional email should pass, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()
	payload := samplePayload{Email: "not-an-email", Gender: "X", Duration: 0}

	err := v.Validate(&payload)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	formatted := v.FormatValidationErrors(err)
	if formatted["Name"] != "Name is required" {
		t.Errorf("Name error = %q", formatted["Name"])
	}
	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("Email error = %q", formatted["Email"])
	}
	if formatted["Gender"] != "Gender must be one of: M F O" {
		t.Errorf("Gender error = %q", formatted["Gender"])
	}
	if _, ok := formatted["Duration"]; !ok {
		t.Error("expected an error for Duration")
	}
}
