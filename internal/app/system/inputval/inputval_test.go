package inputval

import (
	"strings"
	"testing"
)

type registerInput struct {
	Name            string `validate:"required,max=100" label:"Name"`
	Email           string `validate:"required,email" label:"Email"`
	Password        string `validate:"required,min=8" label:"Password"`
	ConfirmPassword string `validate:"required,eqfield=Password" label:"Confirm password"`
}

func TestValidate_OK(t *testing.T) {
	in := registerInput{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Password:        "hunter22hunter22",
		ConfirmPassword: "hunter22hunter22",
	}
	if res := Validate(in); res.HasErrors() {
		t.Errorf("expected no errors, got %v", res.All())
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name     string
		in       registerInput
		wantPart string
	}{
		{
			name:     "missing name",
			in:       registerInput{Email: "a@b.co", Password: "longenough", ConfirmPassword: "longenough"},
			wantPart: "Name is required.",
		},
		{
			name:     "bad email",
			in:       registerInput{Name: "A", Email: "not-an-email", Password: "longenough", ConfirmPassword: "longenough"},
			wantPart: "Email must be a valid email address.",
		},
		{
			name:     "short password",
			in:       registerInput{Name: "A", Email: "a@b.co", Password: "short", ConfirmPassword: "short"},
			wantPart: "Password must be at least 8 characters.",
		},
		{
			name:     "mismatched confirmation",
			in:       registerInput{Name: "A", Email: "a@b.co", Password: "longenough", ConfirmPassword: "different1"},
			wantPart: "Confirm password does not match.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.in)
			if !res.HasErrors() {
				t.Fatal("expected a validation error")
			}
			found := false
			for _, msg := range res.All() {
				if strings.Contains(msg, tt.wantPart) {
					found = true
				}
			}
			if !found {
				t.Errorf("messages %v do not contain %q", res.All(), tt.wantPart)
			}
		})
	}
}

func TestValidate_RatingBounds(t *testing.T) {
	type reviewInput struct {
		Text   string `validate:"required" label:"Review text"`
		Rating int    `validate:"gte=1,lte=5" label:"Rating"`
	}

	if res := Validate(reviewInput{Text: "solid", Rating: 5}); res.HasErrors() {
		t.Errorf("rating 5 should pass, got %v", res.All())
	}
	if res := Validate(reviewInput{Text: "meh", Rating: 0}); !res.HasErrors() {
		t.Error("rating 0 should fail")
	}
	if res := Validate(reviewInput{Text: "meh", Rating: 6}); !res.HasErrors() {
		t.Error("rating 6 should fail")
	}
}
