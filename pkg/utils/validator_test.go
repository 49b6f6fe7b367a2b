package utils

import "testing"

type sampleInput struct {
	Email  string `validate:"required,email"`
	Rating int    `validate:"min=1,max=5"`
	Status string `validate:"oneof=Pending Confirmed"`
}

func TestValidateStructOK(t *testing.T) {
	errs := ValidateStruct(sampleInput{
		Email:  "mill@example.com",
		Rating: 4,
		Status: "Pending",
	})
	if len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}

func TestValidateStructReportsEachField(t *testing.T) {
	errs := ValidateStruct(sampleInput{
		Email:  "not-an-email",
		Rating: 9,
		Status: "Shipped",
	})

	if errs["Email"] != "Invalid email format" {
		t.Errorf("Email error = %q", errs["Email"])
	}
	if errs["Rating"] != "Maximum is 5" {
		t.Errorf("Rating error = %q", errs["Rating"])
	}
	if errs["Status"] != "Must be one of: Pending, Confirmed" {
		t.Errorf("Status error = %q", errs["Status"])
	}
}

func TestParseInt64(t *testing.T) {
	id, err := ParseInt64("42")
	if err != nil || id != 42 {
		t.Errorf("got %d, %v", id, err)
	}
	if _, err := ParseInt64("abc"); err == nil {
		t.Error("garbage accepted")
	}
}
