package models

import "testing"

func TestContact_Matches(t *testing.T) {
	c := Contact{Name: "Ann Lee", Phone: "+1 555 0100"}
	if !c.Matches("ann") {
		t.Error("expected case-insensitive name match")
	}
	if !c.Matches("555") {
		t.Error("expected phone substring match")
	}
	if c.Matches("bob") {
		t.Error("unexpected match")
	}
}

func TestContact_EmailValidation(t *testing.T) {
	if err := ValidateStruct(Contact{Name: "Ann"}); err != nil {
		t.Errorf("empty email should be valid: %v", err)
	}
	if err := ValidateStruct(Contact{Name: "Ann", Email: "not-an-email"}); err == nil {
		t.Error("expected invalid email to fail validation")
	}
}
