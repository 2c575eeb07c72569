package enums

import "testing"

func TestParseCarCountry(t *testing.T) {
	if _, err := ParseCarCountry("domestic"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseCarCountry("imported"); err == nil {
		t.Fatal("expected error for unknown country")
	}
}

func TestPreOrderStatusTerminal(t *testing.T) {
	if PreOrderStatusPending.IsTerminal() {
		t.Fatal("pending must not be terminal")
	}
	if !PreOrderStatusConfirmed.IsTerminal() || !PreOrderStatusCancelled.IsTerminal() {
		t.Fatal("confirmed and cancelled must be terminal")
	}
}

func TestParseFuelType(t *testing.T) {
	for _, raw := range []string{"petrol", "diesel", "hybrid", "electric"} {
		if _, err := ParseFuelType(raw); err != nil {
			t.Fatalf("expected %q to parse: %v", raw, err)
		}
	}
	if _, err := ParseFuelType("steam"); err == nil {
		t.Fatal("expected error for unknown fuel")
	}
}
