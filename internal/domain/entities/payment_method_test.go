package entities

import "testing"

func TestCardInstrument_ExpirationDate(t *testing.T) {
	cases := map[string]CardInstrument{
		"0725":   {ExpirationMonth: "7", ExpirationYear: "25"},
		"1225":   {ExpirationMonth: "12", ExpirationYear: "25"},
		"072031": {ExpirationMonth: "07", ExpirationYear: "2031"},
	}
	for want, card := range cases {
		if got := card.ExpirationDate(); got != want {
			t.Errorf("month=%s year=%s: expected %s, got %s", card.ExpirationMonth, card.ExpirationYear, want, got)
		}
	}
}

func TestTenantCredentials(t *testing.T) {
	c := TenantCredentials{AccountID: "100012345678", Test: true}
	if c.Mode() != "TEST" {
		t.Fatalf("expected TEST, got %s", c.Mode())
	}
	c.Test = false
	if c.Mode() != "LIVE" {
		t.Fatalf("expected LIVE, got %s", c.Mode())
	}
	if got := c.MaskedAccountID(); got != "****5678" {
		t.Fatalf("unexpected mask %s", got)
	}
	if got := (TenantCredentials{AccountID: "12"}).MaskedAccountID(); got != "****" {
		t.Fatalf("unexpected mask %s", got)
	}
}
