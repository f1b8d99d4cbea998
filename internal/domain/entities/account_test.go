package entities

import (
	"errors"
	"testing"
)

func TestAccount_SplitName(t *testing.T) {
	cases := []struct {
		name        string
		account     Account
		first, last string
		err         error
	}{
		{"split", Account{Name: "JaneDoe", FirstNameLength: 4}, "Jane", "Doe", nil},
		{"zero length", Account{Name: "Doe", FirstNameLength: 0}, "", "Doe", nil},
		{"whole name", Account{Name: "Jane", FirstNameLength: 4}, "Jane", "", nil},
		{"multibyte", Account{Name: "JoséLima", FirstNameLength: 4}, "José", "Lima", nil},
		{"empty name", Account{Name: "", FirstNameLength: 9}, "", "", nil},
		{"too long", Account{Name: "Jane", FirstNameLength: 5}, "", "", ErrFirstNameLengthOutOfRange},
		{"negative", Account{Name: "Jane", FirstNameLength: -1}, "", "", ErrFirstNameLengthOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last, err := tc.account.SplitName()
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if first != tc.first || last != tc.last {
				t.Fatalf("expected %q/%q, got %q/%q", tc.first, tc.last, first, last)
			}
		})
	}
}

func TestAccount_CustomerProfile(t *testing.T) {
	a := Account{Name: "JaneDoe", FirstNameLength: 4, City: "Springfield", StateOrProvince: "IL", PostalCode: "62701", Email: "j@example.com"}
	p, err := a.CustomerProfile()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.FirstName != "Jane" || p.LastName != "Doe" || p.State != "IL" || p.Zip != "62701" || p.Email != "j@example.com" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}
