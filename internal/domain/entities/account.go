package entities

import (
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ErrFirstNameLengthOutOfRange is returned when the configured first name length
// does not fit inside the account display name.
var ErrFirstNameLengthOutOfRange = errors.New("first name length out of range")

// Account is the subset of the billing platform account used to build the
// customer profile sent to the gateway.

type Account struct {
	ID              uuid.UUID `json:"accountId"`
	Name            string    `json:"name"`
	FirstNameLength int       `json:"firstNameLength"`
	Email           string    `json:"email"`
	Address1        string    `json:"address1"`
	Address2        string    `json:"address2"`
	City            string    `json:"city"`
	StateOrProvince string    `json:"state"`
	PostalCode      string    `json:"postalCode"`
	Country         string    `json:"country"`
	Phone           string    `json:"phone"`
}

// CustomerProfile is the customer block attached to a tokenization request.
type CustomerProfile struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	State     string
	Zip       string
	Country   string
	Phone     string
	Email     string
}

// SplitName cuts the display name at FirstNameLength (counted in characters).
// An empty name yields empty first and last names.
func (a Account) SplitName() (first, last string, err error) {
	if a.Name == "" {
		return "", "", nil
	}
	if a.FirstNameLength < 0 || a.FirstNameLength > utf8.RuneCountInString(a.Name) {
		return "", "", ErrFirstNameLengthOutOfRange
	}
	runes := []rune(a.Name)
	return string(runes[:a.FirstNameLength]), string(runes[a.FirstNameLength:]), nil
}

// CustomerProfile builds the gateway customer block for the account.
func (a Account) CustomerProfile() (CustomerProfile, error) {
	first, last, err := a.SplitName()
	if err != nil {
		return CustomerProfile{}, err
	}
	return CustomerProfile{
		FirstName: first,
		LastName:  last,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.StateOrProvince,
		Zip:       a.PostalCode,
		Country:   a.Country,
		Phone:     a.Phone,
		Email:     a.Email,
	}, nil
}
