package entities

import "github.com/google/uuid"

// TenantCredentials are the BluePay account details configured for one tenant.
//
// Storage model:
//   - PK: tenant_id (one row per tenant)
//   - Rows are written by an external administrative process; the plugin only reads them.

type TenantCredentials struct {
	TenantID  uuid.UUID `json:"tenant_id"`
	AccountID string    `json:"account_id"`
	SecretKey string    `json:"-"`
	Test      bool      `json:"test"`
}

// Mode is the gateway processing mode derived from the test flag.
func (c TenantCredentials) Mode() string {
	if c.Test {
		return "TEST"
	}
	return "LIVE"
}

// MaskedAccountID keeps the last four characters of the gateway account id for log lines.
func (c TenantCredentials) MaskedAccountID() string {
	if len(c.AccountID) <= 4 {
		return "****"
	}
	return "****" + c.AccountID[len(c.AccountID)-4:]
}
