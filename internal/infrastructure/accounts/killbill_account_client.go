package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound = interfaces.ErrAccountNotFound
	ErrAccountAccess   = errors.New("account service unavailable")
)

const defaultTimeout = 10 * time.Second

// Settings are the Kill Bill API coordinates used to read accounts.
type Settings struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Username  string
	Password  string
	Timeout   time.Duration
}

// KillBillAccountClient reads accounts through the Kill Bill REST API.
type KillBillAccountClient struct {
	settings   Settings
	httpClient *http.Client
}

var _ interfaces.IAccountService = (*KillBillAccountClient)(nil)

func NewKillBillAccountClient(s Settings) *KillBillAccountClient {
	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &KillBillAccountClient{settings: s, httpClient: &http.Client{Timeout: timeout}}
}

func (c *KillBillAccountClient) GetAccountByID(ctx context.Context, accountID uuid.UUID, call entities.CallContext) (entities.Account, error) {
	endpoint := c.settings.BaseURL + "/1.0/kb/accounts/" + url.PathEscape(accountID.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.Account{}, fmt.Errorf("%w: %w", ErrAccountAccess, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Killbill-ApiKey", c.settings.APIKey)
	req.Header.Set("X-Killbill-ApiSecret", c.settings.APISecret)
	if call.RequestID != "" {
		req.Header.Set("X-Request-Id", call.RequestID)
	}
	if c.settings.Username != "" {
		req.SetBasicAuth(c.settings.Username, c.settings.Password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[plugin][accounts] request failed account_id=%s err=%v", accountID, err)
		return entities.Account{}, fmt.Errorf("%w: %w", ErrAccountAccess, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return entities.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	case res.StatusCode < 200 || res.StatusCode > 299:
		_, _ = io.Copy(io.Discard, res.Body)
		log.Printf("[plugin][accounts] unexpected status account_id=%s status=%d", accountID, res.StatusCode)
		return entities.Account{}, fmt.Errorf("%w: http status %d", ErrAccountAccess, res.StatusCode)
	}

	var account entities.Account
	if err := json.NewDecoder(res.Body).Decode(&account); err != nil {
		return entities.Account{}, fmt.Errorf("%w: decode account: %w", ErrAccountAccess, err)
	}
	if account.ID == uuid.Nil {
		account.ID = accountID
	}
	return account, nil
}
