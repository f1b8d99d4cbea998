//go:build integration

package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"killbill_bluepay/internal/domain/entities"
	"killbill_bluepay/internal/infrastructure/database"
	"killbill_bluepay/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("docker.io/postgres:16-alpine"),
		postgres.WithDatabase("bluepay"),
		postgres.WithUsername("bluepay"),
		postgres.WithPassword("bluepay"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}
	db, err := database.OpenPostgres(ctx, connStr)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestPostgresRepositories(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	t.Run("credentials", func(t *testing.T) {
		repo := NewCredentialsPostgresRepository(db)
		tenantID := uuid.New()

		if _, err := repo.GetByTenantID(ctx, tenantID); !errors.Is(err, interfaces.ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}

		if _, err := db.ExecContext(ctx, `INSERT INTO bluepay_credentials (tenant_id, account_id, secret_key, test) VALUES ($1, $2, $3, $4)`,
			tenantID.String(), "100012345678", "SECRET", true); err != nil {
			t.Fatalf("seed: %v", err)
		}
		creds, err := repo.GetByTenantID(ctx, tenantID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creds.AccountID != "100012345678" || creds.SecretKey != "SECRET" || !creds.Test || creds.TenantID != tenantID {
			t.Fatalf("unexpected credentials: %+v", creds)
		}
	})

	t.Run("token upsert", func(t *testing.T) {
		repo := NewTokenPostgresRepository(db)
		id := uuid.New()
		now := time.Now().UTC().Truncate(time.Microsecond)

		if _, err := repo.GetByPaymentMethodID(ctx, id); !errors.Is(err, interfaces.ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
		if err := repo.Upsert(ctx, entities.PaymentMethodToken{PaymentMethodID: id, TransactionID: "T1", UpdatedAt: now}); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if err := repo.Upsert(ctx, entities.PaymentMethodToken{PaymentMethodID: id, TransactionID: "T123", UpdatedAt: now.Add(time.Second)}); err != nil {
			t.Fatalf("update: %v", err)
		}
		tok, err := repo.GetByPaymentMethodID(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.TransactionID != "T123" || !tok.UpdatedAt.Equal(now.Add(time.Second)) {
			t.Fatalf("unexpected token: %+v", tok)
		}
	})

	t.Run("concurrent upserts leave one row", func(t *testing.T) {
		repo := NewTokenPostgresRepository(db)
		id := uuid.New()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tok := entities.PaymentMethodToken{PaymentMethodID: id, TransactionID: uuid.NewString(), UpdatedAt: time.Now().UTC()}
				if err := repo.Upsert(ctx, tok); err != nil {
					t.Errorf("upsert %d: %v", i, err)
				}
			}(i)
		}
		wg.Wait()

		var n int
		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bluepay_payment_methods WHERE payment_method_id = $1`, id.String()).Scan(&n); err != nil {
			t.Fatalf("count: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected one row, got %d", n)
		}
	})
}
