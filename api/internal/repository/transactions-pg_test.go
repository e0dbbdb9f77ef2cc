package repository

import (
	"testing"
	"time"

	"qrisgw/api/internal/domain"
	"qrisgw/api/internal/infra/postgres"

	"github.com/brianvoe/gofakeit/v7"
)

// requires a local test database, see postgres.TEST_CONFIG
func TestTransactionLifecycle(t *testing.T) {
	r := InitTransactionsRepo()

	db := postgres.InitTest(postgres.TEST_CONFIG)
	t.Cleanup(func() { postgres.DropTables(db) })

	apiKey := gofakeit.UUID()
	code := gofakeit.UUID()
	now := time.Now()

	err := r.Create(db, &domain.Transactions{
		ApiKey:     apiKey,
		Uniquecode: code,
		Amount:     20000,
		Fee:        140,
		Invoice:    20140,
		Status:     domain.STATUS_PENDING,
		Expired:    now.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}

	trx, err := r.FindByKeyAndCode(db, apiKey, code)
	if err != nil {
		t.Fatal(err)
	}
	if !trx.Status.IsPending() {
		t.Fatalf("got status %s", trx.Status.ToString())
	}

	count, err := r.CountPendingByAmount(db, 20000, now.Add(-time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("got %d collisions", count)
	}

	if err := r.MarkSuccess(db, apiKey, code); err != nil {
		t.Fatal(err)
	}
	trx, err = r.FindByKeyAndCode(db, apiKey, code)
	if err != nil {
		t.Fatal(err)
	}
	if !trx.Status.IsSuccess() {
		t.Fatalf("got status %s", trx.Status.ToString())
	}

	// settled rows never flip back
	if err := r.MarkExpiredFailed(db, now.Add(48*time.Hour)); err != nil {
		t.Fatal(err)
	}
	trx, err = r.FindByKeyAndCode(db, apiKey, code)
	if err != nil {
		t.Fatal(err)
	}
	if !trx.Status.IsSuccess() {
		t.Fatalf("sweep downgraded a settled row to %s", trx.Status.ToString())
	}
}

func TestMarkExpiredFailed(t *testing.T) {
	r := InitTransactionsRepo()

	db := postgres.InitTest(postgres.TEST_CONFIG)
	t.Cleanup(func() { postgres.DropTables(db) })

	apiKey := gofakeit.UUID()
	now := time.Now()

	err := r.Create(db, &domain.Transactions{
		ApiKey:     apiKey,
		Uniquecode: gofakeit.UUID(),
		Amount:     50000,
		Fee:        350,
		Invoice:    50350,
		Status:     domain.STATUS_PENDING,
		Expired:    now.Add(-time.Minute),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := r.MarkExpiredFailed(db, now); err != nil {
		t.Fatal(err)
	}

	pending, err := r.FindPendingByApiKey(db, apiKey)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Fatalf("expired row still pending: %d", len(pending))
	}
}
