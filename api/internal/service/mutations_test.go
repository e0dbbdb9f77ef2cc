package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"qrisgw/api/internal/config"
	"qrisgw/api/internal/domain"
	"qrisgw/api/internal/logger"
)

func feedTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func TestMatchPicksClosest(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	createdAt := now.Add(-1 * time.Hour)
	expired := now.Add(23 * time.Hour)

	records := []domain.MutationRecord{
		{Date: feedTime(now.Add(-10 * time.Minute)), Amount: "50350", BrandName: "DANA", BuyerReff: "far"},
		{Date: feedTime(now.Add(-2 * time.Minute)), Amount: "50350", BrandName: "OVO", BuyerReff: "near"},
	}

	match := Match(records, 50350, createdAt, expired, now)
	if match == nil {
		t.Fatal("expected a match")
	}
	if match.BuyerReff != "near" {
		t.Fatalf("expected closest record, got %s", match.BuyerReff)
	}
}

func TestMatchFilters(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	createdAt := now.Add(-1 * time.Hour)
	expired := now.Add(23 * time.Hour)

	tests := []struct {
		name    string
		records []domain.MutationRecord
		want    bool
	}{
		{"amount mismatch", []domain.MutationRecord{
			{Date: feedTime(now), Amount: "50351"},
		}, false},
		{"before window", []domain.MutationRecord{
			{Date: feedTime(createdAt.Add(-time.Minute)), Amount: "50350"},
		}, false},
		{"after window", []domain.MutationRecord{
			{Date: feedTime(expired.Add(time.Minute)), Amount: "50350"},
		}, false},
		{"garbage date", []domain.MutationRecord{
			{Date: "yesterday", Amount: "50350"},
		}, false},
		{"garbage amount", []domain.MutationRecord{
			{Date: feedTime(now), Amount: "IDR 50350"},
		}, false},
		{"window edges inclusive", []domain.MutationRecord{
			{Date: feedTime(createdAt), Amount: "50350"},
		}, true},
		{"decimal zeros", []domain.MutationRecord{
			{Date: feedTime(now), Amount: "50350.00"},
		}, true},
	}

	for _, x := range tests {
		match := Match(x.records, 50350, createdAt, expired, now)
		if (match != nil) != x.want {
			t.Fatalf("%s: match = %v, want %v", x.name, match, x.want)
		}
	}
}

func TestMatchTieBreakFirst(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	records := []domain.MutationRecord{
		{Date: feedTime(now.Add(-5 * time.Minute)), Amount: "20140", BuyerReff: "first"},
		{Date: feedTime(now.Add(5 * time.Minute)), Amount: "20140", BuyerReff: "second"},
	}

	match := Match(records, 20140, now.Add(-time.Hour), now.Add(time.Hour), now)
	if match == nil || match.BuyerReff != "first" {
		t.Fatalf("tie must go to the first record, got %v", match)
	}
}

func testMutationsService(t *testing.T, handler http.HandlerFunc) (*MutationsService, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Mutations.BaseUrl = srv.URL
	cfg.Mutations.Timeout_seconds = 2

	return NewMutationsService(cfg, logger.Logger{}), srv
}

func TestListFeed(t *testing.T) {
	var gotPath string

	s, _ := testMutationsService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"status":"success","data":[{"date":"2025-08-30 11:22:33","amount":"50350","brand_name":"DANA","buyer_reff":" budi ","balance":"1250350"}]}`))
	})

	feed, err := s.List(context.Background(), "OK12345", "OK54321")
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/OK12345/OK54321" {
		t.Fatalf("credentials not in path: %s", gotPath)
	}
	if feed.Status != domain.FeedStatusSuccess {
		t.Fatalf("got status %s", feed.Status)
	}
	if len(feed.Data) != 1 {
		t.Fatalf("got %d records", len(feed.Data))
	}
	if feed.Data[0].BuyerName() != "budi" {
		t.Fatalf("buyer name not trimmed: %q", feed.Data[0].BuyerName())
	}
}

func TestListFeedFailedStatus(t *testing.T) {
	s, _ := testMutationsService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"failed"}`))
	})

	feed, err := s.List(context.Background(), "x", "y")
	if err != nil {
		t.Fatal(err)
	}
	if feed.Status != domain.FeedStatusFailed {
		t.Fatalf("got status %s", feed.Status)
	}
}

func TestListFeedTransportError(t *testing.T) {
	s, srv := testMutationsService(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := s.List(context.Background(), "x", "y")
	if err == nil {
		t.Fatal("expected transport error")
	}
}

func TestListFeedRotatesMirrors(t *testing.T) {
	var hitsA, hitsB int

	srvA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitsA++
		w.Write([]byte(`{"status":"success","data":[]}`))
	}))
	t.Cleanup(srvA.Close)

	srvB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitsB++
		w.Write([]byte(`{"status":"success","data":[]}`))
	}))
	t.Cleanup(srvB.Close)

	cfg := &config.Config{}
	cfg.Mutations.BaseUrl = srvA.URL
	cfg.Mutations.MirrorUrls = []string{srvB.URL}
	cfg.Mutations.Timeout_seconds = 2

	s := NewMutationsService(cfg, logger.Logger{})

	for i := 0; i < 2; i++ {
		if _, err := s.List(context.Background(), "x", "y"); err != nil {
			t.Fatal(err)
		}
	}

	if hitsA != 1 || hitsB != 1 {
		t.Fatalf("hosts not rotated: a=%d b=%d", hitsA, hitsB)
	}
}

func TestListFeedGarbageBody(t *testing.T) {
	s, _ := testMutationsService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := s.List(context.Background(), "x", "y")
	if err == nil {
		t.Fatal("expected decode error")
	}
}
