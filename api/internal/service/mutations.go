package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"qrisgw/api/internal/config"
	"qrisgw/api/internal/domain"
	"qrisgw/api/internal/logger"
	"qrisgw/pkg/rr"
	"qrisgw/pkg/utils"
)

// MutationsService queries the aggregator's settlement-mutation feed.
// The feed has no reference ids, only (amount, timestamp) pairs, so all
// matching happens on our side.
type MutationsService struct {
	endpoints rr.RoundRobin
	client    *http.Client
	l         logger.Logger
}

func NewMutationsService(config *config.Config, l logger.Logger) *MutationsService {
	urls := config.MutationsUrls()
	for i, u := range urls {
		urls[i] = strings.TrimRight(u, "/")
	}

	return &MutationsService{
		// the aggregator publishes the same feed on mirror hosts
		endpoints: rr.New(urls),
		// the upstream has no SLA, an unbounded wait here stalls the caller
		client: &http.Client{Timeout: config.MutationsTimeout()},
		l:      l,
	}
}

func (s *MutationsService) List(ctx context.Context, memberId, apiId string) (*domain.MutationFeed, error) {
	base, ok := s.endpoints.Next()
	if !ok {
		return nil, fmt.Errorf("no mutation feed hosts configured")
	}

	url := fmt.Sprintf("%s/%s/%s", base, memberId, apiId)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.l.TemplUpstreamErr("mutation feed request failed", url, err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.l.TemplUpstreamErr("mutation feed read failed", url, err)
		return nil, err
	}

	feed, err := utils.Unmarshal[domain.MutationFeed](body)
	if err != nil {
		s.l.TemplUpstreamErr("mutation feed decode failed", url, err)
		return nil, err
	}

	s.l.TemplUpstreamInfo("mutation feed queried", url)

	return feed, nil
}

// Match filters records to those whose amount equals the invoice total and
// whose timestamp lies inside [createdAt, expired], then picks the record
// closest to now. Ties go to the first record encountered.
func Match(records []domain.MutationRecord, invoice int64, createdAt, expired, now time.Time) *domain.MutationRecord {
	var closest *domain.MutationRecord
	var smallest time.Duration

	for i := range records {
		rec := &records[i]

		if !rec.AmountEquals(invoice) {
			continue
		}

		ts, err := rec.Time()
		if err != nil {
			continue
		}
		if ts.Before(createdAt) || ts.After(expired) {
			continue
		}

		diff := now.Sub(ts)
		if diff < 0 {
			diff = -diff
		}

		if closest == nil || diff < smallest {
			smallest = diff
			closest = rec
		}
	}

	return closest
}
