package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MutationFeed is the aggregator's response shape. Not owned by this system,
// consumed transiently per reconciliation call.
type MutationFeed struct {
	Status string           `json:"status"`
	Data   []MutationRecord `json:"data"`
}

// feed status values
const (
	FeedStatusSuccess = "success"
	FeedStatusFailed  = "failed"
)

type MutationRecord struct {
	Date      string `json:"date"` // "2006-01-02 15:04:05", aggregator local time
	Amount    string `json:"amount"`
	BrandName string `json:"brand_name"`
	BuyerReff string `json:"buyer_reff"`
	Balance   string `json:"balance"`
}

const feedTimeLayout = "2006-01-02 15:04:05"

func (m *MutationRecord) Time() (time.Time, error) {
	return time.ParseInLocation(feedTimeLayout, m.Date, time.Local)
}

// AmountEquals reports whether the feed amount matches the invoice total.
// The feed serializes amounts as strings, occasionally with decimal zeros.
func (m *MutationRecord) AmountEquals(invoice int64) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(m.Amount))
	if err != nil {
		return false
	}
	return d.Equal(decimal.NewFromInt(invoice))
}

func (m *MutationRecord) BuyerName() string {
	name := strings.TrimSpace(m.BuyerReff)
	if name == "" {
		return "N/A"
	}
	return name
}
