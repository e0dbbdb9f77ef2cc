package domain

import "time"

// wire time format, fixed by the original API
const TimeLayout = "2006-01-02 15:04:05"

func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// create-payment success payload
type CreatePaymentData struct {
	Amount     int64  `json:"amount"`
	Fee        int64  `json:"fee"`
	Uniquecode string `json:"uniquecode"`
	Invoice    int64  `json:"invoice"`
	Qris       string `json:"qris"` // retrievable image url
	Expired    string `json:"expired"`
}

// check-payment result, one of the CheckStatus* variants
type CheckResult struct {
	Status      string            `json:"status"`
	Code        int               `json:"code"`
	RequestTime string            `json:"request_time,omitempty"`
	Message     string            `json:"message,omitempty"`
	Data        *CheckPaymentData `json:"data,omitempty"`
}

// settlement details returned on a successful match, values passed through
// from the feed record
type CheckPaymentData struct {
	Message       string `json:"message"`
	Date          string `json:"date"`
	Amount        string `json:"amount"`
	Brand         string `json:"brand"`
	Name          string `json:"name"`
	Balance       string `json:"balance"`
	StatusUpdated bool   `json:"status_updated,omitempty"`
}

// check-payment-pending list entry
type PendingTransaction struct {
	Amount     int64  `json:"amount"`
	Fee        int64  `json:"fee"`
	Invoice    int64  `json:"invoice"`
	Uniquecode string `json:"uniquecode"`
	CreatedAt  string `json:"created_at"`
	Expired    string `json:"expired"`
}
