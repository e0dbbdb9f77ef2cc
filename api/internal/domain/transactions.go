package domain

import "time"

type Transactions struct {
	Model
	ID         uint   `gorm:"primaryKey"`
	ApiKey     string `gorm:"size:64;not null;index:idx_trx_key_code"`
	Uniquecode string `gorm:"size:64;not null;index:idx_trx_key_code"`
	Amount     int64  `gorm:"not null"`
	Fee        int64  `gorm:"not null"`
	Invoice    int64  `gorm:"not null"` // amount + fee, the value on the wire and in the feed
	Status     Status `gorm:"type:int8"`
	Expired    time.Time
}

type Status uint8

const (
	STATUS_PENDING Status = iota
	STATUS_SUCCESS
	STATUS_FAILED
)

var Statuses = [...]string{"pending", "success", "failed"}

// methods

func (s Status) ToString() string {
	return Statuses[s]
}

func (s Status) IsPending() bool {
	return s == STATUS_PENDING
}

func (s Status) IsSuccess() bool {
	return s == STATUS_SUCCESS
}

func (s Status) IsFailed() bool {
	return s == STATUS_FAILED
}

func (t *Transactions) IsExpiredAt(now time.Time) bool {
	return t.Expired.Before(now)
}
