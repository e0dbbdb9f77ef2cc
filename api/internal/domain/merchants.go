package domain

type Merchants struct {
	Model
	ID       uint   `gorm:"primaryKey"`
	ApiKey   string `gorm:"unique;size:64;not null"`
	Qris     string `gorm:"type:text;not null"` // static EMV-QR template, checksum included
	MemberID string `gorm:"size:32;not null"`   // aggregator credential
	ApiID    string `gorm:"size:32;not null"`   // aggregator credential
}
