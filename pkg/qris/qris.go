package qris

import (
	"fmt"
	"strconv"
	"strings"
)

// EMV-QR markers used during amount injection
const (
	CountryTag    = "5802ID" // tag 58 (country code), split point for tag 54 insertion
	staticMethod  = "010211" // point of initiation method: static
	dynamicMethod = "010212" // point of initiation method: dynamic
)

var (
	ErrTemplateTooShort = fmt.Errorf("qris: template is too short")
	ErrNoCountryTag     = fmt.Errorf("qris: template has no " + CountryTag + " tag")
)

// Encode converts a static QRIS template into a dynamic payload carrying the
// given amount. The trailing 4-char checksum of the template is stripped and
// recomputed over the rebuilt payload.
func Encode(template string, amount int64) (string, error) {
	if len(template) <= 4 {
		return "", ErrTemplateTooShort
	}

	payload := template[:len(template)-4]
	payload = strings.Replace(payload, staticMethod, dynamicMethod, 1)

	head, tail, found := strings.Cut(payload, CountryTag)
	if !found {
		return "", ErrNoCountryTag
	}

	amountStr := strconv.FormatInt(amount, 10)
	tlv := "54" + fmt.Sprintf("%02d", len(amountStr)) + amountStr + CountryTag

	fixed := strings.TrimSpace(head) + tlv + strings.TrimSpace(tail)

	return fixed + Checksum(fixed), nil
}

// Checksum is CRC16/CCITT-FALSE (poly 0x1021, init 0xFFFF, MSB-first, no
// final xor) as uppercase hex, left-padded to 4 digits. The QRIS ecosystem
// rejects payloads with any other variant.
func Checksum(payload string) string {
	crc := 0xFFFF

	for i := 0; i < len(payload); i++ {
		crc ^= int(payload[i]) << 8
		for b := 0; b < 8; b++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return fmt.Sprintf("%04X", crc&0xFFFF)
}
