package qris

import (
	"strings"
	"testing"
)

const testTemplate = "00020101021126570011ID.DANA.WWW011893600915302259148402095930221480303UMI51440014ID.CO.QRIS.WWW0215ID10200211California0303UMI5204594553033605802ID5913WARUNG BU IIS6007JAKARTA61051234063049BCD"

func TestChecksumKnownValue(t *testing.T) {
	// CRC16/CCITT-FALSE check value
	got := Checksum("123456789")
	if got != "29B1" {
		t.Fatalf("checksum: got %s, want 29B1", got)
	}
}

func TestChecksumDeterministic(t *testing.T) {
	first := Checksum(testTemplate)
	for range 100 {
		if c := Checksum(testTemplate); c != first {
			t.Fatalf("checksum not stable: %s != %s", c, first)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	encoded, err := Encode(testTemplate, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(encoded, "54041000"+CountryTag) {
		t.Fatalf("amount tlv not found before country tag: %s", encoded)
	}

	if !strings.Contains(encoded, "010212") {
		t.Fatalf("initiation method not switched to dynamic: %s", encoded)
	}
	if strings.Contains(encoded, "010211") {
		t.Fatalf("static initiation method still present: %s", encoded)
	}

	// trailing checksum must be valid for the payload before it
	payload, crc := encoded[:len(encoded)-4], encoded[len(encoded)-4:]
	if Checksum(payload) != crc {
		t.Fatalf("trailing checksum invalid: got %s, want %s", crc, Checksum(payload))
	}
}

func TestEncodeAmounts(t *testing.T) {
	tests := []struct {
		amount int64
		tlv    string
	}{
		{1000, "54041000"},
		{50350, "540550350"},
		{20140, "540520140"},
		{20141, "540520141"},
		{100, "5403100"},
		{1234567, "54071234567"},
	}

	for _, x := range tests {
		encoded, err := Encode(testTemplate, x.amount)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(encoded, x.tlv+CountryTag) {
			t.Fatalf("amount %d: tlv %s not found in %s", x.amount, x.tlv, encoded)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		template string
		wantErr  error
	}{
		{"", ErrTemplateTooShort},
		{"6304", ErrTemplateTooShort},
		{"000201010211520459455303360ABCD", ErrNoCountryTag},
	}

	for _, x := range tests {
		_, err := Encode(x.template, 1000)
		if err != x.wantErr {
			t.Fatalf("template %q: got %v, want %v", x.template, err, x.wantErr)
		}
	}
}
