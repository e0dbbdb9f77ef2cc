package utils

import (
	"testing"
)

func TestSafeCast(t *testing.T) {
	cast, err := SafeCast[int](12334)
	if err != nil {
		t.Fatal(err)
	}
	if cast != 12334 {
		t.Fatalf("got %d", cast)
	}

	_, err = SafeCast[string](nil)
	if err != ErrNilParam {
		t.Fatalf("want ErrNilParam, got %v", err)
	}

	_, err = SafeCast[string](10)
	if err == nil {
		t.Fatal("want type mismatch error")
	}
}

func TestUnmarshal(t *testing.T) {
	type probe struct {
		Amount string `json:"amount"`
	}

	p, err := Unmarshal[probe]([]byte(`{"amount":"50350"}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Amount != "50350" {
		t.Fatalf("got %s", p.Amount)
	}

	_, err = Unmarshal[probe]([]byte(`{`))
	if err == nil {
		t.Fatal("want error on invalid json")
	}
}
