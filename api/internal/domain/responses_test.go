package domain

import (
	"fmt"
	"net/http"
	"testing"
)

func TestGetStatusByErr(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{nil, http.StatusOK},
		{ErrMerchantNotFound, http.StatusBadRequest},
		{ErrAmountTooSmall, http.StatusBadRequest},
		{ErrAmountTooBig, http.StatusBadRequest},
		{ErrUniquecodeInFlight, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", ErrMerchantNotFound), http.StatusBadRequest},
		{fmt.Errorf("db gone"), http.StatusInternalServerError},
	}

	for _, x := range tests {
		if got := GetStatusByErr(x.err); got != x.status {
			t.Fatalf("%v: got %d, want %d", x.err, got, x.status)
		}
	}
}

func TestFmtParamsRequired(t *testing.T) {
	if got := FmtParamsRequired("apikey"); got != "Parameter 'apikey' required" {
		t.Fatalf("got %q", got)
	}
}
