package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// check-payment result statuses (wire values, fixed by the original API)
const (
	CheckStatusSuccess  = "success"
	CheckStatusUnpaid   = "unpaid"
	CheckStatusExpired  = "expired"
	CheckStatusNotFound = "not_found"
	CheckStatusFailed   = "failed"
)

const (
	ErrMsgInternalServerError = "internal server error"
	ErrMsgParamsRequired      = "Parameter '%s' required"

	ErrMsgInvalidAccessKey = "APIKey is missing or invalid"
	ErrMsgInvalidApiKey    = "APIKey is missing or invalid"
	ErrMsgApiKeyRegistered = "APIKey Already Registered"
	ErrMsgApiKeyNotFound   = "APIKey not found"

	ErrMsgMinAmount   = "Minimum amount is 1.000"
	ErrMsgAmountRange = "Amount must be between 1.000 and 10.000.000"

	ErrMsgUniquecodeInFlight = "uniquecode already has a pending transaction"

	ErrMsgTransactionNotFound = "Transaction not found"
	ErrMsgTransactionExpired  = "Transaction has expired. Please repeat this transaction again"
	ErrMsgTransactionSuccess  = "Transaction Success"
	ErrMsgUnpaid              = "There is no data maybe the buyer hasnt transferred or hasnt paid"
	ErrMsgInvalidCredential   = "Invalid credential"

	ErrMsgQrisEncodeFailed  = "Failed to generate QRIS code"
	ErrMsgQrisPublishFailed = "Failed to generate QR code image"

	ErrMsgSaveTransaction = "Failed to save transaction to the database"
	ErrMsgSaveMerchant    = "Failed to save data to database"
	ErrMsgDeleteMerchant  = "Failed to delete data from database"

	ErrMsgRateLimitExceeded = "rate limit exceeded"
)

var (
	ErrMerchantNotFound   = errors.New("merchant not found")
	ErrAmountTooSmall     = errors.New("amount below minimum")
	ErrAmountTooBig       = errors.New("amount above maximum")
	ErrUniquecodeInFlight = errors.New("uniquecode already pending")
	ErrQrisPublishFailed  = errors.New("qr image publish failed")
	ErrSaveTransaction    = errors.New("transaction save failed")
)

func GetStatusByErr(err error) (status int) {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, ErrMerchantNotFound),
		errors.Is(err, ErrAmountTooSmall),
		errors.Is(err, ErrAmountTooBig),
		errors.Is(err, ErrUniquecodeInFlight):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	return status
}

func FmtParamsRequired(missing string) string {
	return fmt.Sprintf(ErrMsgParamsRequired, missing)
}
