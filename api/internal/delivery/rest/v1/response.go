package v1

import (
	"qrisgw/api/internal/domain"

	"github.com/gin-gonic/gin"
)

// every error leaves the process as this envelope, internal detail stays in
// the logs under the error id
type responseError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type responseMerchantAdded struct {
	Status  string `json:"status"`
	ApiKey  string `json:"apikey"`
	Message string `json:"message"`
}

type responseMerchantDeleted struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// /create-payment
type responsePaymentCreated struct {
	Status string                    `json:"status"`
	Code   int                       `json:"code"`
	Data   *domain.CreatePaymentData `json:"data"`
}

// /check-payment-pending
type responsePendingList struct {
	Status string                      `json:"status"`
	Code   int                         `json:"code"`
	Data   []domain.PendingTransaction `json:"data"`
}

func responseErr(c *gin.Context, statusCode int, msg string) {
	c.AbortWithStatusJSON(statusCode, responseError{"error", msg})
}
