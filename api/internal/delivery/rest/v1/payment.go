package v1

import (
	"errors"
	"net/http"
	"strconv"

	"qrisgw/api/internal/domain"
	"qrisgw/api/internal/logger"
	"qrisgw/pkg/qris"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createPayment(c *gin.Context) {
	var data struct {
		ApiKey     string `form:"apikey" validate:"required,max=64"`
		Amount     string `form:"amount" validate:"required,numeric"`
		Uniquecode string `form:"uniquecode" validate:"omitempty,max=64"`
	}

	errid := logger.GenErrorId()

	if ok := filterQuery(c, &data); !ok {
		return
	}

	if exceeded := createRateLimit(data.ApiKey, DEFAULT_LIMIT); exceeded {
		responseErr(c, http.StatusTooManyRequests, domain.ErrMsgRateLimitExceeded)
		return
	}

	amount, err := strconv.ParseInt(data.Amount, 10, 64)
	if err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgMinAmount)
		return
	}

	payment, err := h.services.Payments.CreatePayment(c.Request.Context(), data.ApiKey, amount, data.Uniquecode)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, domain.ErrMerchantNotFound):
			msg = domain.ErrMsgInvalidApiKey
		case errors.Is(err, domain.ErrAmountTooSmall):
			msg = domain.ErrMsgMinAmount
		case errors.Is(err, domain.ErrAmountTooBig):
			msg = domain.ErrMsgAmountRange
		case errors.Is(err, domain.ErrUniquecodeInFlight):
			msg = domain.ErrMsgUniquecodeInFlight
		case errors.Is(err, qris.ErrTemplateTooShort), errors.Is(err, qris.ErrNoCountryTag):
			msg = domain.ErrMsgQrisEncodeFailed
			h.log.TemplPaymentErr("stored qris template is not encodable: "+err.Error(), errid, data.Uniquecode, amount, c.Request.RequestURI, data.ApiKey, c.ClientIP())
		case errors.Is(err, domain.ErrQrisPublishFailed):
			msg = domain.ErrMsgQrisPublishFailed
			h.log.TemplPaymentErr("qr image publish failed: "+err.Error(), errid, data.Uniquecode, amount, c.Request.RequestURI, data.ApiKey, c.ClientIP())
		case errors.Is(err, domain.ErrSaveTransaction):
			msg = domain.ErrMsgSaveTransaction
			h.log.TemplPaymentErr("transaction save failed: "+err.Error(), errid, data.Uniquecode, amount, c.Request.RequestURI, data.ApiKey, c.ClientIP())
		default:
			msg = domain.ErrMsgInternalServerError
			h.log.TemplPaymentErr("create payment error: "+err.Error(), errid, data.Uniquecode, amount, c.Request.RequestURI, data.ApiKey, c.ClientIP())
		}
		responseErr(c, domain.GetStatusByErr(err), msg)
		return
	}

	h.log.TemplPaymentInfo("payment created", errid, payment.Uniquecode, amount, c.Request.RequestURI, data.ApiKey, c.ClientIP())

	c.AbortWithStatusJSON(http.StatusOK, responsePaymentCreated{
		Status: "success",
		Code:   http.StatusOK,
		Data:   payment,
	})
}

func (h *Handler) checkPayment(c *gin.Context) {
	var data struct {
		ApiKey     string `form:"apikey" validate:"required,max=64"`
		Uniquecode string `form:"uniquecode" validate:"required,max=64"`
	}

	errid := logger.GenErrorId()

	if ok := filterQuery(c, &data); !ok {
		return
	}

	if exceeded := createRateLimit(data.ApiKey, DEFAULT_LIMIT); exceeded {
		responseErr(c, http.StatusTooManyRequests, domain.ErrMsgRateLimitExceeded)
		return
	}

	result, err := h.services.Payments.CheckPayment(c.Request.Context(), data.ApiKey, data.Uniquecode)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			responseErr(c, http.StatusBadRequest, domain.ErrMsgInvalidApiKey)
			return
		}
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError)
		h.log.TemplPaymentErr("check payment error: "+err.Error(), errid, data.Uniquecode, 0, c.Request.RequestURI, data.ApiKey, c.ClientIP())
		return
	}

	// the result carries its own http code, the envelope is the body as-is
	c.AbortWithStatusJSON(result.Code, result)
}

func (h *Handler) checkPaymentPending(c *gin.Context) {
	var data struct {
		ApiKey string `form:"apikey" validate:"required,max=64"`
	}

	errid := logger.GenErrorId()

	if ok := filterQuery(c, &data); !ok {
		return
	}

	if exceeded := createRateLimit(data.ApiKey, DEFAULT_LIMIT); exceeded {
		responseErr(c, http.StatusTooManyRequests, domain.ErrMsgRateLimitExceeded)
		return
	}

	if _, err := h.services.Merchants.FindByApiKey(h.db, data.ApiKey); err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgInvalidApiKey)
		return
	}

	if err := h.services.Payments.SweepExpired(h.db); err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError)
		h.log.TemplPaymentErr("sweep expired error: "+err.Error(), errid, "", 0, c.Request.RequestURI, data.ApiKey, c.ClientIP())
		return
	}

	pending, err := h.services.Payments.PendingByApiKey(h.db, data.ApiKey)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError)
		h.log.TemplPaymentErr("pending list error: "+err.Error(), errid, "", 0, c.Request.RequestURI, data.ApiKey, c.ClientIP())
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responsePendingList{
		Status: "success",
		Code:   http.StatusOK,
		Data:   pending,
	})
}

func (h *Handler) initPaymentRoutes(g *gin.RouterGroup) {
	g.GET("/create-payment", h.createPayment)
	g.GET("/check-payment", h.checkPayment)
	g.GET("/check-payment-pending", h.checkPaymentPending)
}
