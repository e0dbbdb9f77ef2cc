package v1

import (
	"fmt"
	"net/http"

	"qrisgw/api/internal/domain"
	"qrisgw/api/internal/logger"
	"qrisgw/pkg/qris"

	"github.com/gin-gonic/gin"
)

func (h *Handler) addMerchant(c *gin.Context) {
	var data struct {
		ApiKey   string `form:"apikey" validate:"required,max=64"`
		Qris     string `form:"qris" validate:"required"`
		MemberID string `form:"memberid" validate:"required,max=32"`
		ApiID    string `form:"apiid" validate:"required,max=32"`
	}

	errid := logger.GenErrorId()

	if ok := filterQuery(c, &data); !ok {
		return
	}

	// reject templates that cannot carry an amount
	if _, err := qris.Encode(data.Qris, 1000); err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgQrisEncodeFailed)
		return
	}

	exists, err := h.services.Merchants.ApiKeyExists(h.db, data.ApiKey)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError)
		h.log.TemplMerchantErr("merchant exists check error: "+err.Error(), errid, data.ApiKey, c.Request.RequestURI, c.ClientIP())
		return
	}
	if exists {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgApiKeyRegistered)
		return
	}

	err = h.services.Merchants.Create(h.db, &domain.Merchants{
		ApiKey:   data.ApiKey,
		Qris:     data.Qris,
		MemberID: data.MemberID,
		ApiID:    data.ApiID,
	})
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgSaveMerchant)
		h.log.TemplMerchantErr("merchant create error: "+err.Error(), errid, data.ApiKey, c.Request.RequestURI, c.ClientIP())
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseMerchantAdded{
		Status:  "success",
		ApiKey:  data.ApiKey,
		Message: "Success add merchant",
	})
}

func (h *Handler) deleteMerchant(c *gin.Context) {
	var data struct {
		ApiKey string `form:"apikey" validate:"required,max=64"`
	}

	errid := logger.GenErrorId()

	if ok := filterQuery(c, &data); !ok {
		return
	}

	exists, err := h.services.Merchants.ApiKeyExists(h.db, data.ApiKey)
	if err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgInternalServerError)
		h.log.TemplMerchantErr("merchant exists check error: "+err.Error(), errid, data.ApiKey, c.Request.RequestURI, c.ClientIP())
		return
	}
	if !exists {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgApiKeyNotFound)
		return
	}

	if err := h.services.Merchants.Delete(h.db, data.ApiKey); err != nil {
		responseErr(c, http.StatusInternalServerError, domain.ErrMsgDeleteMerchant)
		h.log.TemplMerchantErr("merchant delete error: "+err.Error(), errid, data.ApiKey, c.Request.RequestURI, c.ClientIP())
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseMerchantDeleted{
		Status:  "success",
		Message: fmt.Sprintf("Data with apikey '%s' has been successfully deleted", data.ApiKey),
	})
}

func (h *Handler) initMerchantRoutes(g *gin.RouterGroup) {
	g.GET("/add-merchant", h.accessKeyMiddleware(h.config.Secrets.AccessKeyMerchant), h.addMerchant)
	g.GET("/delete-merchant", h.accessKeyMiddleware(h.config.Secrets.AccessKeyDelete), h.deleteMerchant)
}
