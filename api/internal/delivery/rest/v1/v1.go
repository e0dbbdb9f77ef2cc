package v1

import (
	"qrisgw/api/internal/config"
	"qrisgw/api/internal/logger"
	"qrisgw/api/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	services *service.Services
	db       *gorm.DB
	config   *config.Config
	log      logger.Logger
}

func (h *Handler) InitRoutes(g *gin.RouterGroup) {
	{
		h.initMerchantRoutes(g)
		h.initPaymentRoutes(g)
	}
}

func NewHandler(services *service.Services, db *gorm.DB, config *config.Config, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		log:      log,
		services: services,
		db:       db,
	}
}
