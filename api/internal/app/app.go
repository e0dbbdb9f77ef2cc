package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"qrisgw/api/internal/config"
	"qrisgw/api/internal/delivery"
	"qrisgw/api/internal/infra/storage"
	"qrisgw/api/internal/logger"
	"qrisgw/api/internal/service"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Db     *gorm.DB
	Store  *storage.Storage
	Log    logger.Logger
}

func (app *App) Start() {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(cors.Default())

	services := service.NewServices(app.Db, app.Log, app.Config, app.Store)

	{
		h := delivery.InitHandler(services, app.Db, app.Config, app.Log)

		h.InitAPI(r)
	}

	eChan := make(chan error)
	interrupt := make(chan os.Signal, 1)

	fmt.Println("qris gateway is starting")

	go func() {
		err := r.Run(app.Config.Api.Ipv4)
		if err != nil {
			eChan <- fmt.Errorf("listen and serve: %w", err)
		}
	}()

	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-eChan:
		app.Log.TemplHTTPError("app fatal error", app.Config.Api.Ipv4, err)
		return
	case <-interrupt:
		return
	}
}
