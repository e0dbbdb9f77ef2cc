package main

import (
	"os"

	"qrisgw/api/internal/app"
	"qrisgw/api/internal/config"
	"qrisgw/api/internal/infra/postgres"
	"qrisgw/api/internal/infra/storage"
	"qrisgw/api/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(os.Getenv("ENVPATH"))
	if err != nil {
		panic("Can't load .env file: " + err.Error())
	}

	config := config.ReadConfig()
	config.DB = postgres.Init(config)

	unixLogger := logger.Init(config)

	store := storage.Init(config)

	app := &app.App{
		Config: config,
		Db:     config.DB,
		Store:  store,
		Log:    unixLogger,
	}

	app.Start()
}
