package main

import (
	"tatkal/config"
	"tatkal/di"
	"tatkal/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
