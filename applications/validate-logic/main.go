// Lambda function that checks whether the "input" field of an event is a
// string longer than three characters.

package main

import (
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("unable to load config, %v", err)
	}

	l, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("unable to create logger, %v", err)
	}
	logger = l
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.Env == envLocal {
		addr := ":" + cfg.Port
		logger.Info("starting local server", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, newRouter()); err != nil {
			logger.Fatal("local server stopped", zap.Error(err))
		}
		return
	}

	switch cfg.HandlerMode {
	case modeHTTP:
		lambda.Start(httpHandler)
	default:
		lambda.Start(handler)
	}
}
