package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the API's backing services and mounts every route
// group on the given router.
func BuildApp(router *gin.Engine) error {
	dsn := os.Getenv("DATABASE_URL")
	db, err := ConnectDBWithRetry(dsn, 10)
	if err != nil {
		return err
	}

	rdb, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 10)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}

	registerModules(router, db, rdb, logger)

	return nil
}
