package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"boxlab.xyz/box-telemetry-service/pkg/common"
	"boxlab.xyz/box-telemetry-service/pkg/db"
	boxHttp "boxlab.xyz/box-telemetry-service/pkg/http"
	"boxlab.xyz/box-telemetry-service/pkg/telemetry"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	boxDbType := os.Getenv(common.EnvKeyBoxDBType)
	switch boxDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown BOX_DB_TYPE: " + boxDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyBoxHttpHostPort))

	adminSecret := os.Getenv(common.EnvKeyBoxAdminSecret)
	if adminSecret == "" {
		log.Fatal("Missing BOX_ADMIN_SECRET, set it in .env; it seeds the bootstrap admin credential")
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyBoxDefaultRate), 64); err != nil {
		log.Fatal("Invalid BOX_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyBoxDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid BOX_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	core := telemetry.Telemetry{
		Db: *dbInstance,
	}
	core.WithServices(telemetry.ServiceOpts{
		Measurement: core.GetIMeasurement(),
		Directory:   core.GetIDirectory(),
		Guard:       core.GetIGuard(),
	})

	if err := core.Seed(adminSecret); err != nil {
		log.Fatalf("Failed to seed sensor catalog and bootstrap admin: %v", err)
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":8080"
	}

	rs := &boxHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		RateLimiterStore: telemetry.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
