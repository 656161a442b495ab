package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"boxlab.xyz/box-telemetry-service/pkg/telemetry"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *telemetry.Telemetry
	RateLimiterStore *telemetry.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(boxID int64) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(boxID)
	}
}

func (rs *RestfulServer) CheckBoxLimiter(boxID int64) bool {
	limiter := rs.GetLimiter(boxID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(boxID int64, boxRate float64, boxBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(boxID, rate.Limit(boxRate), boxBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := rs.Server.Group("/api")
	{
		api.GET("/", rs.Index)

		api.GET("/sensors", rs.GetSensors)
		api.GET("/sensors/:sensorId", rs.GetSensor)

		api.GET("/users", rs.GetUsers)
		api.GET("/users/:userId", rs.GetUser)
		api.GET("/users/:userId/boxes", rs.GetUserBoxes)
		api.POST("/users/:userId/boxes", rs.AddUserBox)

		api.GET("/boxes", rs.GetBoxes)
		api.GET("/boxes/:boxId", rs.GetBox)
		api.GET("/boxes/:boxId/sensors", rs.GetBoxSensors)
		api.GET("/boxes/:boxId/sensors/:sensorId", rs.GetMeasurements)
		api.GET("/boxes/:boxId/sensors/:sensorId/latest", rs.GetLatestMeasurement)
		api.GET("/boxes/:boxId/sensors/:sensorId/add/:value", rs.AddMeasurement)

		admin := api.Group("/admin/:adminId")
		{
			admin.POST("/users", rs.AdminAddUser)
			admin.POST("/apikey/:userId", rs.AdminRotateAPIKey)
			admin.POST("/sensors", rs.AdminAddSensor)
			admin.DELETE("/sensors", rs.AdminRemoveSensor)
			admin.DELETE("/users", rs.AdminRemoveUser)
			admin.DELETE("/boxes", rs.AdminRemoveBox)
			admin.POST("/limiter/:boxId", rs.AdminSetLimiter)
		}
	}
}
