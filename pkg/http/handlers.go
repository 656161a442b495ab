package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"boxlab.xyz/box-telemetry-service/pkg/telemetry"
)

const (
	defaultRangeValues  = 100
	defaultRangeMinutes = 43830 // a month
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

func (rs *RestfulServer) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, telemetry.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, telemetry.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, telemetry.ErrUnknownReference):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestfulServer) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"[GET] /healthz":                                          "health check / ping",
		"[GET] /api/sensors":                                      "lists sensors",
		"[GET] /api/users":                                        "lists users",
		"[GET] /api/users/:userId":                                "details about given user",
		"[GET] /api/users/:userId/boxes":                          "lists boxes belonging to given user",
		"[POST] /api/users/:userId/boxes":                         "{description: string} - add box for user with given description",
		"[GET] /api/boxes":                                        "lists boxes",
		"[GET] /api/boxes/:boxId":                                 "details about given box",
		"[GET] /api/boxes/:boxId/sensors":                         "lists available sensors for given box",
		"[GET] /api/boxes/:boxId/sensors/:sensorId":               "?values=x&minutes=y - downsampled measurements: x points from the last y minutes",
		"[GET] /api/boxes/:boxId/sensors/:sensorId/latest":        "most recent datapoint for sensor of given box",
		"[GET] /api/boxes/:boxId/sensors/:sensorId/add/:value":    "adds measurement for sensor of given box",
		"[POST] /api/admin/:adminId/users":                        "{name: string, is_admin: bool} - add user",
		"[POST] /api/admin/:adminId/apikey/:userId":               "{} - generate new api key for given user",
		"[POST] /api/admin/:adminId/sensors":                      "{name: string, unit: string} - add sensor",
		"[POST] /api/admin/:adminId/limiter/:boxId":               "{rate: number, burst: int} - set ingest rate limit for given box",
		"[DELETE] /api/admin/:adminId/sensors":                    "{id: number} - remove sensor",
		"[DELETE] /api/admin/:adminId/users":                      "{id: number} - remove user",
		"[DELETE] /api/admin/:adminId/boxes":                      "{id: number} - remove box",
	})
}

// Sensors

func (rs *RestfulServer) GetSensors(c *gin.Context) {
	sensors, err := rs.Core.Directory.GetSensors()
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensors)
}

func (rs *RestfulServer) GetSensor(c *gin.Context) {
	sensorID, ok := pathID(c, "sensorId")
	if !ok {
		return
	}
	sensor, err := rs.Core.Directory.GetSensor(sensorID)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensor)
}

// Users

func (rs *RestfulServer) GetUsers(c *gin.Context) {
	users, err := rs.Core.Directory.GetUsers()
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (rs *RestfulServer) GetUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	user, err := rs.Core.Directory.GetUser(userID)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (rs *RestfulServer) GetUserBoxes(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	boxes, err := rs.Core.Directory.GetBoxesByOwner(userID)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, boxes)
}

type AddBoxRequest struct {
	Description string `json:"description"`
}

var addBoxRequestSchema = z.Struct(z.Shape{
	"Description": z.String().Min(1).Required(),
})

func (rs *RestfulServer) AddUserBox(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req AddBoxRequest
	if err := addBoxRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Guard.Authorize(userID, c.GetHeader("Authorization"), false); err != nil {
		rs.renderError(c, err)
		return
	}

	box, err := rs.Core.Directory.AddBox(userID, req.Description)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}

// Boxes

func (rs *RestfulServer) GetBoxes(c *gin.Context) {
	boxes, err := rs.Core.Directory.GetBoxes()
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, boxes)
}

func (rs *RestfulServer) GetBox(c *gin.Context) {
	boxID, ok := pathID(c, "boxId")
	if !ok {
		return
	}
	box, err := rs.Core.Directory.GetBox(boxID)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, box)
}

// The sensor catalog is global, so a box's available sensors are just the
// catalog.
func (rs *RestfulServer) GetBoxSensors(c *gin.Context) {
	if _, ok := pathID(c, "boxId"); !ok {
		return
	}
	sensors, err := rs.Core.Directory.GetSensors()
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensors)
}

// Measurements

func (rs *RestfulServer) GetMeasurements(c *gin.Context) {
	boxID, ok := pathID(c, "boxId")
	if !ok {
		return
	}
	sensorID, ok := pathID(c, "sensorId")
	if !ok {
		return
	}
	values, ok := queryInt(c, "values", defaultRangeValues)
	if !ok {
		return
	}
	minutes, ok := queryInt(c, "minutes", defaultRangeMinutes)
	if !ok {
		return
	}

	points, err := rs.Core.Measurement.Range(boxID, sensorID, minutes, values)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"box_id":    boxID,
		"sensor_id": sensorID,
		"data":      points,
	})
}

func (rs *RestfulServer) GetLatestMeasurement(c *gin.Context) {
	boxID, ok := pathID(c, "boxId")
	if !ok {
		return
	}
	sensorID, ok := pathID(c, "sensorId")
	if !ok {
		return
	}

	measurement, err := rs.Core.Measurement.Latest(boxID, sensorID)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"box_id":    boxID,
		"sensor_id": sensorID,
		"data":      measurement,
	})
}

func (rs *RestfulServer) AddMeasurement(c *gin.Context) {
	boxID, ok := pathID(c, "boxId")
	if !ok {
		return
	}
	sensorID, ok := pathID(c, "sensorId")
	if !ok {
		return
	}
	value, err := strconv.ParseFloat(c.Param("value"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid value"})
		return
	}

	if !rs.CheckBoxLimiter(boxID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	// The owner lookup is part of the auth decision: a write against an
	// unknown box gets the same uniform rejection as a bad credential.
	box, err := rs.Core.Directory.GetBox(boxID)
	if err != nil {
		rs.renderError(c, telemetry.ErrUnauthorized)
		return
	}
	if err := rs.Core.Guard.Authorize(box.UserID, c.GetHeader("Authorization"), false); err != nil {
		rs.renderError(c, err)
		return
	}

	result, err := rs.Core.Measurement.Insert(boxID, sensorID, value)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	if result.RowsAffected == 0 {
		measurementsDeduplicated.Inc()
	} else {
		measurementsAccepted.Inc()
	}

	c.JSON(http.StatusOK, result)
}
