package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"boxlab.xyz/box-telemetry-service/pkg/security"
)

// Admin handlers. Each resolves the acting identity from the path, checks
// the Authorization header through the guard with the admin flag required,
// and only then touches the directory.

type AddUserRequest struct {
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

var addUserRequestSchema = z.Struct(z.Shape{
	"Name":    z.String().Min(1).Required(),
	"IsAdmin": z.Bool(),
})

func (rs *RestfulServer) AdminAddUser(c *gin.Context) {
	adminID, ok := pathID(c, "adminId")
	if !ok {
		return
	}

	var req AddUserRequest
	if err := addUserRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Guard.Authorize(adminID, c.GetHeader("Authorization"), true); err != nil {
		rs.renderError(c, err)
		return
	}

	apiKey := security.NewAPIKey()
	hash, err := security.HashPassword(apiKey, security.DefaultHashCost)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	user, err := rs.Core.Directory.AddUser(req.Name, hash, req.IsAdmin)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	// The plaintext key is shown here and never again.
	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"name":     user.Name,
		"is_admin": user.IsAdmin,
		"api_key":  apiKey,
	})
}

func (rs *RestfulServer) AdminRotateAPIKey(c *gin.Context) {
	adminID, ok := pathID(c, "adminId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := rs.Core.Guard.Authorize(adminID, c.GetHeader("Authorization"), true); err != nil {
		rs.renderError(c, err)
		return
	}

	apiKey := security.NewAPIKey()
	hash, err := security.HashPassword(apiKey, security.DefaultHashCost)
	if err != nil {
		rs.renderError(c, err)
		return
	}

	if err := rs.Core.Directory.UpdateUserCredential(userID, hash); err != nil {
		rs.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"api_key": apiKey,
	})
}

type AddSensorRequest struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

var addSensorRequestSchema = z.Struct(z.Shape{
	"Name": z.String().Min(1).Required(),
	"Unit": z.String().Min(1).Required(),
})

func (rs *RestfulServer) AdminAddSensor(c *gin.Context) {
	adminID, ok := pathID(c, "adminId")
	if !ok {
		return
	}

	var req AddSensorRequest
	if err := addSensorRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Guard.Authorize(adminID, c.GetHeader("Authorization"), true); err != nil {
		rs.renderError(c, err)
		return
	}

	sensor, err := rs.Core.Directory.AddSensor(req.Name, req.Unit)
	if err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sensor)
}

type RemoveRequest struct {
	ID int `json:"id"`
}

var removeRequestSchema = z.Struct(z.Shape{
	"ID": z.Int().Required(),
})

func (rs *RestfulServer) adminRemove(c *gin.Context, remove func(id int64) error) {
	adminID, ok := pathID(c, "adminId")
	if !ok {
		return
	}

	var req RemoveRequest
	if err := removeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Guard.Authorize(adminID, c.GetHeader("Authorization"), true); err != nil {
		rs.renderError(c, err)
		return
	}

	if err := remove(int64(req.ID)); err != nil {
		rs.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID})
}

func (rs *RestfulServer) AdminRemoveSensor(c *gin.Context) {
	rs.adminRemove(c, rs.Core.Directory.RemoveSensor)
}

func (rs *RestfulServer) AdminRemoveUser(c *gin.Context) {
	rs.adminRemove(c, rs.Core.Directory.RemoveUser)
}

func (rs *RestfulServer) AdminRemoveBox(c *gin.Context) {
	rs.adminRemove(c, rs.Core.Directory.RemoveBox)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) AdminSetLimiter(c *gin.Context) {
	adminID, ok := pathID(c, "adminId")
	if !ok {
		return
	}
	boxID, ok := pathID(c, "boxId")
	if !ok {
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Core.Guard.Authorize(adminID, c.GetHeader("Authorization"), true); err != nil {
		rs.renderError(c, err)
		return
	}

	rs.SetLimiter(boxID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
