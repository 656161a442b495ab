package telemetry

import (
	"time"

	"boxlab.xyz/box-telemetry-service/pkg/db"
	"boxlab.xyz/box-telemetry-service/pkg/downsample"
	"boxlab.xyz/box-telemetry-service/pkg/models"
)

type IMeasurement interface {
	Insert(boxID int64, sensorID int64, value float64) (InsertResult, error)
	Latest(boxID int64, sensorID int64) (*models.Measurement, error)
	Range(boxID int64, sensorID int64, windowMinutes int, maxPoints int) ([]downsample.Point, error)
}

type IDirectory interface {
	GetBox(id int64) (*models.Box, error)
	GetBoxes() ([]models.Box, error)
	GetBoxesByOwner(ownerID int64) ([]models.Box, error)
	AddBox(ownerID int64, description string) (*models.Box, error)
	RemoveBox(id int64) error

	GetSensor(id int64) (*models.Sensor, error)
	GetSensors() ([]models.Sensor, error)
	AddSensor(name string, unit string) (*models.Sensor, error)
	RemoveSensor(id int64) error

	GetUser(id int64) (*models.PublicUser, error)
	GetUsers() ([]models.PublicUser, error)
	GetFullUser(id int64) (*models.User, error)
	AddUser(name string, credentialHash string, isAdmin bool) (*models.User, error)
	UpdateUserCredential(userID int64, newHash string) error
	RemoveUser(id int64) error
}

type IGuard interface {
	Authorize(userID int64, credential string, requireAdmin bool) error
}

// Telemetry is the service core. NowMillis is the wall clock used for
// timestamp assignment and window computation; leave it nil to use the
// system clock.
type Telemetry struct {
	Db        db.DB
	NowMillis func() int64

	Measurement IMeasurement
	Directory   IDirectory
	Guard       IGuard
}

type ServiceOpts struct {
	Measurement IMeasurement
	Directory   IDirectory
	Guard       IGuard
}

func (t *Telemetry) WithServices(opts ServiceOpts) *Telemetry {
	if opts.Measurement != nil {
		t.Measurement = opts.Measurement
	}
	if opts.Directory != nil {
		t.Directory = opts.Directory
	}
	if opts.Guard != nil {
		t.Guard = opts.Guard
	}
	return t
}

func (t *Telemetry) nowMillis() int64 {
	if t.NowMillis != nil {
		return t.NowMillis()
	}
	return time.Now().UnixMilli()
}
