package telemetry

import (
	"go.uber.org/zap"
	"boxlab.xyz/box-telemetry-service/pkg/common"
	"boxlab.xyz/box-telemetry-service/pkg/models"
	"boxlab.xyz/box-telemetry-service/pkg/security"
)

// BootstrapAdminName is the seed admin's login identity. Its credential is
// the secret handed to Seed, hashed; the plaintext never touches storage.
const BootstrapAdminName = "admin"

var seedSensors = []models.Sensor{
	{Name: "Temperature", Unit: "℃"},
	{Name: "Humidity", Unit: "%"},
}

// Seed idempotently installs the fixed sensor catalog and the bootstrap
// admin user. Re-running it is a no-op: existing sensors are kept and an
// existing admin keeps its current credential hash.
func (t *Telemetry) Seed(adminSecret string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySeed),
	)

	for _, s := range seedSensors {
		if _, err := t.addSensor(s.Name, s.Unit); err != nil {
			return err
		}
	}

	hash, err := security.HashPassword(adminSecret, security.DefaultHashCost)
	if err != nil {
		return err
	}

	admin, err := t.addUser(BootstrapAdminName, hash, true)
	if err != nil {
		return err
	}

	logger.Info("Seed completed", zap.Int64("admin_user_id", admin.ID))
	return nil
}
