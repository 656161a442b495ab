package telemetry_test

import (
	. "boxlab.xyz/box-telemetry-service/pkg/telemetry"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxlab.xyz/box-telemetry-service/pkg/common"
	"boxlab.xyz/box-telemetry-service/pkg/models"
	_ "boxlab.xyz/box-telemetry-service/pkg/testing"
)

func TestAddBoxUnknownOwner(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	description := uuid.NewString()

	_, err := core.Directory.AddBox(1<<40, description)
	require.ErrorIs(t, err, ErrUnknownReference)

	var count int64
	require.NoError(t, core.Db.Conn.Model(&models.Box{}).Where("description = ?", description).Count(&count).Error)
	assert.Zero(t, count, "a rejected add must not create a row")
}

func TestAddBoxIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user, err := core.Directory.AddUser(uuid.NewString(), "hash", false)
	require.NoError(t, err)

	description := uuid.NewString()

	first, err := core.Directory.AddBox(user.ID, description)
	require.NoError(t, err)

	second, err := core.Directory.AddBox(user.ID, description)
	require.NoError(t, err, "a uniqueness collision is a no-op, not an error")
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, core.Db.Conn.Model(&models.Box{}).Where("description = ?", description).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetBoxesByOwner(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	owner, err := core.Directory.AddUser(uuid.NewString(), "hash", false)
	require.NoError(t, err)
	other, err := core.Directory.AddUser(uuid.NewString(), "hash", false)
	require.NoError(t, err)

	_, err = core.Directory.AddBox(owner.ID, uuid.NewString())
	require.NoError(t, err)
	_, err = core.Directory.AddBox(owner.ID, uuid.NewString())
	require.NoError(t, err)
	_, err = core.Directory.AddBox(other.ID, uuid.NewString())
	require.NoError(t, err)

	boxes, err := core.Directory.GetBoxesByOwner(owner.ID)
	require.NoError(t, err)
	assert.Len(t, boxes, 2)
	for _, box := range boxes {
		assert.Equal(t, owner.ID, box.UserID)
	}
}

func TestAddSensorIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	name := uuid.NewString()

	first, err := core.Directory.AddSensor(name, "hPa")
	require.NoError(t, err)

	second, err := core.Directory.AddSensor(name, "bar")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "hPa", second.Unit, "existing sensor is kept untouched")
}

func TestUserShapes(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	name := uuid.NewString()

	user, err := core.Directory.AddUser(name, "the-credential-hash", true)
	require.NoError(t, err)

	full, err := core.Directory.GetFullUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "the-credential-hash", full.APIKey)
	assert.True(t, full.IsAdmin)

	public, err := core.Directory.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, name, public.Name)
	// models.PublicUser has no credential field at all; nothing to leak.

	users, err := core.Directory.GetUsers()
	require.NoError(t, err)
	found := false
	for _, u := range users {
		if u.ID == user.ID {
			found = true
		}
	}
	assert.True(t, found)

	_, err = core.Directory.GetUser(1 << 40)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserCredential(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	user, err := core.Directory.AddUser(uuid.NewString(), "old-hash", false)
	require.NoError(t, err)

	require.NoError(t, core.Directory.UpdateUserCredential(user.ID, "new-hash"))

	full, err := core.Directory.GetFullUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", full.APIKey)

	err = core.Directory.UpdateUserCredential(1<<40, "hash")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoves(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	sensor, err := core.Directory.AddSensor(uuid.NewString(), "%")
	require.NoError(t, err)
	require.NoError(t, core.Directory.RemoveSensor(sensor.ID))
	_, err = core.Directory.GetSensor(sensor.ID)
	require.ErrorIs(t, err, ErrNotFound)

	user, err := core.Directory.AddUser(uuid.NewString(), "hash", false)
	require.NoError(t, err)
	box, err := core.Directory.AddBox(user.ID, uuid.NewString())
	require.NoError(t, err)

	require.NoError(t, core.Directory.RemoveBox(box.ID))
	_, err = core.Directory.GetBox(box.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, core.Directory.RemoveUser(user.ID))
	_, err = core.Directory.GetUser(user.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
