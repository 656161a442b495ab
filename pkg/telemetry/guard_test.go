package telemetry_test

import (
	. "boxlab.xyz/box-telemetry-service/pkg/telemetry"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxlab.xyz/box-telemetry-service/pkg/common"
	"boxlab.xyz/box-telemetry-service/pkg/security"
	_ "boxlab.xyz/box-telemetry-service/pkg/testing"
)

func TestAuthorize(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	// low cost to keep the test fast
	hash, err := security.HashPassword("good-key", 4)
	require.NoError(t, err)

	user, err := core.Directory.AddUser(uuid.NewString(), hash, false)
	require.NoError(t, err)

	assert.NoError(t, core.Guard.Authorize(user.ID, "good-key", false))
	assert.ErrorIs(t, core.Guard.Authorize(user.ID, "bad-key", false), ErrUnauthorized)
	assert.ErrorIs(t, core.Guard.Authorize(user.ID, "", false), ErrUnauthorized)
}

func TestAuthorizeUniformRejection(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	hash, err := security.HashPassword("good-key", 4)
	require.NoError(t, err)

	user, err := core.Directory.AddUser(uuid.NewString(), hash, false)
	require.NoError(t, err)

	badCredential := core.Guard.Authorize(user.ID, "bad-key", false)
	unknownIdentity := core.Guard.Authorize(1<<40, "good-key", false)
	notAdmin := core.Guard.Authorize(user.ID, "good-key", true)

	// All three failure causes must be indistinguishable to the caller.
	require.Error(t, badCredential)
	assert.Equal(t, badCredential, unknownIdentity)
	assert.Equal(t, badCredential, notAdmin)
	assert.ErrorIs(t, badCredential, ErrUnauthorized)
}

func TestAuthorizeAdmin(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockTelemetryWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	hash, err := security.HashPassword("admin-key", 4)
	require.NoError(t, err)

	admin, err := core.Directory.AddUser(uuid.NewString(), hash, true)
	require.NoError(t, err)

	assert.NoError(t, core.Guard.Authorize(admin.ID, "admin-key", true))
	assert.NoError(t, core.Guard.Authorize(admin.ID, "admin-key", false))
	assert.ErrorIs(t, core.Guard.Authorize(admin.ID, "wrong", true), ErrUnauthorized)
}
