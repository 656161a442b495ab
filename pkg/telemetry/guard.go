package telemetry

import (
	"go.uber.org/zap"
	"boxlab.xyz/box-telemetry-service/pkg/common"
	"boxlab.xyz/box-telemetry-service/pkg/security"
)

// authorize decides whether the acting identity may proceed. It is evaluated
// fresh per request and never persisted. Every rejection is the same
// ErrUnauthorized: an unknown identity, a bad credential and a missing admin
// flag are indistinguishable to the caller.
func (t *Telemetry) authorize(userID int64, credential string, requireAdmin bool) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryGuard),
	)

	user, err := t.getFullUser(userID)
	if err != nil {
		logger.Info("Rejected request", zap.Int64("user_id", userID))
		return ErrUnauthorized
	}

	if !security.Compare(credential, user.APIKey) {
		logger.Info("Rejected request", zap.Int64("user_id", userID))
		return ErrUnauthorized
	}

	if requireAdmin && !user.IsAdmin {
		logger.Info("Rejected request", zap.Int64("user_id", userID))
		return ErrUnauthorized
	}

	return nil
}

type IGuardImpl struct {
	t *Telemetry
}

func (ig *IGuardImpl) Authorize(userID int64, credential string, requireAdmin bool) error {
	return ig.t.authorize(userID, credential, requireAdmin)
}

func (t *Telemetry) GetIGuard() IGuard {
	return &IGuardImpl{t: t}
}
