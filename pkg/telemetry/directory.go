package telemetry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"boxlab.xyz/box-telemetry-service/pkg/common"
	"boxlab.xyz/box-telemetry-service/pkg/models"
)

func directoryLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDirectory),
	)
}

// Boxes

func (t *Telemetry) getBox(id int64) (*models.Box, error) {
	var box models.Box
	err := t.Db.Conn.First(&box, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &box, nil
}

func (t *Telemetry) getBoxes() ([]models.Box, error) {
	var boxes []models.Box
	err := t.Db.Conn.Find(&boxes).Error
	return boxes, err
}

func (t *Telemetry) getBoxesByOwner(ownerID int64) ([]models.Box, error) {
	var boxes []models.Box
	err := t.Db.Conn.Where("user_id = ?", ownerID).Find(&boxes).Error
	return boxes, err
}

func (t *Telemetry) addBox(ownerID int64, description string) (*models.Box, error) {
	if err := t.Db.Conn.First(&models.User{}, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("owner %d: %w", ownerID, ErrUnknownReference)
		}
		return nil, err
	}

	box := models.Box{UserID: ownerID, Description: description}
	result := t.Db.Conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&box)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Description already taken: idempotent no-op, hand back the
		// existing row.
		if err := t.Db.Conn.Where("description = ?", description).First(&box).Error; err != nil {
			return nil, err
		}
		return &box, nil
	}

	directoryLogger().Info("Added box", zap.Reflect("box", box))
	return &box, nil
}

func (t *Telemetry) removeBox(id int64) error {
	result := t.Db.Conn.Delete(&models.Box{}, id)
	if result.Error != nil {
		return result.Error
	}
	directoryLogger().Info("Removed box", zap.Int64("box_id", id), zap.Int64("rows", result.RowsAffected))
	return nil
}

// Sensors

func (t *Telemetry) getSensor(id int64) (*models.Sensor, error) {
	var sensor models.Sensor
	err := t.Db.Conn.First(&sensor, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (t *Telemetry) getSensors() ([]models.Sensor, error) {
	var sensors []models.Sensor
	err := t.Db.Conn.Find(&sensors).Error
	return sensors, err
}

func (t *Telemetry) addSensor(name string, unit string) (*models.Sensor, error) {
	sensor := models.Sensor{Name: name, Unit: unit}
	result := t.Db.Conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&sensor)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		if err := t.Db.Conn.Where("name = ?", name).First(&sensor).Error; err != nil {
			return nil, err
		}
		return &sensor, nil
	}

	directoryLogger().Info("Added sensor", zap.Reflect("sensor", sensor))
	return &sensor, nil
}

func (t *Telemetry) removeSensor(id int64) error {
	result := t.Db.Conn.Delete(&models.Sensor{}, id)
	if result.Error != nil {
		return result.Error
	}
	directoryLogger().Info("Removed sensor", zap.Int64("sensor_id", id), zap.Int64("rows", result.RowsAffected))
	return nil
}

// Users

func (t *Telemetry) getFullUser(id int64) (*models.User, error) {
	var user models.User
	err := t.Db.Conn.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (t *Telemetry) getUser(id int64) (*models.PublicUser, error) {
	user, err := t.getFullUser(id)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (t *Telemetry) getUsers() ([]models.PublicUser, error) {
	var users []models.User
	if err := t.Db.Conn.Find(&users).Error; err != nil {
		return nil, err
	}
	return common.Mapper(users, func(u models.User) models.PublicUser {
		return u.Public()
	}), nil
}

func (t *Telemetry) addUser(name string, credentialHash string, isAdmin bool) (*models.User, error) {
	user := models.User{Name: name, APIKey: credentialHash, IsAdmin: isAdmin}
	result := t.Db.Conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Name already taken: keep the existing row, including its
		// credential hash, so repeated seeding never rotates a key.
		if err := t.Db.Conn.Where("name = ?", name).First(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	directoryLogger().Info("Added user", zap.Int64("user_id", user.ID), zap.String("name", user.Name), zap.Bool("is_admin", user.IsAdmin))
	return &user, nil
}

func (t *Telemetry) updateUserCredential(userID int64, newHash string) error {
	result := t.Db.Conn.Model(&models.User{}).Where("id = ?", userID).Update("api_key", newHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	directoryLogger().Info("Rotated user credential", zap.Int64("user_id", userID))
	return nil
}

func (t *Telemetry) removeUser(id int64) error {
	result := t.Db.Conn.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	directoryLogger().Info("Removed user", zap.Int64("user_id", id), zap.Int64("rows", result.RowsAffected))
	return nil
}

type IDirectoryImpl struct {
	t *Telemetry
}

func (id *IDirectoryImpl) GetBox(boxID int64) (*models.Box, error) {
	return id.t.getBox(boxID)
}

func (id *IDirectoryImpl) GetBoxes() ([]models.Box, error) {
	return id.t.getBoxes()
}

func (id *IDirectoryImpl) GetBoxesByOwner(ownerID int64) ([]models.Box, error) {
	return id.t.getBoxesByOwner(ownerID)
}

func (id *IDirectoryImpl) AddBox(ownerID int64, description string) (*models.Box, error) {
	return id.t.addBox(ownerID, description)
}

func (id *IDirectoryImpl) RemoveBox(boxID int64) error {
	return id.t.removeBox(boxID)
}

func (id *IDirectoryImpl) GetSensor(sensorID int64) (*models.Sensor, error) {
	return id.t.getSensor(sensorID)
}

func (id *IDirectoryImpl) GetSensors() ([]models.Sensor, error) {
	return id.t.getSensors()
}

func (id *IDirectoryImpl) AddSensor(name string, unit string) (*models.Sensor, error) {
	return id.t.addSensor(name, unit)
}

func (id *IDirectoryImpl) RemoveSensor(sensorID int64) error {
	return id.t.removeSensor(sensorID)
}

func (id *IDirectoryImpl) GetUser(userID int64) (*models.PublicUser, error) {
	return id.t.getUser(userID)
}

func (id *IDirectoryImpl) GetUsers() ([]models.PublicUser, error) {
	return id.t.getUsers()
}

func (id *IDirectoryImpl) GetFullUser(userID int64) (*models.User, error) {
	return id.t.getFullUser(userID)
}

func (id *IDirectoryImpl) AddUser(name string, credentialHash string, isAdmin bool) (*models.User, error) {
	return id.t.addUser(name, credentialHash, isAdmin)
}

func (id *IDirectoryImpl) UpdateUserCredential(userID int64, newHash string) error {
	return id.t.updateUserCredential(userID, newHash)
}

func (id *IDirectoryImpl) RemoveUser(userID int64) error {
	return id.t.removeUser(userID)
}

func (t *Telemetry) GetIDirectory() IDirectory {
	return &IDirectoryImpl{t: t}
}
