package telemetry

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"boxlab.xyz/box-telemetry-service/pkg/common"
	"boxlab.xyz/box-telemetry-service/pkg/downsample"
	"boxlab.xyz/box-telemetry-service/pkg/models"
)

// InsertResult reports the outcome of an accepted write. RowsAffected is 0
// when the row collided with an existing (box, sensor, timestamp) triple and
// was dropped; that is still a success, not an error.
type InsertResult struct {
	ID           int64 `json:"id"`
	RowsAffected int64 `json:"rows_affected"`
}

func (t *Telemetry) insertMeasurement(boxID int64, sensorID int64, value float64) (InsertResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMeasurement),
	)

	if err := t.Db.Conn.First(&models.Box{}, boxID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InsertResult{}, fmt.Errorf("box %d: %w", boxID, ErrUnknownReference)
		}
		return InsertResult{}, err
	}

	measurement := models.Measurement{
		BoxID:     boxID,
		SensorID:  sensorID,
		Value:     value,
		Timestamp: t.nowMillis(),
	}

	result := t.Db.Conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&measurement)
	if result.Error != nil {
		return InsertResult{}, result.Error
	}

	if result.RowsAffected == 0 {
		// Same box, sensor and millisecond as an existing row: absorbed.
		logger.Info("Dropped duplicate measurement", zap.Reflect("measurement", measurement))
		return InsertResult{RowsAffected: 0}, nil
	}

	logger.Info("Stored measurement", zap.Reflect("measurement", measurement))
	return InsertResult{ID: measurement.ID, RowsAffected: result.RowsAffected}, nil
}

func (t *Telemetry) latestMeasurement(boxID int64, sensorID int64) (*models.Measurement, error) {
	var measurement models.Measurement
	err := t.Db.Conn.
		Where("box_id = ? AND sensor_id = ?", boxID, sensorID).
		Order("timestamp desc").
		First(&measurement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &measurement, nil
}

func (t *Telemetry) rangeMeasurements(boxID int64, sensorID int64, windowMinutes int, maxPoints int) ([]downsample.Point, error) {
	since := t.nowMillis() - int64(windowMinutes)*60_000

	var rows []models.Measurement
	err := t.Db.Conn.
		Where("box_id = ? AND sensor_id = ? AND timestamp > ?", boxID, sensorID, since).
		Order("timestamp desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	// Storage hands rows back newest-first; the downsampler wants them
	// chronological.
	points := make([]downsample.Point, len(rows))
	for i, row := range rows {
		points[len(rows)-1-i] = downsample.Point{X: row.Timestamp, Y: row.Value}
	}

	return downsample.LTTB(points, maxPoints), nil
}

type IMeasurementImpl struct {
	t *Telemetry
}

func (im *IMeasurementImpl) Insert(boxID int64, sensorID int64, value float64) (InsertResult, error) {
	return im.t.insertMeasurement(boxID, sensorID, value)
}

func (im *IMeasurementImpl) Latest(boxID int64, sensorID int64) (*models.Measurement, error) {
	return im.t.latestMeasurement(boxID, sensorID)
}

func (im *IMeasurementImpl) Range(boxID int64, sensorID int64, windowMinutes int, maxPoints int) ([]downsample.Point, error) {
	return im.t.rangeMeasurements(boxID, sensorID, windowMinutes, maxPoints)
}

func (t *Telemetry) GetIMeasurement() IMeasurement {
	return &IMeasurementImpl{t: t}
}
