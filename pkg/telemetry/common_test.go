package telemetry_test

import (
	. "boxlab.xyz/box-telemetry-service/pkg/telemetry"
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"
	"boxlab.xyz/box-telemetry-service/pkg/db"
	"boxlab.xyz/box-telemetry-service/pkg/telemetry/mocks"
)

func GetMockTelemetryWithMemorySqliteDialector(t *testing.T, useMockMeasurement, useMockDirectory, useMockGuard bool) (
	*gomock.Controller,
	*Telemetry,
	*mocks.MockIMeasurement,
	*mocks.MockIDirectory,
	*mocks.MockIGuard,
) {
	ctrl := gomock.NewController(t)

	mockMeasurement := mocks.NewMockIMeasurement(ctrl)
	mockDirectory := mocks.NewMockIDirectory(ctrl)
	mockGuard := mocks.NewMockIGuard(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	core := &Telemetry{Db: *dbInstance}

	measurementService := core.GetIMeasurement()
	if useMockMeasurement {
		measurementService = mockMeasurement
	}

	directoryService := core.GetIDirectory()
	if useMockDirectory {
		directoryService = mockDirectory
	}

	guardService := core.GetIGuard()
	if useMockGuard {
		guardService = mockGuard
	}

	core.WithServices(ServiceOpts{
		Measurement: measurementService,
		Directory:   directoryService,
		Guard:       guardService,
	})

	return ctrl, core, mockMeasurement, mockDirectory, mockGuard
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
