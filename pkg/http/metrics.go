package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	measurementsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "box_telemetry_measurements_accepted_total",
		Help: "Measurements stored through the ingest route.",
	})
	measurementsDeduplicated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "box_telemetry_measurements_deduplicated_total",
		Help: "Measurements dropped on a duplicate (box, sensor, timestamp) triple.",
	})
)
