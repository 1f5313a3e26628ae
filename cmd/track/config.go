package main

import (
	"os"
	"strconv"
	"time"

	"github.com/peter-kozarec/sysid/pkg/middleware"
)

var sampleDataSource = envOr("SysidSampleSource", "data/plantloop_samples.bin")
var experiment = envOr("SysidExperiment", "plantloop")
var denOrder, _ = strconv.Atoi(envOr("SysidDenOrder", "2"))
var numOrder, _ = strconv.Atoi(envOr("SysidNumOrder", "1"))
var forgetting, _ = strconv.ParseFloat(envOr("SysidForgetting", "0.99"), 64)
var sampleTime, _ = strconv.ParseFloat(envOr("SysidSampleTime", "0.01"), 64)

var recordStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
var recordEnd = time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

const (
	routerEventCapacity = 1000
	monitorFlags        = middleware.MonitorResiduals
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
