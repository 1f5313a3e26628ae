package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/peter-kozarec/sysid/internal/dbg"
	"github.com/peter-kozarec/sysid/pkg/bus"
	"github.com/peter-kozarec/sysid/pkg/datasource"
	"github.com/peter-kozarec/sysid/pkg/datasource/historical"
	"github.com/peter-kozarec/sysid/pkg/middleware"
	"github.com/peter-kozarec/sysid/pkg/models/ident"
)

func main() {
	logger := dbg.NewDevLogger()
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("track started",
		zap.String("experiment", experiment),
		zap.String("source", sampleDataSource),
		zap.Float64("forgetting", forgetting))
	defer logger.Info("track finished")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	source := historical.NewSource[historical.BinarySample](sampleDataSource)
	if err := source.Open(); err != nil {
		logger.Fatal("unable to open sample source", zap.Error(err))
	}
	defer source.Close()

	session, err := ident.NewRecursive(denOrder, numOrder, sampleTime,
		ident.WithForgetting(forgetting))
	if err != nil {
		logger.Fatal("unable to create estimation session", zap.Error(err))
	}

	router := bus.NewRouter(routerEventCapacity)
	monitor := middleware.NewMonitor(monitorFlags)
	performance := middleware.NewPerformance()
	tracker := NewTracker(router, session)

	router.OnSample = middleware.Chain(monitor.WithSample, performance.WithSample)(tracker.OnSample)
	router.OnEstimate = middleware.Chain(monitor.WithEstimate, performance.WithEstimate)(middleware.NoopEstimateHdl)
	router.OnResidual = middleware.Chain(monitor.WithResidual, performance.WithResidual)(middleware.NoopResidualHdl)

	reader := historical.NewSampleReader(source, experiment, recordStart, recordEnd)
	done := router.ExecLoop(ctx, datasource.CreateSampleDispatcher(router, reader))

	defer performance.PrintStatistics()
	defer func() {
		router.Statistics().Print()
	}()

	if err := <-done; err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, historical.ErrEof) {
			logger.Fatal("replay failed", zap.Error(err))
		}
	}

	model, err := session.Model()
	if err != nil {
		logger.Fatal("unable to realize model", zap.Error(err))
	}
	logger.Info("model tracked",
		zap.Int("steps", session.Steps()),
		zap.Float64("last_error", session.LastError()),
		zap.String("model", model.String()))
}
