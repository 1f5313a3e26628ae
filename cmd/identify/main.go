package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/peter-kozarec/sysid/internal/dbg"
	"github.com/peter-kozarec/sysid/pkg/datasource/historical"
	"github.com/peter-kozarec/sysid/pkg/models/ident"
)

func main() {
	logger := dbg.NewDevLogger()
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("identify started",
		zap.String("experiment", experiment),
		zap.String("source", sampleDataSource))
	defer logger.Info("identify finished")

	source := historical.NewSource[historical.BinarySample](sampleDataSource)
	if err := source.Open(); err != nil {
		logger.Fatal("unable to open sample source", zap.Error(err))
	}
	defer source.Close()

	reader := historical.NewSampleReader(source, experiment, recordStart, recordEnd)

	var u, y []float64
	for {
		sample, err := reader.GetNext()
		if errors.Is(err, historical.ErrEof) {
			break
		}
		if err != nil {
			logger.Fatal("unable to read sample", zap.Error(err))
		}
		su, sy := sample.Floats()
		u = append(u, su)
		y = append(y, sy)
	}
	logger.Info("record loaded", zap.Int("samples", len(y)))

	model, err := ident.ARX(u, y, denOrder, numOrder, sampleTime, ident.WithDelay(inputDelay))
	if err != nil {
		logger.Fatal("identification failed", zap.Error(err))
	}
	logger.Info("model identified", zap.String("model", model.String()))

	diag, err := model.Evaluate(u, y)
	if err != nil {
		logger.Fatal("evaluation failed", zap.Error(err))
	}
	logger.Info("model diagnostics",
		zap.Float64("fit_percent", diag.FitPercent),
		zap.Float64("residual_variance", diag.ResidualVariance),
		zap.Float64("fpe", diag.FPE))
}
