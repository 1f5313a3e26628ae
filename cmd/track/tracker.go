package main

import (
	"context"
	"log/slog"

	"github.com/peter-kozarec/sysid/pkg/bus"
	"github.com/peter-kozarec/sysid/pkg/common"
	"github.com/peter-kozarec/sysid/pkg/models/ident"
)

const trackerComponentName = "cmd.track.tracker"

// Tracker feeds every incoming sample to the recursive estimation session
// and publishes the updated estimate and its residual.
type Tracker struct {
	router  *bus.Router
	session *ident.Recursive
}

func NewTracker(router *bus.Router, session *ident.Recursive) *Tracker {
	return &Tracker{
		router:  router,
		session: session,
	}
}

func (t *Tracker) OnSample(ctx context.Context, sample common.Sample) {
	u, y := sample.Floats()

	predErr, err := t.session.Step(u, y)
	if err != nil {
		slog.Error("update failed", "error", err, "step", t.session.Steps())
		return
	}

	estimate := common.Estimate{
		Step:            t.session.Steps(),
		Parameters:      t.session.Theta(),
		PredictionError: predErr,
		Source:          trackerComponentName,
		Experiment:      sample.Experiment,
		RunId:           sample.RunId,
		TraceID:         sample.TraceID,
		TimeStamp:       sample.TimeStamp,
	}
	if err := t.router.Post(bus.EstimateEvent, estimate); err != nil {
		slog.Warn("estimate dropped", "error", err)
	}

	residual := common.Residual{
		Step:       t.session.Steps(),
		Value:      predErr,
		Source:     trackerComponentName,
		Experiment: sample.Experiment,
		RunId:      sample.RunId,
		TraceID:    sample.TraceID,
		TimeStamp:  sample.TimeStamp,
	}
	if err := t.router.Post(bus.ResidualEvent, residual); err != nil {
		slog.Warn("residual dropped", "error", err)
	}
}
