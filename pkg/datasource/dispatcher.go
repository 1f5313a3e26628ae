package datasource

import (
	"github.com/peter-kozarec/sysid/pkg/bus"
	"github.com/peter-kozarec/sysid/pkg/common"
)

type SampleDataSource interface {
	GetNext() (common.Sample, error)
}

// CreateSampleDispatcher adapts a data source to the router's do-once
// callback. The returned function reads one sample and posts it, so the
// router's ExecLoop drains the source sample by sample.
func CreateSampleDispatcher(r *bus.Router, ds SampleDataSource) func() error {
	return func() error {
		var sample common.Sample
		var err error

		if sample, err = ds.GetNext(); err != nil {
			return err
		}
		if err = r.Post(bus.SampleEvent, sample); err != nil {
			return err
		}
		return nil
	}
}
