package historical

import (
	"fmt"
	"time"

	"github.com/peter-kozarec/sysid/pkg/common"
	"github.com/peter-kozarec/sysid/pkg/utility"
)

const (
	invalidIndex              = -1
	sampleReaderComponentName = "datasource.historical.reader"
)

// SampleReader iterates over the samples of one logged experiment within a
// time range. The log must be ordered by timestamp.
type SampleReader struct {
	source *Source[BinarySample]

	experiment string
	from       int64
	to         int64
	idx        int64
}

func NewSampleReader(source *Source[BinarySample], experiment string, from, to time.Time) *SampleReader {
	return &SampleReader{
		source:     source,
		experiment: experiment,
		from:       from.UnixNano(),
		to:         to.UnixNano(),
		idx:        invalidIndex,
	}
}

func (r *SampleReader) GetNext() (common.Sample, error) {

	var sample common.Sample
	var binSample BinarySample

	if r.idx == invalidIndex {
		if err := r.lookupStartIndex(); err != nil {
			return sample, err
		}
	}

	if err := r.source.Read(r.idx, &binSample); err != nil {
		return sample, fmt.Errorf("error reading entry at index %d: %w", r.idx, err)
	}
	r.idx++

	if binSample.TimeStamp < r.from {
		return sample, fmt.Errorf("timestamp is not from the proposed range")
	}

	if binSample.TimeStamp > r.to {
		return sample, ErrEof
	}

	binSample.ToSample(&sample)

	sample.Source = sampleReaderComponentName
	sample.Experiment = r.experiment
	sample.RunId = utility.GetRunID()
	sample.TraceID = utility.CreateTraceID()

	return sample, nil
}

func (r *SampleReader) lookupStartIndex() error {
	entryCount, err := r.source.EntryCount()
	if err != nil {
		return fmt.Errorf("error getting entry count: %w", err)
	}

	if entryCount == 0 {
		return fmt.Errorf("entry count is zero")
	}

	var entry BinarySample

	low := int64(0)
	high := entryCount - 1

	for low <= high {
		mid := (low + high) / 2

		if err := r.source.Read(mid, &entry); err != nil {
			return fmt.Errorf("error reading entry at index %d: %w", mid, err)
		}

		if entry.TimeStamp < r.from {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	if low >= entryCount {
		return fmt.Errorf("no entry found with timestamp >= from")
	}

	r.idx = low
	return nil
}
