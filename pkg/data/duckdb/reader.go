package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/peter-kozarec/sysid/pkg/common"
	"github.com/peter-kozarec/sysid/pkg/utility"
	"github.com/peter-kozarec/sysid/pkg/utility/fixed"
)

const readerComponentName = "data.duckdb.reader"

// Reader streams logged experiment samples out of a DuckDB database. Each
// experiment lives in its own <experiment>_samples table with ts, u and y
// columns.
type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open %q: %w", r.dataSourceName, err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

func (r *Reader) LoadSamples(ctx context.Context, experiment string, from, to time.Time, handler func(sample common.Sample) error) error {

	query := fmt.Sprintf(`SELECT ts, u, y FROM %s_samples WHERE ts BETWEEN ? AND ? ORDER BY ts`, experiment)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var timeStamp time.Time
		var u, y float64

		if err := rows.Scan(&timeStamp, &u, &y); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}

		sample := common.Sample{
			Source:     readerComponentName,
			Experiment: experiment,
			RunId:      utility.GetRunID(),
			TraceID:    utility.CreateTraceID(),
			TimeStamp:  timeStamp,
			U:          fixed.FromFloat64(u),
			Y:          fixed.FromFloat64(y),
		}

		if err := handler(sample); err != nil {
			return fmt.Errorf("error processing sample: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}
