package live

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/peter-kozarec/sysid/pkg/bus"
	"github.com/peter-kozarec/sysid/pkg/common"
	"github.com/peter-kozarec/sysid/pkg/utility"
)

const clientComponentName = "datasource.live.client"

// Client streams measurement samples from an acquisition endpoint over a
// websocket and posts them to the router. Samples arrive as JSON objects
// matching common.Sample.
type Client struct {
	router     *bus.Router
	endpoint   string
	experiment string

	conn      *websocket.Conn
	ctxCancel context.CancelFunc
}

func NewClient(router *bus.Router, endpoint, experiment string) *Client {
	return &Client{
		router:     router,
		endpoint:   endpoint,
		experiment: experiment,
	}
}

func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return fmt.Errorf("unable to dial %q: %w", c.endpoint, err)
	}
	c.conn = conn

	readCtx, cancel := context.WithCancel(ctx)
	c.ctxCancel = cancel
	go c.read(readCtx)

	return nil
}

func (c *Client) Disconnect() {
	if c.ctxCancel != nil {
		c.ctxCancel()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *Client) read(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			var sample common.Sample
			if err := c.conn.ReadJSON(&sample); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					slog.Warn("cannot read sample", "error", err)
					return
				}
				slog.Debug("websocket closed", "error", err)
				return
			}

			sample.Source = clientComponentName
			sample.Experiment = c.experiment
			sample.RunId = utility.GetRunID()
			sample.TraceID = utility.CreateTraceID()
			if sample.TimeStamp.IsZero() {
				sample.TimeStamp = time.Now()
			}

			if err := c.router.Post(bus.SampleEvent, sample); err != nil {
				slog.Warn("sample dropped", "error", err)
			}
		}
	}
}
