package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/peter-kozarec/sysid/pkg/bus"
	"github.com/peter-kozarec/sysid/pkg/common"
	"github.com/peter-kozarec/sysid/pkg/utility/fixed"
)

func TestLiveClient_StreamsSamples(t *testing.T) {
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer func() {
			_ = conn.Close()
		}()

		for i := 0; i < 3; i++ {
			sample := common.Sample{
				U:         fixed.FromInt(i, 0),
				Y:         fixed.FromInt(i*2, 0),
				TimeStamp: time.Unix(int64(i), 0),
			}
			if err := conn.WriteJSON(sample); err != nil {
				t.Errorf("write: %v", err)
				return
			}
		}
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()

	router := bus.NewRouter(16)

	received := make(chan common.Sample, 8)
	router.OnSample = func(ctx context.Context, sample common.Sample) {
		received <- sample
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := router.Exec(ctx)

	endpoint := "ws" + strings.TrimPrefix(server.URL, "http")
	client := NewClient(router, endpoint, "plantloop")
	if err := client.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Disconnect()

	for i := 0; i < 3; i++ {
		select {
		case sample := <-received:
			u, y := sample.Floats()
			if u != float64(i) || y != float64(i*2) {
				t.Errorf("sample %d: u = %v, y = %v", i, u, y)
			}
			if sample.Experiment != "plantloop" {
				t.Errorf("experiment = %q", sample.Experiment)
			}
			if sample.Source != clientComponentName {
				t.Errorf("source = %q", sample.Source)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for sample")
		}
	}

	cancel()
	<-done
}

func TestLiveClient_ConnectFailure(t *testing.T) {
	router := bus.NewRouter(1)
	client := NewClient(router, "ws://127.0.0.1:1/feed", "plantloop")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := client.Connect(ctx); err == nil {
		client.Disconnect()
		t.Fatal("expected connect to fail")
	}
}
