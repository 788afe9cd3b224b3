package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

// relay is a websocket server that plays a fixed script of frames,
// one slice per connection
type relay struct {
	server   *httptest.Server
	frames   [][]string
	conns    atomic.Int32
	roomSeen atomic.Value

	mu     sync.Mutex
	closed bool
	active []*websocket.Conn
	wg     sync.WaitGroup
}

func newRelay(frames [][]string) *relay {
	r := &relay{frames: frames}
	r.server = httptest.NewServer(http.HandlerFunc(r.serve))
	return r
}

func (r *relay) url() string {
	return "ws" + strings.TrimPrefix(r.server.URL, "http")
}

func (r *relay) serve(w http.ResponseWriter, req *http.Request) {
	r.roomSeen.Store(req.URL.Query().Get("room_id"))

	upgrader := websocket.Upgrader{}
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		conn.Close()
		return
	}
	r.active = append(r.active, conn)
	r.wg.Add(1)
	r.mu.Unlock()

	defer r.wg.Done()
	defer conn.Close()

	n := int(r.conns.Add(1)) - 1
	if n < len(r.frames) {
		for _, frame := range r.frames[n] {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}
		// Drop the link so the feed reconnects
		if n < len(r.frames)-1 {
			return
		}
	}

	// Hold the last link open until the client leaves
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// close stops the server and waits for every upgraded connection to finish
func (r *relay) close() {
	r.mu.Lock()
	r.closed = true
	for _, conn := range r.active {
		conn.Close()
	}
	r.mu.Unlock()

	r.server.Close()
	r.wg.Wait()
}

type WebSocketFeedTestSuite struct {
	suite.Suite
	relay *relay
}

func (s *WebSocketFeedTestSuite) SetupTest() {
	s.relay = nil
}

func (s *WebSocketFeedTestSuite) TearDownTest() {
	if s.relay != nil {
		s.relay.close()
	}
}

func TestWebSocketFeedTestSuite(t *testing.T) {
	suite.Run(t, new(WebSocketFeedTestSuite))
}

// newFeed starts a relay playing frames and returns a feed pointed at it
func (s *WebSocketFeedTestSuite) newFeed(frames [][]string) *webSocketFeed {
	s.relay = newRelay(frames)

	f, err := NewWebSocket(&WebSocketConfig{
		URL:        s.relay.url(),
		RoomID:     4242,
		RetryDelay: 10 * time.Millisecond,
	})
	s.Require().NoError(err)
	return f
}

func (s *WebSocketFeedTestSuite) collect(f *webSocketFeed, names ...string) <-chan string {
	seen := make(chan string, 32)
	for _, name := range names {
		f.On(name, func(ctx context.Context, event *Event) error {
			seen <- event.Name
			return nil
		})
	}
	return seen
}

func (s *WebSocketFeedTestSuite) next(seen <-chan string) string {
	select {
	case name := <-seen:
		return name
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for event")
		return ""
	}
}

func (s *WebSocketFeedTestSuite) TestDeliversLinkThenFramesInOrder() {
	f := s.newFeed([][]string{{
		`{"cmd":"DANMU_MSG:4:0:2:2:2:0","info":[]}`,
		`not json`,
		`{"cmd":"SEND_GIFT","data":{}}`,
		`{"cmd":"PREPARING"}`,
	}})
	seen := s.collect(f, EventLinked, "DANMU_MSG", "SEND_GIFT", "PREPARING")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Connect(ctx) }()

	s.Equal(EventLinked, s.next(seen))
	s.Equal("DANMU_MSG", s.next(seen))
	s.Equal("SEND_GIFT", s.next(seen))
	s.Equal("PREPARING", s.next(seen))
	s.Equal(StatusConnected, f.Status())
	s.Equal("4242", s.relay.roomSeen.Load())

	cancel()
	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.FailNow("Connect did not return after cancel")
	}
	s.Equal(StatusClosed, f.Status())
}

func (s *WebSocketFeedTestSuite) TestReconnectDispatchesLinkAgain() {
	f := s.newFeed([][]string{
		{`{"cmd":"LIVE","live_time":1}`},
		{`{"cmd":"PREPARING"}`},
	})
	seen := s.collect(f, EventLinked, "LIVE", "PREPARING")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.Connect(ctx) }()

	s.Equal(EventLinked, s.next(seen))
	s.Equal("LIVE", s.next(seen))
	s.Equal(EventLinked, s.next(seen))
	s.Equal("PREPARING", s.next(seen))
}

func (s *WebSocketFeedTestSuite) TestDispatchQueuesBehindReceivedEvents() {
	f := s.newFeed([][]string{{`{"cmd":"DANMU_MSG"}`}})
	seen := s.collect(f, EventLinked, "DANMU_MSG", "DYNAMIC_UPDATE")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Queued before the link exists, so it runs first
	s.Require().NoError(f.Dispatch(ctx, &Event{Name: "DYNAMIC_UPDATE"}))
	go func() { _ = f.Connect(ctx) }()

	s.Equal("DYNAMIC_UPDATE", s.next(seen))
	s.Equal(EventLinked, s.next(seen))
	s.Equal("DANMU_MSG", s.next(seen))
}

func (s *WebSocketFeedTestSuite) TestHandlerErrorDoesNotStopFeed() {
	f := s.newFeed([][]string{{`{"cmd":"SEND_GIFT"}`, `{"cmd":"PREPARING"}`}})
	seen := s.collect(f, "PREPARING")
	f.On("SEND_GIFT", func(ctx context.Context, event *Event) error {
		return context.DeadlineExceeded
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.Connect(ctx) }()

	s.Equal("PREPARING", s.next(seen))
}

func (s *WebSocketFeedTestSuite) TestRelayShutdownLeavesFeedRetrying() {
	f := s.newFeed([][]string{{`{"cmd":"LIVE","live_time":1}`}})
	seen := s.collect(f, EventLinked, "LIVE")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.Connect(ctx) }()

	s.Equal(EventLinked, s.next(seen))
	s.Equal("LIVE", s.next(seen))

	// close returns only after the held link has been torn down
	s.relay.close()
	s.Eventually(func() bool {
		return f.Status() == StatusConnecting
	}, 2*time.Second, 10*time.Millisecond)
	s.Equal(int32(1), s.relay.conns.Load())
}

func (s *WebSocketFeedTestSuite) TestCommandName() {
	name, err := CommandName([]byte(`{"cmd":"DANMU_MSG:4:0:2:2:2:0"}`))
	s.Require().NoError(err)
	s.Equal("DANMU_MSG", name)

	_, err = CommandName([]byte(`{"data":{}}`))
	s.Error(err)
}

func (s *WebSocketFeedTestSuite) TestNewWebSocketValidates() {
	_, err := NewWebSocket(nil)
	s.Error(err)

	_, err = NewWebSocket(&WebSocketConfig{URL: "ws://x"})
	s.Error(err)
}
