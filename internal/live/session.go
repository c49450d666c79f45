package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"algoeconomics/internal/chart"
	"algoeconomics/internal/model"
	"algoeconomics/internal/sections"
	"algoeconomics/internal/widget"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/websocket"
)

const (
	outboxSize   = 64
	writeTimeout = 10 * time.Second
)

// Conn is a message stream to one page.
type Conn interface {
	Receive(m *Message) error
	Send(m Message) error
	Close() error
}

// SessionObserver is told when sessions open and close. *metrics.Metrics
// is one.
type SessionObserver interface {
	LiveSessionOpened()
	LiveSessionClosed()
}

// Server accepts live widget sessions.
type Server struct {
	presets  widget.PresetSource
	recorder widget.Recorder
	observer SessionObserver
	delay    time.Duration
	origins  []string
	logger   *zap.Logger
}

type Option func(*Server)

func WithPresets(src widget.PresetSource) Option { return func(s *Server) { s.presets = src } }
func WithRecorder(r widget.Recorder) Option      { return func(s *Server) { s.recorder = r } }
func WithObserver(o SessionObserver) Option      { return func(s *Server) { s.observer = o } }
func WithDebounceDelay(d time.Duration) Option   { return func(s *Server) { s.delay = d } }
func WithLogger(l *zap.Logger) Option            { return func(s *Server) { s.logger = l } }

// WithAllowedOrigins limits which page origins may open a session. Empty or
// "*" allows any.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.origins = origins }
}

func NewServer(opts ...Option) *Server {
	s := &Server{delay: widget.DefaultDelay, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler upgrades HTTP requests to WebSocket sessions. Browsers do not
// apply CORS to upgrades, so the Origin header is checked here; requests
// without one (non-browser clients) are let through.
func (s *Server) Handler() http.Handler {
	return websocket.Server{
		Handshake: func(_ *websocket.Config, r *http.Request) error {
			origin := r.Header.Get("Origin")
			if origin == "" || s.originAllowed(origin) {
				return nil
			}
			s.logger.Info("live session origin rejected", zap.String("origin", origin))
			return ErrOriginNotAllowed
		},
		Handler: func(ws *websocket.Conn) {
			if err := s.Serve(ws.Request().Context(), NewWebSocketConn(ws)); err != nil {
				s.logger.Warn("live session ended with error", zap.Error(err))
			}
		},
	}
}

// ErrOriginNotAllowed rejects an upgrade from a page origin outside the
// allowed list.
var ErrOriginNotAllowed = errors.New("origin not allowed")

func (s *Server) originAllowed(origin string) bool {
	if len(s.origins) == 0 {
		return true
	}
	for _, o := range s.origins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

// Serve runs one session until the peer disconnects or ctx is done.
func (s *Server) Serve(ctx context.Context, conn Conn) error {
	sess := newSession(s, conn)
	if s.observer != nil {
		s.observer.LiveSessionOpened()
		defer s.observer.LiveSessionClosed()
	}
	s.logger.Debug("live session opened", zap.String("session_id", sess.id))
	defer s.logger.Debug("live session closed", zap.String("session_id", sess.id))
	return sess.run(ctx)
}

type session struct {
	id       string
	conn     Conn
	logger   *zap.Logger
	widget   *widget.Widget
	chart    *modelChart
	sections *sections.Controller

	out  chan Message
	done chan struct{}
	wg   sync.WaitGroup

	// quit is closed by the writer when a send fails; sendErr is that error.
	quit     chan struct{}
	quitOnce sync.Once
	sendErr  error
}

func newSession(s *Server, conn Conn) *session {
	sess := &session{
		id:     uuid.NewString(),
		conn:   conn,
		logger: s.logger,
		out:    make(chan Message, outboxSize),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
	}
	sess.chart = newModelChart(sess.push)
	opts := []widget.Option{
		widget.WithDelay(s.delay),
		widget.WithLogger(s.logger),
	}
	if s.presets != nil {
		opts = append(opts, widget.WithPresets(s.presets))
	}
	if s.recorder != nil {
		opts = append(opts, widget.WithRecorder(s.recorder))
	}
	sess.widget = widget.New(newView(sess.push), sess.chart, opts...)
	sess.sections = sections.NewController(sess.sectionLoaded)
	return sess
}

// push queues m for the writer. Once the session has ended or the writer
// has failed it drops m.
func (s *session) push(m Message) {
	select {
	case s.out <- m:
	case <-s.done:
	case <-s.quit:
	}
}

func (s *session) run(ctx context.Context) error {
	s.wg.Add(2)
	go s.writeLoop()
	go func() {
		defer s.wg.Done()
		select {
		case <-ctx.Done():
			_ = s.conn.Close()
		case <-s.done:
		}
	}()

	s.widget.Init()

	var err error
	for {
		var m Message
		if err = s.conn.Receive(&m); err != nil {
			break
		}
		s.handle(m)
	}

	s.widget.Close()
	close(s.done)
	s.wg.Wait()

	if s.sendErr != nil {
		return fmt.Errorf("send: %w", s.sendErr)
	}
	if errors.Is(err, io.EOF) || ctx.Err() != nil {
		return nil
	}
	return err
}

func (s *session) writeLoop() {
	defer s.wg.Done()
	for {
		select {
		case m := <-s.out:
			if err := s.conn.Send(m); err != nil {
				s.logger.Debug("live send failed", zap.String("session_id", s.id), zap.Error(err))
				s.quitOnce.Do(func() {
					s.sendErr = err
					close(s.quit)
				})
				_ = s.conn.Close()
				return
			}
		case <-s.done:
			return
		}
	}
}

func (s *session) handle(m Message) {
	switch m.Type {
	case TypeInput:
		p, err := model.ParseParam(m.Param)
		if err != nil {
			var ok bool
			if p, ok = widget.ParamForSlider(m.Param); !ok {
				s.push(errorMessage(err.Error()))
				return
			}
		}
		if m.Value == nil {
			s.push(errorMessage(fmt.Sprintf("input %s: value is required", p)))
			return
		}
		if err := s.widget.SetInput(p, *m.Value); err != nil {
			s.push(errorMessage(err.Error()))
		}
	case TypePreset:
		if _, err := s.widget.ApplyPreset(m.Name); err != nil {
			s.push(errorMessage(fmt.Sprintf("preset %q: %v", m.Name, err)))
		}
	case TypeSection:
		s.loadSection(m)
	default:
		s.push(errorMessage(fmt.Sprintf("unknown message type %q", m.Type)))
	}
}

func (s *session) loadSection(m Message) {
	if _, err := sections.Parse(m.ID); err != nil {
		s.push(errorMessage(err.Error()))
		return
	}
	if m.Region == "" {
		s.sections.Load(m.ID)
		return
	}
	if _, ok := chart.Regional(m.Region); !ok {
		s.push(errorMessage(fmt.Sprintf("unknown region %q", m.Region)))
		return
	}
	if r, ok := s.sections.LoadRegion(m.Region); ok {
		s.push(Message{Type: TypeSection, ID: m.ID, Region: m.Region, Charts: []chart.Named{r}})
	}
}

// sectionLoaded runs once per section, on the reader goroutine.
func (s *session) sectionLoaded(id sections.ID, charts []chart.Named) {
	msg := Message{Type: TypeSection, ID: string(id)}
	if id == sections.EconomicModel {
		s.chart.attach(msg)
		return
	}
	msg.Charts = charts
	s.push(msg)
}

type wsConn struct {
	ws *websocket.Conn
}

// NewWebSocketConn frames messages as JSON text over ws.
func NewWebSocketConn(ws *websocket.Conn) Conn {
	return &wsConn{ws: ws}
}

func (c *wsConn) Receive(m *Message) error {
	return websocket.JSON.Receive(c.ws, m)
}

func (c *wsConn) Send(m Message) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return websocket.JSON.Send(c.ws, m)
}

func (c *wsConn) Close() error {
	return c.ws.Close()
}
