// Package loop runs one snake game against one terminal.
package loop

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/sshnake/internal/draw"
	"github.com/tomz197/sshnake/internal/game"
	"github.com/tomz197/sshnake/internal/input"
	"github.com/tomz197/sshnake/internal/loop/config"
	"github.com/tomz197/sshnake/internal/loop/server"
)

// Options configures a Session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Server       server.GameServer // Optional; enables the player count and shutdown notices
	Logger       *log.Logger

	// Inactivity limits; zero disables the check.
	InactivityWarn       time.Duration
	InactivityDisconnect time.Duration

	// Engine overrides, mainly for tests.
	Clock game.Clock
	Rand  *rand.Rand
}

// Session binds a game engine to a terminal. It owns the engine and all
// rendering state; Run drives everything from a single goroutine.
type Session struct {
	engine       *game.Engine
	canvas       *draw.Canvas
	surface      *draw.Surface
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	server       server.GameServer
	handle       *server.ClientHandle
	logger       *log.Logger
	now          func() time.Time

	score       string // Mirrored by the engine through SetText
	running     bool
	tooSmall    bool
	borderStale bool
	lastBorder  [2]string

	lastInput       time.Time
	isInactive      bool
	warnAfter       time.Duration
	disconnectAfter time.Duration
	shutdownAt      time.Time // Zero unless the server is shutting down
}

// Compile-time check that Session can mirror the score.
var _ game.ScoreDisplay = (*Session)(nil)

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r io.Reader, w io.Writer, opts Options) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	termWidth, termHeight, _ := termSizeFunc()
	l := computeLayout(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(l.width, l.height, game.BoardWidth, game.BoardHeight)
	canvas.SetOffset(l.offsetCol, l.offsetRow)

	s := &Session{
		canvas:          canvas,
		surface:         draw.NewSurface(canvas),
		chunkWriter:     draw.NewChunkWriter(w, l.offsetCol, l.offsetRow),
		writer:          w,
		termSizeFunc:    termSizeFunc,
		server:          opts.Server,
		logger:          logger,
		now:             time.Now,
		tooSmall:        l.tooSmall,
		borderStale:     true,
		warnAfter:       opts.InactivityWarn,
		disconnectAfter: opts.InactivityDisconnect,
	}

	s.engine = game.NewEngine(game.Options{
		Board:    game.DefaultBoard(),
		Clock:    opts.Clock,
		Rand:     opts.Rand,
		Display:  s,
		Renderer: game.NewSurfaceRenderer(s.surface),
	})

	if s.server != nil {
		s.handle = s.server.RegisterClient(opts.Username)
	}
	s.inputStream = input.StartStream(r)
	return s
}

// SetText receives the engine's score.
func (s *Session) SetText(value string) {
	s.score = value
}

// Run drives the session until the player quits, the input closes, the
// server shuts it down or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	if s.handle != nil {
		defer s.server.UnregisterClient(s.handle.ID)
	}

	refresh := time.NewTicker(config.UIRefreshInterval)
	defer refresh.Stop()

	s.running = true
	s.lastInput = s.now()
	s.updateScreen()

	for s.running {
		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		select {
		case <-ctx.Done():
			s.running = false
		case key, ok := <-s.inputStream.Keys():
			if !ok {
				s.running = false
				continue
			}
			s.handleKey(key)
		case <-s.ticks():
			s.tick()
		case event, ok := <-s.events():
			if !ok {
				// Server closed the channel
				s.running = false
				continue
			}
			s.handleEvent(event)
		case <-refresh.C:
			s.updateScreen()
			s.checkInactivity()
			s.checkShutdown()
		}
	}

	draw.ClearScreen(s.writer)
	return nil
}

// ticks is nil while the game is frozen by a shutdown notice.
func (s *Session) ticks() <-chan time.Time {
	if s.shuttingDown() {
		return nil
	}
	return s.engine.Ticks()
}

func (s *Session) events() <-chan server.ClientEvent {
	if s.handle == nil {
		return nil
	}
	return s.handle.EventsCh
}

func (s *Session) tick() {
	s.engine.Tick()
	if s.engine.State() == game.StateGameOver {
		snap := s.engine.Snapshot()
		s.logger.Info("game over", "score", snap.Score, "length", len(snap.Snake))
	}
}

// handleKey routes a key press. Quit always works; everything else is
// ignored during a shutdown notice.
func (s *Session) handleKey(key input.Key) {
	s.lastInput = s.now()
	if s.isInactive {
		s.isInactive = false
		s.redraw()
	}

	switch {
	case key == input.KeyQuit:
		s.running = false
	case s.shuttingDown():
	case key == input.KeyReset:
		s.engine.Reset()
	case key.IsDirection():
		wasIdle := s.engine.State() == game.StateIdle
		s.engine.HandleDirection(keyDirection(key))
		if wasIdle && s.engine.State() == game.StateRunning {
			s.logger.Debug("run started", "direction", keyDirection(key))
		}
	}
}

func keyDirection(key input.Key) game.Direction {
	switch key {
	case input.KeyLeft:
		return game.DirLeft
	case input.KeyUp:
		return game.DirUp
	case input.KeyRight:
		return game.DirRight
	case input.KeyDown:
		return game.DirDown
	default:
		return game.DirNone
	}
}

func (s *Session) handleEvent(event server.ClientEvent) {
	switch event.Type {
	case server.EventServerShutdown:
		if s.shuttingDown() {
			return
		}
		s.shutdownAt = s.now().Add(time.Duration(config.ShutdownDisplaySeconds * float64(time.Second)))
		s.borderStale = true
		s.logger.Info("server shutdown notice shown")
	}
}

func (s *Session) shuttingDown() bool {
	return !s.shutdownAt.IsZero()
}

func (s *Session) checkShutdown() {
	if s.shuttingDown() && !s.now().Before(s.shutdownAt) {
		s.running = false
	}
}

// checkInactivity warns and then disconnects idle players.
func (s *Session) checkInactivity() {
	idle := s.now().Sub(s.lastInput)
	if s.disconnectAfter > 0 && idle > s.disconnectAfter {
		s.logger.Info("disconnecting inactive session", "idle", idle.Round(time.Second))
		s.running = false
		return
	}
	if s.warnAfter > 0 && idle > s.warnAfter {
		s.isInactive = true
	}
}

// updateScreen handles terminal resize, clamping to the max render size.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	l := computeLayout(termWidth, termHeight)
	if l.tooSmall == s.tooSmall &&
		l.width == s.canvas.TerminalWidth() && l.height == s.canvas.TerminalHeight() &&
		l.offsetCol == s.canvas.OffsetCol() && l.offsetRow == s.canvas.OffsetRow() {
		return
	}

	s.tooSmall = l.tooSmall
	s.canvas.Resize(l.width, l.height)
	s.canvas.SetOffset(l.offsetCol, l.offsetRow)
	s.chunkWriter.SetOffset(l.offsetCol, l.offsetRow)
	s.redraw()
}

// redraw clears the terminal and repaints everything on the next frame.
func (s *Session) redraw() {
	s.chunkWriter.ClearScreen()
	s.canvas.ForceRedraw()
	s.borderStale = true
	s.engine.Redraw()
}
