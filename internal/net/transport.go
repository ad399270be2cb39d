package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"DrawPad/internal/config"
	"DrawPad/internal/export"
	"DrawPad/internal/pad"
	"DrawPad/internal/state"
)

const writeWait = 10 * time.Second

// Session is one connected browser tab and the Pad it draws on.
type Session struct {
	ID   string
	Conn *websocket.Conn
	Pad  *pad.Pad

	cfg *config.Config
}

func (s *Session) send(msg ServerMessage) error {
	s.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.Conn.WriteJSON(msg)
}

func (s *Session) sendTools() {
	t := s.Pad.Tools()
	msg := &ToolsMessage{
		Mode:      "draw",
		Thickness: t.Thickness,
		Color:     state.Hex(t.Color),
		Stickers:  t.Stickers,
		Palette:   state.PaletteOrder,
		Thin:      s.cfg.Pen.Thin,
		Thick:     s.cfg.Pen.Thick,
		CanUndo:   t.CanUndo,
		CanRedo:   t.CanRedo,
	}
	if m, ok := t.Mode.(state.StickerMode); ok {
		msg.Mode = "sticker"
		msg.Glyph = m.Glyph
	}
	if err := s.send(ServerMessage{Type: "tools", Tools: msg}); err != nil {
		log.Printf("[WS] %s: send tools: %v", s.ID, err)
	}
}

func (s *Session) sendError(err error) {
	if err := s.send(ServerMessage{Type: "error", Error: err.Error()}); err != nil {
		log.Printf("[WS] %s: send error: %v", s.ID, err)
	}
}

// SessionManager tracks every open session.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

func (sm *SessionManager) Add(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[s.ID] = s
	log.Printf("[WS] session %s connected from %s", s.ID, s.Conn.RemoteAddr())
}

func (sm *SessionManager) Remove(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, s.ID)
	log.Printf("[WS] session %s closed", s.ID)
	pad.Logger().Debug("session closed", "session", s.ID, "pad", s.Pad)
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Server serves the drawing page at "/" and one Pad per websocket at "/ws".
type Server struct {
	Sessions *SessionManager

	cfg      *config.Config
	upgrader websocket.Upgrader
	mux      *http.ServeMux
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{
		Sessions: NewSessionManager(),
		cfg:      cfg,
		upgrader: websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.servePage)
	s.mux.HandleFunc("/ws", s.serveWS)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe runs until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("net: listen %s: %w", addr, err)
	}
	srv := &http.Server{Handler: s}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()
	log.Printf("[WEB] listening on %s", ln.Addr())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess, err := s.newSession(conn)
	if err != nil {
		log.Printf("[WS] create session: %v", err)
		return
	}
	s.Sessions.Add(sess)
	defer s.Sessions.Remove(sess)

	sess.sendTools()
	sess.Pad.Redraw()

	// Events are dispatched on this goroutine only, in arrival order.
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[WS] %s: read: %v", sess.ID, err)
			}
			return
		}
		ev, err := msg.Event()
		if err != nil {
			sess.sendError(err)
			continue
		}
		if err := sess.Pad.Dispatch(ev); err != nil {
			sess.sendError(err)
		}
	}
}

func (s *Server) newSession(conn *websocket.Conn) (*Session, error) {
	cfg := s.cfg
	sess := &Session{ID: uuid.NewString(), Conn: conn, cfg: cfg}

	screen := &RemoteRenderer{
		Target:      TargetScreen,
		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		Scale:       1,
		StickerSize: cfg.Canvas.StickerSize,
		send:        sess.send,
	}
	p, err := pad.New(screen, pad.Options{
		Thickness: cfg.Pen.Thin,
		Color:     cfg.Pen.Color,
		Stickers:  cfg.Stickers,
	})
	if err != nil {
		return nil, err
	}

	p.SetExporter(pad.FormatPNG, browserPNG{r: &RemoteRenderer{
		Target:      TargetExport,
		Width:       cfg.Canvas.Width,
		Height:      cfg.Canvas.Height,
		Scale:       cfg.Export.Scale,
		StickerSize: cfg.Canvas.StickerSize,
		Filename:    export.DefaultPNGFilename,
		send:        sess.send,
	}})

	size := fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height))
	pdf := export.NewPDF(size, export.SaverFunc(func(filename string, data []byte) error {
		return sess.send(ServerMessage{
			Type:     "download",
			Filename: filename,
			Mime:     "application/pdf",
			Data:     data,
		})
	}))
	pdf.StickerSize = cfg.Canvas.StickerSize
	p.SetExporter(pad.FormatPDF, pdf)

	p.OnToolsChanged = sess.sendTools
	sess.Pad = p
	return sess, nil
}
