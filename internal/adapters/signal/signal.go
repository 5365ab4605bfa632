// Package signal is the WebSocket adapter: it upgrades HTTP requests,
// owns the per-connection read/write pumps and hands raw frames to the
// dispatcher. The dispatcher never touches the socket directly.
package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/avoran/meethub/internal/app"
	"github.com/avoran/meethub/internal/config"
	"github.com/avoran/meethub/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

type SignalWSController struct {
	Dispatch *app.Dispatcher

	cfg     *config.Config
	limiter *FrameRateLimiter
}

func NewSignalWSController(cfg *config.Config, dispatch *app.Dispatcher) *SignalWSController {
	var limiter *FrameRateLimiter
	if cfg.FrameRate > 0 {
		limiter = NewFrameRateLimiter(cfg.FrameRate, cfg.FrameRateWindow)
	}
	return &SignalWSController{
		Dispatch: dispatch,
		cfg:      cfg,
		limiter:  limiter,
	}
}

type WsSignalConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *WsSignalConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *WsSignalConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (ctl *SignalWSController) HandleSignal(ctx context.Context, c *gin.Context) {
	// The client token identifies the browser; each socket gets its own
	// connection id so two tabs never share a registry binding.
	cid := core.ConnID(uuid.NewString())
	log.Info().Str("module", "signal").Str("conn", string(cid)).Str("client", c.GetString("client_token")).Msg("new WS connection")

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade")
		return
	}
	ws.SetReadLimit(ctl.cfg.ReadLimit)

	conn := &WsSignalConn{
		conn: ws,
		send: make(chan core.Frame, ctl.cfg.SendBuffer),
	}

	ctl.Dispatch.HandleOpen(cid, conn)

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		defer cancel()
		ctl.readPump(ctx, cid, conn)
	}()
	go ctl.writePump(ctx, cid, conn)
}
