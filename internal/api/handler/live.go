package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mcoot/connectfour-go/internal/api/apierr"
	"github.com/mcoot/connectfour-go/internal/api/request"
	"github.com/mcoot/connectfour-go/internal/live"
	"github.com/mcoot/connectfour-go/internal/model"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong from the peer
	pongWait = 60 * time.Second

	// Send pings at this period; must be less than pongWait
	pingPeriod = 30 * time.Second

	// Largest message accepted from a client
	maxMessageSize = 1024
)

// Live client message types
const (
	LiveMessageMove  = "move"
	LiveMessageState = "state"
)

// LiveHandler serves websocket connections for live play
type LiveHandler struct {
	games      *GameHandler
	hubManager *live.HubManager
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

// NewLiveHandler creates a new live play handler
func NewLiveHandler(games *GameHandler, hubManager *live.HubManager, logger *slog.Logger) *LiveHandler {
	return &LiveHandler{
		games:      games,
		hubManager: hubManager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger.With(slog.String("component", "live-handler")),
	}
}

// liveConn serialises writes to a websocket connection
type liveConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *liveConn) write(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(messageType, data)
}

func (c *liveConn) writeEvent(event live.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return c.write(websocket.TextMessage, data)
}

// Serve handles GET /api/v1/games/{id}/live
func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.games.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an error response
		h.logger.Warn("websocket upgrade failed",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
		return
	}
	lc := &liveConn{conn: conn}
	defer conn.Close()

	client := live.NewClient(r.RemoteAddr)
	hub := h.hubManager.Subscribe(id, client)

	h.logger.Info("live client connected",
		slog.String("game_id", string(id)),
		slog.String("remote", r.RemoteAddr),
	)

	if err := lc.writeEvent(live.StateEvent(g)); err != nil {
		hub.Unregister(client)
		return
	}

	done := make(chan struct{})
	go h.writePump(lc, client, done)

	h.readPump(r, lc, id)

	close(done)
	hub.Unregister(client)

	h.logger.Info("live client disconnected",
		slog.String("game_id", string(id)),
		slog.String("remote", r.RemoteAddr),
	)
}

// writePump forwards hub messages to the connection and keeps it alive
func (h *LiveHandler) writePump(lc *liveConn, client *live.Client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-client.Messages():
			if !ok {
				// Hub closed
				_ = lc.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				_ = lc.conn.Close()
				return
			}
			if err := lc.write(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := lc.write(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// readPump applies client messages until the connection closes
func (h *LiveHandler) readPump(r *http.Request, lc *liveConn, id model.GameID) {
	conn := lc.conn
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg request.LiveMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Warn("live read failed",
					slog.String("game_id", string(id)),
					slog.String("error", err.Error()),
				)
			}
			return
		}

		var event *live.Event
		switch msg.Type {
		case LiveMessageMove:
			event = h.applyMove(r, id, msg)
		case LiveMessageState:
			g, err := h.games.gameController.GetGame(r.Context(), id)
			if err != nil {
				e := live.ErrorEvent(apierr.Describe(err).Message)
				event = &e
			} else {
				e := live.StateEvent(g)
				event = &e
			}
		default:
			e := live.ErrorEvent("unknown message type")
			event = &e
		}

		if event != nil {
			if err := lc.writeEvent(*event); err != nil {
				return
			}
		}
	}
}

// applyMove plays a client's move. Successful moves reach the client via the
// hub, so only refusals produce a direct reply.
func (h *LiveHandler) applyMove(r *http.Request, id model.GameID, msg request.LiveMessage) *live.Event {
	if msg.Column == nil {
		e := live.ErrorEvent("column is required")
		return &e
	}
	checker, err := request.ParseOptionalChecker(msg.Checker)
	if err == nil {
		_, _, err = h.games.PlayHumanMove(r.Context(), id, checker, *msg.Column)
	}
	if err != nil {
		e := live.ErrorEvent(apierr.Describe(err).Message)
		return &e
	}
	return nil
}
