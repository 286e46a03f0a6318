package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/room"
)

// maxMessageSize bounds inbound frames. Client messages are small JSON
// objects; anything bigger is not ours.
const maxMessageSize = 4096

// Handler upgrades game connections and pumps inbound frames into the
// room actor. All game semantics live in the room package; this layer only
// moves bytes.
type Handler struct {
	manager  *room.Manager
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket handler backed by the room manager
func NewHandler(manager *room.Manager, logger *slog.Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger.With(slog.String("component", "ws")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Game clients connect from arbitrary origins; auth happens at
			// the protocol level, not the transport level
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// HandleGame is the /ws/{code} endpoint
func (h *Handler) HandleGame(w http.ResponseWriter, r *http.Request) {
	code := model.NormalizeRoomCode(mux.Vars(r)["code"])

	rm, err := h.manager.GetOrCreate(code)
	if err != nil {
		http.Error(w, "invalid room code", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.logger.Warn("websocket upgrade failed",
			slog.String("room", string(code)),
			slog.String("error", err.Error()),
		)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	sess := room.NewSession(&wsConn{conn: conn}, h.logger)
	h.logger.Info("connection opened", slog.String("room", string(code)))

	h.readPump(rm, sess, conn)
}

// readPump forwards frames until the connection drops, then reports the
// disconnect to the room
func (h *Handler) readPump(rm *room.Room, sess *room.Session, conn *websocket.Conn) {
	defer rm.Disconnect(sess)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("connection closed unexpectedly",
					slog.String("room", string(rm.Code())),
					slog.String("error", err.Error()),
				)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		rm.Deliver(sess, data)
	}
}
