package ws

import (
	"github.com/gorilla/websocket"
)

// wsConn adapts a gorilla connection to the room session's Conn. Writes are
// already serialized by the session's write loop, so no locking here.
type wsConn struct {
	conn *websocket.Conn
}

func (c *wsConn) WriteMessage(data []byte) error {
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}
