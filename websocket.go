package pom

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// GorillaConn is a cdp transport over gorilla/websocket, it implements cdp.WebSocketable
type GorillaConn struct {
	lock  sync.Mutex
	close func()
	conn  *websocket.Conn
}

// DialGorilla connects to the websocket url of a browser
func DialGorilla(ctx context.Context, url string, header http.Header) (*GorillaConn, error) {
	ctx, cancel := context.WithCancel(ctx)
	dialer := *websocket.DefaultDialer
	dialer.WriteBufferSize = 1024 * 1024

	conn, _, err := dialer.DialContext(ctx, url, header)
	if err != nil {
		cancel()
		return nil, err
	}

	// the ctx is ignored by the conn once it's established
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	return &GorillaConn{close: cancel, conn: conn}, nil
}

// Send a text message
func (c *GorillaConn) Send(data []byte) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	err := c.conn.WriteMessage(websocket.TextMessage, data)
	c.checkClose(err)
	return err
}

// Read the next text message, other message types are skipped
func (c *GorillaConn) Read() (data []byte, err error) {
	msgType := -1
	for msgType != websocket.TextMessage && err == nil {
		msgType, data, err = c.conn.ReadMessage()
		c.checkClose(err)
	}
	return
}

// Close the connection
func (c *GorillaConn) Close() {
	c.close()
}

func (c *GorillaConn) checkClose(err error) {
	if err != nil {
		c.close()
	}
}
