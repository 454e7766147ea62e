package server

import (
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/alimasry/go-version-registry/registry"
	"github.com/alimasry/go-version-registry/version"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 64 * 1024
)

var clientSeq atomic.Uint64

// Client represents a single WebSocket connection. Requests are handled
// one at a time in arrival order. A client that stops reading replies
// until the send buffer fills is disconnected.
type Client struct {
	ID uint64

	reg  registry.Registry
	conn *websocket.Conn
	send chan []byte
}

func newClient(reg registry.Registry, conn *websocket.Conn) *Client {
	return &Client{
		ID:   clientSeq.Add(1),
		reg:  reg,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// ReadPump reads requests from the WebSocket and answers them.
func (c *Client) ReadPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client %d read error: %v", c.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if !c.sendError("", CodeBadRequest, "invalid message format") {
				return
			}
			continue
		}
		if !c.sendMsg(c.handle(msg)) {
			return
		}
	}
}

// handle applies one request to the registry and builds the reply.
func (c *Client) handle(msg ClientMessage) ServerMessage {
	switch msg.Type {
	case MsgAddFile:
		if msg.File == "" {
			return errorMsg(msg.ID, CodeBadRequest, "file is required")
		}
		if err := c.reg.AddFile(msg.File); err != nil {
			return registryError(msg.ID, err)
		}
		return ServerMessage{Type: MsgOK, ID: msg.ID}

	case MsgAddVersion:
		st, err := version.ParseState(msg.State)
		if err != nil {
			return errorMsg(msg.ID, CodeBadRequest, err.Error())
		}
		if msg.File == "" {
			err = c.reg.AddVersionToLastFile(msg.Number, st, msg.Date, msg.Label, msg.Content)
		} else {
			err = c.reg.AddVersionByFileName(msg.File, msg.Number, st, msg.Date, msg.Content)
		}
		if err != nil {
			return registryError(msg.ID, err)
		}
		return ServerMessage{Type: MsgOK, ID: msg.ID}

	case MsgByDate:
		if msg.Date == "" {
			return errorMsg(msg.ID, CodeBadRequest, "date is required")
		}
		return result(msg.ID, c.reg.BuildConfigurationByDate(msg.Date))

	case MsgByVersion:
		return result(msg.ID, c.reg.BuildConfigurationByVersion(msg.Number))

	case MsgByState:
		st, err := version.ParseState(msg.State)
		if err != nil {
			return errorMsg(msg.ID, CodeBadRequest, err.Error())
		}
		return result(msg.ID, c.reg.BuildConfigurationByState(st))

	case MsgFiles:
		return ServerMessage{Type: MsgResult, ID: msg.ID, Files: c.reg.Files()}

	default:
		return errorMsg(msg.ID, CodeBadRequest, "unknown message type: "+msg.Type)
	}
}

func result(id string, vs []version.Version) ServerMessage {
	return ServerMessage{Type: MsgResult, ID: id, Versions: versionInfos(vs)}
}

func registryError(id string, err error) ServerMessage {
	code := CodeBadRequest
	switch {
	case errors.Is(err, registry.ErrFileExists):
		code = CodeExists
	case errors.Is(err, registry.ErrFileNotFound):
		code = CodeNotFound
	case errors.Is(err, registry.ErrEmptyRegistry):
		code = CodeEmpty
	}
	return errorMsg(id, code, err.Error())
}

func errorMsg(id, code, message string) ServerMessage {
	return ServerMessage{Type: MsgError, ID: id, Code: code, Message: message}
}

// WritePump writes messages from the send channel to the WebSocket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// sendMsg queues a reply. It reports false when the send buffer is full.
func (c *Client) sendMsg(msg ServerMessage) bool {
	select {
	case c.send <- msg.Encode():
		return true
	default:
		log.Printf("client %d: send buffer full, closing connection", c.ID)
		return false
	}
}

func (c *Client) sendError(id, code, message string) bool {
	return c.sendMsg(errorMsg(id, code, message))
}
