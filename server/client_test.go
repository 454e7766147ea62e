package server

import (
	"testing"

	"github.com/alimasry/go-version-registry/registry"
)

func TestClient_SendMsgBufferFull(t *testing.T) {
	c := &Client{ID: 1, reg: registry.NewManager(), send: make(chan []byte, 1)}

	if !c.sendMsg(ServerMessage{Type: MsgOK, ID: "1"}) {
		t.Fatal("first reply should be queued")
	}
	if c.sendMsg(ServerMessage{Type: MsgOK, ID: "2"}) {
		t.Error("expected sendMsg to report a full buffer")
	}
	if c.sendError("3", CodeBadRequest, "x") {
		t.Error("expected sendError to report a full buffer")
	}
}
