package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/alimasry/go-version-registry/registry"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewHandler creates the HTTP handler serving reg over /ws.
func NewHandler(reg registry.Registry) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("websocket upgrade error: %v", err)
			return
		}
		client := newClient(reg, conn)
		go client.WritePump()
		go client.ReadPump()
	})

	return mux
}
