package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	statsInterval = 2 * time.Second
	writeTimeout  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// @Summary	Open websocket for realtime status information
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		// Upgrade already replied with an error status
		a.log.Warn(fmt.Sprintf("couldn't make websocket: %s", err))
		return
	}
	defer func(ws *websocket.Conn) {
		_ = ws.Close()
	}(ws)

	a.addClient(ws)
	defer a.removeClient(ws)

	go a.websocketWriter(ws)

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}
		a.log.Debug("websocket message ignored", "msg", string(msg))
	}
}

func (a *Api) addClient(ws *websocket.Conn) {
	a.wsClientsMu.Lock()
	defer a.wsClientsMu.Unlock()
	a.wsClients[ws] = true
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) removeClient(ws *websocket.Conn) {
	a.wsClientsMu.Lock()
	defer a.wsClientsMu.Unlock()
	delete(a.wsClients, ws)
	a.Stats.SetWsClients(len(a.wsClients))
}

func (a *Api) websocketWriter(ws *websocket.Conn) {
	ticker := time.NewTicker(statsInterval)
	defer func() {
		ticker.Stop()
		_ = ws.Close()
	}()

	// first packet straight away, then one per tick
	for {
		packet, err := json.Marshal(a.Stats.Snapshot())
		if err != nil {
			return
		}
		err = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err != nil {
			a.log.Warn(fmt.Sprintf("could not set write deadline: %s", err))
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}

		select {
		case <-ticker.C:
		case <-a.done:
			return
		}
	}
}
