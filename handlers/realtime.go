package handlers

import (
	"net/http"
	"time"

	"meal-planner-api/middleware"
	"meal-planner-api/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeHandler struct {
	hub      *services.RealtimeHub
	upgrader websocket.Upgrader
}

// NewRealtimeHandler accepts upgrades from any origin when allowed is empty.
func NewRealtimeHandler(hub *services.RealtimeHub, allowed []string) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				origin := r.Header.Get("Origin")
				for _, o := range allowed {
					if o == origin {
						return true
					}
				}
				return false
			},
		},
	}
}

// PlanUpdates streams plan.updated events for the caller
func (h *RealtimeHandler) PlanUpdates(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: middleware.GetUserID(c), Conn: conn}
	h.hub.Register(cl)

	// ping to keep connections alive through proxies
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				if err := cl.Write(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			close(done)
			h.hub.Unregister(cl)
			return
		}
	}
}
