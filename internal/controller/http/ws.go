package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
	"github.com/Vengatesh521/student-teacher-booking/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the browser client runs on its own origin
	},
}

// WatchAppointments handles GET /ws/appointments: the role-appropriate live
// appointment view as a stream of full snapshots.
func (h *Handler) WatchAppointments(c *gin.Context) {
	profile := currentProfile(c)

	var sub *realtime.Subscription[[]*model.Appointment]
	switch {
	case profile.IsAdmin():
		sub = h.appointments.WatchAll(c.Request.Context())
	case profile.IsTeacher():
		sub = h.appointments.WatchByTeacher(c.Request.Context(), profile.ID)
	default:
		sub = h.appointments.WatchByStudent(c.Request.Context(), profile.ID)
	}

	streamSnapshots(h, c, sub)
}

// WatchMessages handles GET /ws/messages/:peerID: the live conversation with
// one peer.
func (h *Handler) WatchMessages(c *gin.Context) {
	principal := currentProfile(c)
	sub := h.messages.Watch(c.Request.Context(), principal.ID, c.Param("peerID"))

	streamSnapshots(h, c, sub)
}

// WatchInbox handles GET /ws/inbox: the live stream of messages addressed to
// the caller.
func (h *Handler) WatchInbox(c *gin.Context) {
	principal := currentProfile(c)
	sub := h.messages.WatchInbox(c.Request.Context(), principal.ID)

	streamSnapshots(h, c, sub)
}

// WatchTeachers handles GET /ws/teachers: the live teacher directory.
func (h *Handler) WatchTeachers(c *gin.Context) {
	sub := h.directory.WatchTeachers(c.Request.Context())

	streamSnapshots(h, c, sub)
}

// streamSnapshots upgrades the connection and pushes every snapshot the
// subscription delivers. The subscription is closed as soon as the client
// goes away, so no listener outlives its connection.
func streamSnapshots[T any](h *Handler, c *gin.Context, sub *realtime.Subscription[T]) {
	defer sub.Close()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// Read pump: we expect no client messages, but reading is what notices
	// the peer closing the connection.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	for snapshot := range sub.Updates() {
		if err := conn.WriteJSON(snapshot); err != nil {
			return
		}
	}
}
