package availability

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"campusfm/internal/pkg/response"
)

type Handler struct {
	service *Service
	monitor *Monitor
	hub     *Hub
	upgrade websocket.Upgrader
}

func NewHandler(service *Service, monitor *Monitor, hub *Hub) *Handler {
	return &Handler{
		service: service,
		monitor: monitor,
		hub:     hub,
		upgrade: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.TodayStatus)
	rg.POST("/availability/refresh", h.Refresh)
	rg.GET("/availability/search", h.Search)
	rg.GET("/availability/ws", h.Feed)
}

func (h *Handler) TodayStatus(c *gin.Context) {
	if snap := h.monitor.Latest(); snap != nil {
		response.Success(c, http.StatusOK, snap)
		return
	}

	// No published snapshot yet; compute one on demand.
	snap, err := h.monitor.Refresh(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "FETCH_FAILED", "Failed to load rooms or schedules")
		return
	}
	response.Success(c, http.StatusOK, snap)
}

func (h *Handler) Refresh(c *gin.Context) {
	snap, err := h.monitor.Refresh(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "FETCH_FAILED", "Failed to load rooms or schedules")
		return
	}
	response.Success(c, http.StatusOK, snap)
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid search parameters")
		return
	}

	rooms, err := h.service.Search(c.Request.Context(), req.Day, req.Start, req.End)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid day or time window")
		default:
			response.Error(c, http.StatusBadGateway, "FETCH_FAILED", "Failed to load rooms or schedules")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) Feed(c *gin.Context) {
	conn, err := h.upgrade.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(conn)

	// The greeting goes through the hub so it cannot overlap a broadcast
	// already writing to this connection.
	if snap := h.monitor.Latest(); snap != nil {
		if err := h.hub.Send(conn, snap); err != nil {
			h.hub.Unregister(conn)
			return
		}
	}

	// Reader loop only to detect close; clients never send data.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(conn)
				return
			}
		}
	}()

	log.Printf("availability_feed_connected clients=%d", h.hub.ClientCount())
}
