package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/alifsmart-team/alifsmart-analytics-service/internal/middleware"
	"github.com/alifsmart-team/alifsmart-analytics-service/internal/service"
	ws "github.com/alifsmart-team/alifsmart-analytics-service/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams viewport width signals into the session's observer.
type WSHandler struct {
	consoleService *service.ConsoleService
	log            zerolog.Logger
	upgrader       websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(consoleService *service.ConsoleService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		consoleService: consoleService,
		log:            log.With().Str("component", "ws_handler").Logger(),
		upgrader:       buildUpgrader(allowedOrigins),
	}
}

// ViewportStream godoc
// WS /ws/v1/console/viewport
// Upgrades to WebSocket and feeds resize signals into the viewport
// observer. Each signal is answered with the resulting layout mode, so
// the client learns exactly when the compact threshold is crossed.
func (h *WSHandler) ViewportStream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	adminID := claims.AdminID

	wsLog := h.log.With().Int("admin_id", adminID).Logger()
	wsLog.Info().Msg("Viewport stream connected")

	for {
		var msg ws.ResizeRequest
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			break
		}

		switch msg.Action {
		case ws.ActionResize:
			h.handleResize(conn, wsLog, adminID, &msg)
		case ws.ActionPing:
			ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
		default:
			wsLog.Warn().Str("action", string(msg.Action)).Msg("Unknown action")
			ws.WriteError(conn, "unknown action: "+string(msg.Action))
		}
	}
}

// handleResize applies one width signal and echoes the layout mode.
func (h *WSHandler) handleResize(conn *websocket.Conn, wsLog zerolog.Logger, adminID int, msg *ws.ResizeRequest) {
	if msg.Width <= 0 {
		ws.WriteError(conn, "width must be positive")
		return
	}

	compact, err := h.consoleService.ObserveViewport(adminID, msg.Width)
	if err != nil {
		wsLog.Warn().Err(err).Msg("Viewport signal before bootstrap")
		ws.WriteError(conn, "console session not bootstrapped")
		return
	}

	ws.WriteTyped(conn, ws.LayoutResponse{Event: ws.EventLayout, Compact: compact})
}
