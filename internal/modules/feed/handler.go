package feed

import (
	"log"
	"net/http"

	jwtsvc "github.com/Userdead-19/labs-cse/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer for the REST surface; the feed
	// carries no mutations, so any origin may subscribe.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{
		hub: hub,
		jwt: jwt,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws/feed", h.HandleFeed)
}

// HandleFeed upgrades GET /ws/feed?token=JWT to a websocket and streams
// booking events until the client goes away. Browsers cannot set headers on
// websocket dials, hence the query-parameter token.
func (h *Handler) HandleFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   gin.H{"code": "UNAUTHORIZED", "message": "Token is required. Use ?token=YOUR_JWT_TOKEN"},
		})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   gin.H{"code": "UNAUTHORIZED", "message": "Invalid token"},
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("feed: upgrade failed for user %d: %v", claims.UserID, err)
		return
	}

	h.hub.Register(claims.UserID, conn)

	// Drain reads so pings/close frames are processed; unregister on error.
	go func() {
		defer h.hub.Unregister(claims.UserID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
