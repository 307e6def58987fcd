package realtime

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 32
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Same-origin pages and the configured front ends; CORS already
		// gates the token endpoint.
		return true
	},
}

// TopicAuthorizer decides whether a principal may subscribe to a topic.
type TopicAuthorizer func(role string, subject uuid.UUID, topic string) bool

// AuthorizeTopic is the default subscription policy: admins may join any
// topic, a customer only their own customer topic or an order topic for an
// order they own (checked through ownsOrder).
func AuthorizeTopic(ownsOrder func(orderID, customerID uuid.UUID) bool) TopicAuthorizer {
	return func(role string, subject uuid.UUID, topic string) bool {
		if role == utils.RoleAdmin {
			return true
		}
		if topic == CustomerTopic(subject) {
			return true
		}
		if raw, ok := strings.CutPrefix(topic, "order:"); ok {
			orderID, err := uuid.Parse(raw)
			if err != nil {
				return false
			}
			return ownsOrder(orderID, subject)
		}
		return false
	}
}

// clientMessage is the only client-initiated message: join a topic.
type clientMessage struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	role      string
	subject   uuid.UUID
	authorize TopicAuthorizer
}

// ServeWS upgrades the connection after validating the realtime token from
// the query string.
func ServeWS(hub *Hub, authorize TopicAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, subject, err := utils.ParseRealtimeToken(c.Query("token"))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			zap.L().Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		client := &Client{
			hub:       hub,
			conn:      conn,
			send:      make(chan []byte, sendBuffer),
			role:      role,
			subject:   subject,
			authorize: authorize,
		}
		hub.register <- client

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Action != "join" || msg.Topic == "" {
			continue
		}
		// Unauthorized joins are refused silently: the client just never
		// receives events for that topic.
		if !c.authorize(c.role, c.subject, msg.Topic) {
			continue
		}
		c.hub.subscribe <- subscription{client: c, topic: msg.Topic}
	}
}

func (c *Client) writePump() {
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
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
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
