package realtime

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderTopic names the broadcast channel for one order.
func OrderTopic(orderID uuid.UUID) string {
	return fmt.Sprintf("order:%s", orderID)
}

// CustomerTopic names the broadcast channel for one customer.
func CustomerTopic(customerID uuid.UUID) string {
	return fmt.Sprintf("customer:%s", customerID)
}

// Frame is the wire shape of every server-initiated message.
type Frame struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type publication struct {
	topic string
	data  []byte
}

type subscription struct {
	client *Client
	topic  string
}

// Hub is a single-broadcaster topic fan-out. One goroutine owns all room
// state, so events published to a topic reach its current subscribers in
// publish order. There is no persistence or replay: a client that joins
// after an event misses it.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	subscribe  chan subscription
	publish    chan publication
	clients    map[*Client]bool
	rooms      map[string]map[*Client]bool
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		subscribe:  make(chan subscription),
		publish:    make(chan publication, 256),
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
			}

		case sub := <-h.subscribe:
			if _, ok := h.clients[sub.client]; !ok {
				continue
			}
			room, ok := h.rooms[sub.topic]
			if !ok {
				room = make(map[*Client]bool)
				h.rooms[sub.topic] = room
			}
			room[sub.client] = true

		case pub := <-h.publish:
			for client := range h.rooms[pub.topic] {
				select {
				case client.send <- pub.data:
				default:
					// Slow consumer; delivery is best effort.
					h.drop(client)
				}
			}
		}
	}
}

// Publish fans one event out to a topic's subscribers. It never blocks the
// caller and never reports failure: the mutation it announces has already
// committed.
func (h *Hub) Publish(topic, event string, payload interface{}) {
	data, err := json.Marshal(Frame{Event: event, Data: payload})
	if err != nil {
		h.logger.Error("failed to encode event",
			zap.String("topic", topic), zap.String("event", event), zap.Error(err))
		return
	}
	select {
	case h.publish <- publication{topic: topic, data: data}:
	default:
		h.logger.Warn("publish queue full, event dropped",
			zap.String("topic", topic), zap.String("event", event))
	}
}

// drop is called from the Run goroutine only.
func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	for _, room := range h.rooms {
		delete(room, client)
	}
	close(client.send)
}
