package realtime

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTopicNames(t *testing.T) {
	id := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	assert.Equal(t, "order:11111111-2222-3333-4444-555555555555", OrderTopic(id))
	assert.Equal(t, "customer:11111111-2222-3333-4444-555555555555", CustomerTopic(id))
}

func TestAuthorizeTopic(t *testing.T) {
	owned := uuid.New()
	customer := uuid.New()
	authorize := AuthorizeTopic(func(orderID, customerID uuid.UUID) bool {
		return orderID == owned && customerID == customer
	})

	// Admins may join anything.
	assert.True(t, authorize(utils.RoleAdmin, uuid.New(), OrderTopic(uuid.New())))
	assert.True(t, authorize(utils.RoleAdmin, uuid.New(), CustomerTopic(uuid.New())))

	// Customers only their own topics.
	assert.True(t, authorize(utils.RoleCustomer, customer, CustomerTopic(customer)))
	assert.True(t, authorize(utils.RoleCustomer, customer, OrderTopic(owned)))
	assert.False(t, authorize(utils.RoleCustomer, customer, CustomerTopic(uuid.New())))
	assert.False(t, authorize(utils.RoleCustomer, customer, OrderTopic(uuid.New())))
	assert.False(t, authorize(utils.RoleCustomer, customer, "order:not-a-uuid"))
	assert.False(t, authorize(utils.RoleCustomer, customer, "something:else"))
}

func dialTestHub(t *testing.T, hub *Hub, authorize TopicAuthorizer, role string, subject uuid.UUID) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", ServeWS(hub, authorize))
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	token, err := utils.GenerateRealtimeToken(role, subject)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubDeliversInPublishOrder(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hub := NewHub(zap.NewNop())
	go hub.Run()

	orderID := uuid.New()
	conn := dialTestHub(t, hub, func(string, uuid.UUID, string) bool { return true },
		utils.RoleAdmin, uuid.New())

	require.NoError(t, conn.WriteJSON(map[string]string{
		"action": "join",
		"topic":  OrderTopic(orderID),
	}))
	// Let the hub process the join before publishing.
	time.Sleep(100 * time.Millisecond)

	hub.Publish(OrderTopic(orderID), "order:status_changed", map[string]string{"status": "in-progress"})
	hub.Publish(OrderTopic(orderID), "order:status_changed", map[string]string{"status": "done"})

	var first, second Frame
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &first))
	_, raw, err = conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &second))

	assert.Equal(t, "order:status_changed", first.Event)
	assert.Equal(t, "in-progress", first.Data.(map[string]interface{})["status"])
	assert.Equal(t, "done", second.Data.(map[string]interface{})["status"])
}

func TestHubRefusesUnauthorizedJoinSilently(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hub := NewHub(zap.NewNop())
	go hub.Run()

	customerID := uuid.New()
	authorize := AuthorizeTopic(func(uuid.UUID, uuid.UUID) bool { return false })
	conn := dialTestHub(t, hub, authorize, utils.RoleCustomer, customerID)

	otherCustomer := uuid.New()
	require.NoError(t, conn.WriteJSON(map[string]string{
		"action": "join",
		"topic":  CustomerTopic(otherCustomer),
	}))
	time.Sleep(100 * time.Millisecond)

	hub.Publish(CustomerTopic(otherCustomer), "order:payment_updated", map[string]string{"secret": "yes"})

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err) // nothing delivered
}

func TestHubClientsOnlySeeTheirTopics(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hub := NewHub(zap.NewNop())
	go hub.Run()

	customerID := uuid.New()
	conn := dialTestHub(t, hub, func(string, uuid.UUID, string) bool { return true },
		utils.RoleCustomer, customerID)

	require.NoError(t, conn.WriteJSON(map[string]string{
		"action": "join",
		"topic":  CustomerTopic(customerID),
	}))
	time.Sleep(100 * time.Millisecond)

	// An event on an unrelated topic must not reach this client.
	hub.Publish(OrderTopic(uuid.New()), "order:status_changed", map[string]string{"status": "done"})
	hub.Publish(CustomerTopic(customerID), "order:payment_updated", map[string]string{"paid": "30"})

	var frame Frame
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &frame))
	assert.Equal(t, "order:payment_updated", frame.Event)
}

func TestServeWSRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hub := NewHub(zap.NewNop())
	go hub.Run()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", ServeWS(hub, func(string, uuid.UUID, string) bool { return true }))
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?token=bogus"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}
