package http

import (
	"encoding/json"
	"log"
	"net/http"

	chatdto "anoa.com/binbeacon/internal/modules/chat/dto"
	"anoa.com/binbeacon/internal/modules/chat/service"
	"anoa.com/binbeacon/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

// ChatSocketHandler owns the websocket side of chat. Every connected client
// subscribes to the shared redis channel and receives the frames addressed to
// it; inbound frames are persisted through the chat service, which publishes
// them back out.
type ChatSocketHandler struct {
	service     service.ChatService
	redisClient *redis.Client
	upgrader    websocket.Upgrader
}

func NewChatSocketHandler(service service.ChatService, redisClient *redis.Client) *ChatSocketHandler {
	return &ChatSocketHandler{
		service:     service,
		redisClient: redisClient,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *ChatSocketHandler) HandleWebSocket(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("failed to upgrade websocket: %v", err)
		return
	}
	defer conn.Close()

	if h.redisClient == nil {
		log.Println("redis client is nil, chat socket unavailable")
		return
	}

	pubsub := h.redisClient.Subscribe(c.Request.Context(), service.ChatChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(c.Request.Context()); err != nil {
		log.Printf("failed to subscribe to redis channel: %v", err)
		return
	}

	ch := pubsub.Channel()

	clientClosed := make(chan struct{})

	// Reader: each inbound frame is a message to send. The service persists
	// and publishes it, so it comes back through the subscription below.
	go func() {
		defer close(clientClosed)
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var input chatdto.SendChatInput
			if err := json.Unmarshal(raw, &input); err != nil {
				log.Printf("dropping malformed chat frame: %v", err)
				continue
			}
			input.SenderID = userID.String()

			if _, err := h.service.Send(c.Request.Context(), input); err != nil {
				log.Printf("failed to send chat message: %v", err)
			}
		}
	}()

	for {
		select {
		case msg := <-ch:
			var event chatdto.ChatEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil || event.Chat == nil {
				continue
			}
			if !h.addressedTo(userID.String(), &event) {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Printf("failed to write chat frame: %v", err)
				return
			}
		case <-clientClosed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

// addressedTo reports whether a fanned-out chat frame should reach this
// client: group messages reach everyone, private ones only the two parties.
func (h *ChatSocketHandler) addressedTo(userID string, event *chatdto.ChatEvent) bool {
	if event.Chat.Group != "" {
		return true
	}
	if event.Chat.SenderID.String() == userID {
		return true
	}
	return event.Chat.ReceiverID != nil && event.Chat.ReceiverID.String() == userID
}
