package controllers

import (
	"net/http"
	"time"

	"backend/logger"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ChatController struct {
	Gemini  *services.GeminiService
	History *services.HistoryService
	Hub     *services.ChatHub
}

func NewChatController(gemini *services.GeminiService, history *services.HistoryService, hub *services.ChatHub) *ChatController {
	return &ChatController{Gemini: gemini, History: history, Hub: hub}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat answers one message with today's rollup as context. The reply is
// always 200; model trouble comes back as a friendly apology.
func (cc *ChatController) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": cc.Gemini.ChatResponse(req.Message, cc.todayContext(c))})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// ChatWS is the live variant: each text frame is a user message, each
// reply a JSON frame. The socket also receives hub broadcasts (meal-saved
// alerts).
func (cc *ChatController) ChatWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.ChatClient{Conn: conn}
	cc.Hub.Register(cl)

	// keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				cc.Hub.Unregister(cl)
				return
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			cc.Hub.Unregister(cl)
			return
		}
		reply := cc.Gemini.ChatResponse(string(msg), cc.todayContext(c))
		if err := conn.WriteJSON(gin.H{"type": "chat", "reply": reply}); err != nil {
			cc.Hub.Unregister(cl)
			return
		}
	}
}

func (cc *ChatController) todayContext(c *gin.Context) any {
	sum, err := cc.History.TodaySummary(c.Request.Context())
	if err != nil {
		logger.Warn("failed to load today's summary for chat context", "err", err)
		return nil
	}
	if sum == nil {
		return nil
	}
	return sum
}
