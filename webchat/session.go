package main

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VadWill/Pepe/assistant"
)

type WebSocketsMessage struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// handleChat runs one chat session over a websocket connection. Each
// connection owns its own Order, so concurrent browser clients never share
// state. Exit keywords end the session here, before classification.
func (s *Server) handleChat(ctx *gin.Context) {
	c, err := s.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		slog.Error("failed to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	session := uuid.NewString()
	order := assistant.NewOrder()
	slog.Info("chat session started", "session", session)

	if err := c.WriteJSON(WebSocketsMessage{
		Type: "greeting",
		Data: assistant.Greeting + "\n\n" + assistant.HelpMessage,
	}); err != nil {
		slog.Error("failed to write to ws connection", "session", session, "error", err)
		return
	}

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			break
		}

		input := strings.TrimSpace(string(raw))
		if input == "" {
			continue
		}

		if assistant.IsExitWord(input) {
			if err := c.WriteJSON(WebSocketsMessage{Type: "goodbye", Data: assistant.Farewell}); err != nil {
				slog.Error("failed to write to ws connection", "session", session, "error", err)
			}
			break
		}

		response := s.assistant.Respond(input, order)
		if err := c.WriteJSON(WebSocketsMessage{Type: "chat", Data: response}); err != nil {
			slog.Error("failed to write to ws connection", "session", session, "error", err)
			break
		}
	}

	slog.Info("chat session closed", "session", session, "items_ordered", order.Len())
}
