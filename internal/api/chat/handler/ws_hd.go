package chatHandler

import (
	"ElectionAssistant/internal/api/chat"
	"ElectionAssistant/internal/middleware"
	contextPkg "ElectionAssistant/pkg/context"
	"ElectionAssistant/pkg/handlerUtil"
	jwtPkg "ElectionAssistant/pkg/jwt"
	"ElectionAssistant/pkg/log"
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

const maxWebsocketMessage = 500

func (h *ChatHandler) UpgradeWebsocket(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	token, err := jwtPkg.VerifyToken(ctx.Query("token"), middleware.AccessTokenSecret)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized, session token invalid or expired")
	}

	session, err := jwtPkg.SessionFromToken(token)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized, session token invalid or expired")
	}

	ctx.Locals(contextPkg.SessionIDKey, session.ID)
	ctx.Locals(contextPkg.RequestIDKey, requestID)

	return ctx.Next()
}

// HandleWebsocket treats every text frame as a user message and answers with
// the bot message. The connection stays open across bad frames.
func (h *ChatHandler) HandleWebsocket(conn *websocket.Conn) {
	sessionID, _ := conn.Locals(contextPkg.SessionIDKey).(string)
	requestID, _ := conn.Locals(contextPkg.RequestIDKey).(string)

	logger := h.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
	})
	logger.Info("Websocket chat connected")

	defer func() {
		_ = conn.Close()
		logger.Info("Websocket chat disconnected")
	}()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WithField("error", err.Error()).Warn("Websocket closed unexpectedly")
			}
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		reply := h.answerFrame(requestID, sessionID, string(payload))
		if err := conn.WriteJSON(reply); err != nil {
			logger.WithField("error", err.Error()).Warn("Failed to write websocket reply")
			return
		}
	}
}

func (h *ChatHandler) answerFrame(requestID, sessionID, text string) chat.WSMessage {
	if strings.TrimSpace(text) == "" {
		return chat.WSMessage{Type: chat.WSTypeError, Error: "message text is required"}
	}
	if utf8.RuneCountInString(text) > maxWebsocketMessage {
		return chat.WSMessage{Type: chat.WSTypeError, Error: "message text is too long"}
	}

	ctx := contextPkg.WithSessionID(contextPkg.WithRequestID(context.Background(), requestID), sessionID)
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := h.chatService.SendMessage(ctx, sessionID, chat.SendMessageRequest{Text: text})
	if err != nil {
		log.WithRequestID(ctx).WithFields(log.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Websocket message failed")
		return chat.WSMessage{Type: chat.WSTypeError, Error: err.Error()}
	}

	return chat.WSMessage{Type: chat.WSTypeMessage, Message: &res.BotMessage}
}
