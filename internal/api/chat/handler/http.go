package chatHandler

import (
	chatService "ElectionAssistant/internal/api/chat/service"
	"ElectionAssistant/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")

	chat.Post("/sessions", h.middleware.NewRateLimiter, h.StartSession)
	chat.Post("/messages", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.SendMessage)
	chat.Post("/voice", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.SendVoice)
	chat.Get("/history", h.middleware.NewTokenMiddleware, h.GetHistory)
	chat.Delete("/history", h.middleware.NewTokenMiddleware, h.ClearHistory)
	chat.Get("/suggestions", h.middleware.NewRateLimiter, h.GetSuggestions)

	// Browsers cannot set headers on a websocket handshake, so the token rides in the query.
	chat.Get("/ws", h.UpgradeWebsocket, websocket.New(h.HandleWebsocket))

	srv.Post("/nlp/analyze", h.middleware.NewRateLimiter, h.Analyze)
}
