package partyHandler

import (
	partyService "ElectionAssistant/internal/api/party/service"
	"ElectionAssistant/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PartyHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	partyService partyService.IPartyService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps partyService.IPartyService,
) *PartyHandler {
	return &PartyHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		partyService: ps,
	}
}

func (h *PartyHandler) Start(srv fiber.Router) {
	srv.Get("/parties", h.GetParties)
	srv.Get("/parties/:short_name", h.GetParty)
}
