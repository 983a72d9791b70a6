package partyHandler

import (
	"ElectionAssistant/internal/api/party"
	contextPkg "ElectionAssistant/pkg/context"
	"ElectionAssistant/pkg/handlerUtil"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *PartyHandler) GetParties(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	res, err := h.partyService.GetParties(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_parties")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *PartyHandler) GetParty(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	req := party.GetPartyRequest{ShortName: ctx.Params("short_name")}
	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	res, err := h.partyService.GetParty(c, req.ShortName)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_party")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
