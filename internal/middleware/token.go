package middleware

import (
	contextPkg "ElectionAssistant/pkg/context"
	"ElectionAssistant/pkg/handlerUtil"
	jwtPkg "ElectionAssistant/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

type tokenMiddleware struct {
	secretEnvKey string
}

func newTokenMiddleware(secretEnvKey string) *tokenMiddleware {
	return &tokenMiddleware{secretEnvKey: secretEnvKey}
}

// NewTokenMiddleware admits requests bearing a chat session token and stores
// the session on the context for handlers.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	requestID := m.GetRequestID(ctx)
	errHandler := handlerUtil.New(m.log)

	token, err := jwtPkg.VerifyTokenHeader(ctx, m.token.secretEnvKey)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"client_ip":  ctx.IP(),
			"error":      err.Error(),
		}).Warn("Token verification failed")
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized, session token invalid or expired")
	}

	session, err := jwtPkg.SessionFromToken(token)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Token claims check")
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized, session token invalid or expired")
	}

	ctx.Locals(jwtPkg.SessionLocalsKey, session)
	ctx.Locals(contextPkg.SessionIDKey, session.ID)

	m.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": session.ID,
	}).Debug("Session token accepted")

	return ctx.Next()
}
