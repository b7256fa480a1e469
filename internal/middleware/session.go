package middleware

import (
	"time"

	"question-paper/internal/logger"
	"question-paper/internal/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// SessionCookie carries the session id.
	SessionCookie = "paper_session"
	sessionLocal  = "paper_session"
)

// Session attaches the caller's session, starting one when the cookie is
// missing or unknown. After a state-changing request the workspace is
// written through to the session store.
func Session(manager *session.Manager, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, created := manager.GetOrCreate(c.UserContext(), c.Cookies(SessionCookie))
		if created {
			SetSessionCookie(c, s, ttl)
		}
		c.Locals(sessionLocal, s)

		err := c.Next()

		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			current := CurrentSession(c)
			if saveErr := manager.Save(c.UserContext(), current); saveErr != nil {
				logger.Get().Warn("Workspace not persisted",
					zap.String("session_id", current.ID),
					zap.Error(saveErr),
				)
			}
		}
		return err
	}
}

// SetSessionCookie points the browser at s and makes it the request's
// current session.
func SetSessionCookie(c *fiber.Ctx, s *session.Session, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    s.ID,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(sessionLocal, s)
}

// CurrentSession returns the session attached by Session.
func CurrentSession(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(sessionLocal).(*session.Session)
	return s
}
