package http

import (
	"net/http"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// SessionHeader carries the session ID returned by Login.
	SessionHeader = "X-Session-Id"

	actorKey   = "actor"
	sessionKey = "session"
)

// SessionMiddleware resolves the X-Session-Id header to the acting user.
//
// A session that was replaced by a later login of its user answers 401
// FORCED_LOGOUT exactly once; afterwards, like any unknown session, it answers
// 401 NO_SESSION. Requests for which skipper reports true pass through
// without a session; a nil skipper checks every request.
func SessionMiddleware(
	registry ports.SessionRegistry,
	activity ports.SessionActivity,
	skipper middleware.Skipper,
) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = middleware.DefaultSkipper
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}
			ctx := c.Request().Context()
			sessionID := c.Request().Header.Get(SessionHeader)
			if sessionID == "" {
				return unauthorized(c, ReasonNoSession, "missing "+SessionHeader+" header")
			}

			forced, err := registry.RemoveLogoutTarget(ctx, sessionID)
			if err != nil {
				return storeUnavailable(err)
			}
			if forced {
				activity.Forget(sessionID)
				return unauthorized(c, ReasonForcedLogout, "session was replaced by a newer login")
			}

			userID, ok, err := registry.UserOf(ctx, sessionID)
			if err != nil {
				return storeUnavailable(err)
			}
			if !ok {
				// A login that replaced this session between the two reads
				// marks it after the first check; the mark is still reported.
				forced, err = registry.RemoveLogoutTarget(ctx, sessionID)
				if err != nil {
					return storeUnavailable(err)
				}
				if forced {
					activity.Forget(sessionID)
					return unauthorized(c, ReasonForcedLogout, "session was replaced by a newer login")
				}
				return unauthorized(c, ReasonNoSession, "session is not active")
			}

			activity.Touch(sessionID)
			c.Set(actorKey, kernel.Actor(userID))
			c.Set(sessionKey, sessionID)
			return next(c)
		}
	}
}

func storeUnavailable(err error) error {
	return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable").SetInternal(err)
}

func actorOf(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorKey).(kernel.Actor)
	return actor
}

func sessionOf(c echo.Context) string {
	sessionID, _ := c.Get(sessionKey).(string)
	return sessionID
}
