package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/harshG775/voting-poll-server/internal/errors"
	"github.com/harshG775/voting-poll-server/internal/model"
	"github.com/harshG775/voting-poll-server/internal/repository"
)

const userContextKey = "currentUser"

// ResolveUser maps the signature-checked bearer token to a stored user and
// attaches it to the context. echo-jwt runs first and leaves the parsed token
// under "user"; the raw token string is what the credential store knows.
func ResolveUser(users repository.UserRepository, sessions *SessionCache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok || token.Raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Message: errors.ErrTokenMissing.Error(),
				})
			}

			ctx := c.Request().Context()
			if user := sessions.Get(ctx, token.Raw); user != nil {
				c.Set(userContextKey, user)
				return next(c)
			}

			user, err := users.FindBySessionToken(ctx, token.Raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Message: errors.ErrUserNotFound.Error(),
				})
			}

			sessions.Set(ctx, token.Raw, user)
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user attached by ResolveUser.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}
