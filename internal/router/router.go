package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/harshG775/voting-poll-server/internal/auth"
	"github.com/harshG775/voting-poll-server/internal/config"
	"github.com/harshG775/voting-poll-server/internal/errors"
	"github.com/harshG775/voting-poll-server/internal/handler"
	"github.com/harshG775/voting-poll-server/internal/repository"
)

// bodyLimit caps request bodies at the boundary.
const bodyLimit = "16K"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	pollHandler *handler.PollHandler,
	userRepo repository.UserRepository,
	sessions *auth.SessionCache,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.GET("/v1", handler.Welcome)

	v1 := api.Group("/v1")

	// Public routes
	v1.POST("/users/register", userHandler.Register)
	v1.POST("/users/login", userHandler.Login)
	v1.GET("/users/session", userHandler.Session)

	// Secured routes: echo-jwt checks the bearer token signature, then the
	// resolver matches the raw token against the credential store.
	polls := v1.Group("/polls",
		echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.JWTSecret),
			ErrorHandler: func(c echo.Context, err error) error {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Message: "Authorization header missing or invalid",
				})
			},
		}),
		auth.ResolveUser(userRepo, sessions),
	)

	polls.POST("", pollHandler.Create)
	polls.GET("", pollHandler.List)
	polls.GET("/:pollId", pollHandler.Get)
	polls.DELETE("/:pollId", pollHandler.Delete)
	polls.POST("/:pollId/vote", pollHandler.Vote)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
