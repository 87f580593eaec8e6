package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/harshG775/voting-poll-server/internal/errors"
)

// Envelope is the uniform success response shape.
type Envelope struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respond(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, Envelope{Message: message, Data: data})
}

func badRequest(c echo.Context, message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Message: message})
}

func fail(c echo.Context, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// validationMessage turns the first field violation into a human message
// matching the schema the frontend was written against.
func validationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Username":
		switch fe.Tag() {
		case "min":
			return "Username must be at least 3 characters long"
		case "max":
			return "Username must be at most 20 characters long"
		}
		return "Username is required"
	case "Email":
		return "Invalid email address"
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be at least 8 characters long"
		}
		return "Password is required"
	case "Title":
		return "Title is required"
	case "Options":
		return "Poll must have at least one option"
	case "Text":
		return "Option text is required"
	case "OptionID":
		return "Option id is required"
	}
	return fe.Error()
}
