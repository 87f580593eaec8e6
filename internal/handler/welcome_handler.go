package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0.0"

// Welcome godoc
// @Summary API welcome payload
// @Tags meta
// @Produce json
// @Success 200 {object} Envelope
// @Router / [get]
func Welcome(c echo.Context) error {
	return respond(c, http.StatusOK, "welcome to version "+apiVersion+" of the api", echo.Map{
		"version": apiVersion,
	})
}
