package handlers

import (
	"github.com/labstack/echo/v4"
)

// Envelope is the response wrapper every endpoint uses.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondData(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, Envelope{Success: true, Data: data})
}

func respondError(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{Success: false, Error: message})
}
