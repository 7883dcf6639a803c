package handler

import "github.com/labstack/echo/v4"

// Envelope is the canonical response body for every API endpoint:
// {"status":"OK"|"ERROR","message":...,"data":...}.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Respond writes a success envelope.
func Respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Envelope{Status: "OK", Message: message, Data: data})
}

// RespondError writes an error envelope with a null data field.
func RespondError(c echo.Context, code int, message string) error {
	return c.JSON(code, Envelope{Status: "ERROR", Message: message, Data: nil})
}
