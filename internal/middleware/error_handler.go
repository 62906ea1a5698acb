package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cropRecommendation/pkg/logger"

	jsonres "cropRecommendation/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error that reaches echo as a JSON error body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		logger.Error("Unhandled error", "error", err, "path", c.Path())
	}

	body := jsonres.Error(errorCode(code), message, nil)

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		logger.Error("Failed to write error response", err)
	}
}

// errorCode turns 404 into "NOT_FOUND".
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
