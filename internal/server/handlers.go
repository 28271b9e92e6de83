package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spacesedan/emotion-detector/internal/emotion"
)

const (
	textParam            = "textToAnalyze"
	internalErrorMessage = "Internal server error"
)

func (s *Server) handleHome(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, s.home.Bytes())
}

// handleEmotionDetector scores textToAnalyze. A missing parameter is treated
// as empty text and so answers with the invalid-text message.
func (s *Server) handleEmotionDetector(c echo.Context) error {
	text := c.QueryParam(textParam)

	body, err := s.detector.Detect(c.Request().Context(), text)
	if errors.Is(err, emotion.ErrInvalidText) {
		return c.String(http.StatusBadRequest, emotion.InvalidTextMessage)
	}
	if err != nil {
		slog.Error("[Server] Emotion detection failed",
			slog.String("error", err.Error()))
		return c.String(http.StatusInternalServerError, internalErrorMessage)
	}

	return c.String(http.StatusOK, body)
}
