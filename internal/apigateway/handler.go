package apigateway

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/spacesedan/emotion-detector/internal/emotion"
	"github.com/spacesedan/emotion-detector/internal/web"
)

const (
	textParam            = "textToAnalyze"
	internalErrorMessage = "Internal server error"
	staticPrefix         = "/static/"
)

// Handler serves the home page and the emotion endpoint from API Gateway
// HTTP API (payload v2) events.
type Handler struct {
	detector *emotion.Detector
	home     *web.HomePage
	static   fs.FS
}

func NewHandler(detector *emotion.Detector, home *web.HomePage) *Handler {
	return &Handler{detector: detector, home: home, static: web.StaticFS()}
}

func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := req.RequestContext.HTTP.Method
	p := req.RawPath
	if p == "" {
		p = req.RequestContext.HTTP.Path
	}

	if method != http.MethodGet {
		return textResponse(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed)), nil
	}

	switch {
	case p == "/" || p == "":
		return response(http.StatusOK, "text/html; charset=UTF-8", string(h.home.Bytes())), nil
	case p == "/emotionDetector":
		return h.detect(ctx, req.QueryStringParameters[textParam]), nil
	case strings.HasPrefix(p, staticPrefix):
		return h.asset(strings.TrimPrefix(p, staticPrefix)), nil
	}

	return textResponse(http.StatusNotFound, http.StatusText(http.StatusNotFound)), nil
}

func (h *Handler) detect(ctx context.Context, text string) events.APIGatewayV2HTTPResponse {
	body, err := h.detector.Detect(ctx, text)
	if errors.Is(err, emotion.ErrInvalidText) {
		return textResponse(http.StatusBadRequest, emotion.InvalidTextMessage)
	}
	if err != nil {
		slog.Error("[Lambda] Emotion detection failed",
			slog.String("error", err.Error()))
		return textResponse(http.StatusInternalServerError, internalErrorMessage)
	}
	return textResponse(http.StatusOK, body)
}

func (h *Handler) asset(name string) events.APIGatewayV2HTTPResponse {
	data, err := fs.ReadFile(h.static, path.Clean(name))
	if err != nil {
		return textResponse(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return response(http.StatusOK, contentType, string(data))
}

func textResponse(status int, body string) events.APIGatewayV2HTTPResponse {
	return response(status, "text/plain; charset=UTF-8", body)
}

func response(status int, contentType, body string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": contentType},
		Body:       body,
	}
}
