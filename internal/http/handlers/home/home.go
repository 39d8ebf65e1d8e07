// Package home отдает информационную HTML-страницу на корневом пути.
package home

import (
	"log/slog"
	"net/http"
)

const page = `<h1 style='font-family: Arial, sans-serif; font-size: 24px; font-weight: bold; color: #333333; text-align: center;'>This application does not contain any UI, test its endpoints with an HTTP client.</h1>`

// Handler отдает статичную страницу.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}
