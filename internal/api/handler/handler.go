package handler

import "github.com/dwahderian-ui/uniform/internal/service"

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth    *AuthHandler
	Request *RequestHandler
	Export  *ExportHandler
}

// NewHandler wires every handler to its service.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Request: NewRequestHandler(svc.Request),
		Export:  NewExportHandler(svc.Export),
	}
}
