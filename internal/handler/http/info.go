package http

import (
	"net/http"

	"github.com/MKhiriev/inbot-accounts/internal/utils"
)

// healthResponse is the body of the liveness endpoint.
type healthResponse struct {
	Status string `json:"status"`
}

// serviceInfoResponse is the body of the root service-info endpoint.
type serviceInfoResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) serviceInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, serviceInfoResponse{
		Service: "inbot-accounts",
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}
