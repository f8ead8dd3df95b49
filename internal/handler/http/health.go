package http

import (
	"net/http"

	"github.com/MKhiriev/kardash/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "healthy"}, http.StatusOK)
}
