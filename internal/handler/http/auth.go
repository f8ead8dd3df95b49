package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/mockdata"
	"github.com/MKhiriev/kardash/internal/utils"
	"github.com/MKhiriev/kardash/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var create models.UserCreate
	if !h.decodeBody(w, r, &create) {
		return
	}

	user, err := h.catalog.Register(create)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.UserLogin
	if !h.decodeBody(w, r, &creds) {
		return
	}

	user, err := h.catalog.Authenticate(creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, mockdata.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		writeError(w, r, err)
		return
	}

	token, err := utils.GenerateJWTToken(h.auth.TokenIssuer, user.ID, user.Role, h.auth.TokenDuration, h.auth.TokenSignKey)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.Token{AccessToken: token, TokenType: "bearer"}, http.StatusOK)
}
