package http

import (
	"net/http"

	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/utils"
	"github.com/MKhiriev/kardash/models"
)

func (h *Handler) dashboardOverview(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.DashboardOverview(), http.StatusOK)
}

func (h *Handler) freelancerStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.FreelancerStats(currentUserID(r)), http.StatusOK)
}

func (h *Handler) earningsOverview(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.EarningsOverview(), http.StatusOK)
}

func (h *Handler) earningsChart(w http.ResponseWriter, r *http.Request) {
	chart, err := h.catalog.EarningsChart(r.URL.Query().Get("period"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, chart, http.StatusOK)
}

func (h *Handler) listBotAccounts(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.BotAccounts(), http.StatusOK)
}

func (h *Handler) createBotAccount(w http.ResponseWriter, r *http.Request) {
	var create models.BotAccountCreate
	if !h.decodeBody(w, r, &create) {
		return
	}

	bot, err := h.catalog.CreateBotAccount(currentUserID(r), create)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, bot, http.StatusOK)
}

func (h *Handler) botAccountStats(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.BotAccountStats(), http.StatusOK)
}

func (h *Handler) activateBotAccount(w http.ResponseWriter, r *http.Request) {
	h.setBotStatus(w, r, models.BotActive)
}

func (h *Handler) pauseBotAccount(w http.ResponseWriter, r *http.Request) {
	h.setBotStatus(w, r, models.BotPaused)
}

func (h *Handler) setBotStatus(w http.ResponseWriter, r *http.Request, status string) {
	botID, ok := pathID(w, r, "bot_id")
	if !ok {
		return
	}

	msg, err := h.catalog.SetBotStatus(botID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("bot_id", botID).Str("status", status).Msg("bot account status changed")
	utils.WriteJSON(w, msg, http.StatusOK)
}
