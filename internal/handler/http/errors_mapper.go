package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/kardash/internal/app"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/mockdata"
	"github.com/MKhiriev/kardash/internal/utils"
)

// apiError is the status and client facing detail of a catalog error.
type apiError struct {
	status int
	detail string
}

var errorStatusMap = map[error]apiError{
	ErrNotAuthenticated:     {http.StatusUnauthorized, app.MsgNotAuthenticated},
	ErrInvalidToken:         {http.StatusUnauthorized, app.MsgInvalidToken},
	ErrNotEnoughPermissions: {http.StatusForbidden, app.MsgNotEnoughPermissions},
	errAccessDenied:         {http.StatusForbidden, app.MsgAccessDenied},

	mockdata.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgIncorrectCredentials},
	mockdata.ErrInactiveUser:       {http.StatusBadRequest, app.MsgInactiveUser},
	mockdata.ErrEmailTaken:         {http.StatusBadRequest, app.MsgEmailTaken},
	mockdata.ErrUserNotFound:       {http.StatusNotFound, app.MsgUserNotFound},
	mockdata.ErrDeactivateSelf:     {http.StatusBadRequest, app.MsgDeactivateSelf},

	mockdata.ErrJobNotFound:      {http.StatusNotFound, app.MsgJobNotFound},
	mockdata.ErrJobNotOpen:       {http.StatusBadRequest, app.MsgJobNotOpen},
	mockdata.ErrAlreadyApplied:   {http.StatusBadRequest, app.MsgAlreadyApplied},
	mockdata.ErrJobNotInProgress: {http.StatusBadRequest, app.MsgJobNotInProgress},
	mockdata.ErrJobNotDelivered:  {http.StatusBadRequest, app.MsgJobNotDelivered},

	mockdata.ErrBotNameTaken:          {http.StatusBadRequest, app.MsgBotNameTaken},
	mockdata.ErrBotNotFound:           {http.StatusNotFound, app.MsgBotNotFound},
	mockdata.ErrNotificationNotFound:  {http.StatusNotFound, app.MsgNotificationNotFound},
	mockdata.ErrUnknownEarningsPeriod: {http.StatusBadRequest, app.MsgUnknownEarningsPeriod},
}

func apiErrorFrom(err error) apiError {
	for target, apiErr := range errorStatusMap {
		if errors.Is(err, target) {
			return apiErr
		}
	}
	return apiError{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with its mapped status and detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiErrorFrom(err)

	log := logger.FromRequest(r)
	if apiErr.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", apiErr.status).Msg("request rejected")
	}

	utils.WriteDetail(w, apiErr.detail, apiErr.status)
}
