package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/kardash/internal/app"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/utils"
)

// validationIssue is one entry of a 422 "detail" list.
type validationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// jsonFieldName makes validator report fields by their JSON names.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// decodeBody reads a JSON body into v and checks its `validate` tags. On
// failure it writes the 422 response itself and returns false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeValidation(w, validationIssue{Loc: []string{"body"}, Msg: app.MsgInvalidJSON, Type: "value_error.jsondecode"})
		return false
	}

	err := h.validate.Struct(v)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		log.Err(err).Msg("request validation failed")
		writeValidation(w, validationIssue{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"})
		return false
	}

	issues := make([]validationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, validationIssue{
			Loc:  []string{"body", fe.Field()},
			Msg:  issueMessage(fe),
			Type: "value_error." + fe.Tag(),
		})
	}
	log.Debug().Any("issues", issues).Msg("request validation failed")
	writeValidation(w, issues...)
	return false
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + ": field required"
	case "email":
		return fe.Field() + ": value is not a valid email address"
	case "url":
		return fe.Field() + ": invalid or missing URL scheme"
	case "oneof":
		return fmt.Sprintf("%s: value is not one of %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed on %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
}

func writeValidation(w http.ResponseWriter, issues ...validationIssue) {
	utils.WriteJSON(w, map[string][]validationIssue{"detail": issues}, http.StatusUnprocessableEntity)
}

// pathID parses the int64 URL parameter name, answering 422 when it is not
// a number.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeValidation(w, validationIssue{
			Loc:  []string{"path", name},
			Msg:  name + ": value is not a valid integer",
			Type: "type_error.integer",
		})
		return 0, false
	}
	return id, true
}

// currentUserID returns the ID stored by the auth middleware.
func currentUserID(r *http.Request) int64 {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}

// queryBool accepts the same truthy spellings as the real backend.
func queryBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.URL.Query().Get(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
