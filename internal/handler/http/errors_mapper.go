package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/utils"
	"github.com/MKhiriev/go-finance-tracker/internal/validators"
)

var errorStatusMap = map[error]int{
	errInvalidBody:        http.StatusBadRequest,
	errInvalidID:          http.StatusBadRequest,
	service.ErrValidation: http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrUnauthorized:       http.StatusUnauthorized,

	service.ErrUserNotFound:        http.StatusNotFound,
	service.ErrBankAccountNotFound: http.StatusNotFound,
	service.ErrCategoryNotFound:    http.StatusNotFound,
	service.ErrTransactionNotFound: http.StatusNotFound,

	service.ErrEmailAlreadyUsed:         http.StatusConflict,
	service.ErrBankAccountAlreadyExists: http.StatusConflict,
	service.ErrCategoryAlreadyExists:    http.StatusConflict,

	service.ErrTokenCreationFailed:    http.StatusInternalServerError,
	service.ErrTokenPersistenceFailed: http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	errInvalidBody: app.MsgInvalidDataProvided,
	errInvalidID:   app.MsgInvalidDataProvided,

	service.ErrInvalidCredentials: app.MsgInvalidCredentials,
	service.ErrUnauthorized:       app.MsgUnauthorized,

	service.ErrUserNotFound:        app.MsgUserNotFound,
	service.ErrBankAccountNotFound: app.MsgBankAccountNotFound,
	service.ErrCategoryNotFound:    app.MsgCategoryNotFound,
	service.ErrTransactionNotFound: app.MsgTransactionNotFound,

	service.ErrEmailAlreadyUsed:         app.MsgEmailAlreadyUsed,
	service.ErrBankAccountAlreadyExists: app.MsgBankAccountAlreadyExists,
	service.ErrCategoryAlreadyExists:    app.MsgCategoryAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Internal
// failures never leak their text.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrValidation) {
		if reason, ok := validators.Reason(err); ok {
			return reason
		}
		return app.MsgInvalidDataProvided
	}
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and message.
// Server-side failures are logged at error level, client mistakes at debug.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Debug()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	utils.WriteMessage(w, messageFromError(err), status)
}
