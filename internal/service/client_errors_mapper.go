// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrSessionExpired):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrValidation, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidCredentials {
			return ErrInvalidCredentials
		}
		return ErrUnauthorized

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgUserNotFound:
			return ErrUserNotFound
		case app.MsgBankAccountNotFound:
			return ErrBankAccountNotFound
		case app.MsgCategoryNotFound:
			return ErrCategoryNotFound
		case app.MsgTransactionNotFound:
			return ErrTransactionNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgEmailAlreadyUsed:
			return ErrEmailAlreadyUsed
		case app.MsgBankAccountAlreadyExists:
			return ErrBankAccountAlreadyExists
		case app.MsgCategoryAlreadyExists:
			return ErrCategoryAlreadyExists
		}

	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %s", ErrServerUnavailable, msg)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// UserMessage returns the text the terminal client shows for err.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, ErrServerUnavailable):
		return app.MsgServerUnavailable
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, ErrValidation):
		return strings.TrimPrefix(err.Error(), ErrValidation.Error()+": ")
	}

	for sentinel, msg := range clientMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return err.Error()
}

var clientMessages = map[error]string{
	ErrUnauthorized:             app.MsgUnauthorized,
	ErrUserNotFound:             app.MsgUserNotFound,
	ErrEmailAlreadyUsed:         app.MsgEmailAlreadyUsed,
	ErrBankAccountNotFound:      app.MsgBankAccountNotFound,
	ErrBankAccountAlreadyExists: app.MsgBankAccountAlreadyExists,
	ErrCategoryNotFound:         app.MsgCategoryNotFound,
	ErrCategoryAlreadyExists:    app.MsgCategoryAlreadyExists,
	ErrTransactionNotFound:      app.MsgTransactionNotFound,
}
