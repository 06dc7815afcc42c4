// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the finance tracker REST API.
//
// [ServerAdapter] hides the protocol from the client services. The HTTP
// implementation attaches the stored access token to every authenticated
// request and, on a 401, refreshes the token once through a single-flight
// refresher shared by all concurrent callers before replaying the request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so callers can use [errors.Is] (e.g. [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-finance-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the REST API. Every method except
// Login, Register and Version needs a signed-in session.
type ServerAdapter interface {
	// OnSessionExpired registers fn to run once each time a failed refresh
	// clears the local session.
	OnSessionExpired(fn func())

	// Login signs in and stores the returned tokens with the email.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	Register(ctx context.Context, user models.User) (models.User, error)
	// Logout revokes the session on the server and clears it locally. The
	// local session is cleared even when the server call fails.
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteAccount(ctx context.Context, userID int64) error

	ListBankAccounts(ctx context.Context) ([]models.BankAccount, error)
	CreateBankAccount(ctx context.Context, account models.BankAccount) (models.BankAccount, error)
	UpdateBankAccount(ctx context.Context, id int64, update models.BankAccountUpdate) (models.BankAccount, error)
	DeleteBankAccount(ctx context.Context, id int64) error

	ListCategories(ctx context.Context, page models.PageRequest) (models.Page[models.Category], error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, update models.CategoryUpdate) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListTransactions(ctx context.Context, page models.PageRequest) (models.Page[models.Transaction], error)
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, update models.TransactionUpdate) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	Dashboard(ctx context.Context) (models.Dashboard, error)
	Version(ctx context.Context) (string, error)
}
