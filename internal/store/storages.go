// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/config"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
)

// Storages groups every server-side repository over one PostgreSQL pool.
type Storages struct {
	UserRepository         UserRepository
	RefreshTokenRepository RefreshTokenRepository
	BankAccountRepository  BankAccountRepository
	CategoryRepository     CategoryRepository
	TransactionRepository  TransactionRepository
	DashboardRepository    DashboardRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories over an already open connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		RefreshTokenRepository: NewRefreshTokenRepository(db, logger),
		BankAccountRepository:  NewBankAccountRepository(db, logger),
		CategoryRepository:     NewCategoryRepository(db, logger),
		TransactionRepository:  NewTransactionRepository(db, logger),
		DashboardRepository:    NewDashboardRepository(db, logger),
		db:                     db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("storages have no database")
	}
	return s.db.PingContext(ctx)
}
