// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TransactionType tells whether money came in or went out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single money movement booked against a bank account and
// classified by a category. Ownership is derived from the bank account.
type Transaction struct {
	ID            int64           `json:"id"`
	BankAccountID int64           `json:"bankAccountId"`
	CategoryID    int64           `json:"categoryId"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description"`
	IsEssential   bool            `json:"isEssential"`
	TransactionAt time.Time       `json:"transactionAt"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`

	// BankAccount and Category are populated on reads.
	BankAccount *BankAccount `json:"bankAccount,omitempty"`
	Category    *Category    `json:"category,omitempty"`
}

// TransactionUpdate is a partial update of a [Transaction].
type TransactionUpdate struct {
	BankAccountID *int64           `json:"bankAccountId,omitempty"`
	CategoryID    *int64           `json:"categoryId,omitempty"`
	Type          *TransactionType `json:"type,omitempty"`
	Amount        *float64         `json:"amount,omitempty"`
	Description   *string          `json:"description,omitempty"`
	IsEssential   *bool            `json:"isEssential,omitempty"`
	TransactionAt *time.Time       `json:"transactionAt,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u TransactionUpdate) Empty() bool {
	return u.BankAccountID == nil && u.CategoryID == nil && u.Type == nil &&
		u.Amount == nil && u.Description == nil && u.IsEssential == nil &&
		u.TransactionAt == nil
}
