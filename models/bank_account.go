// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BankAccount is a user-owned account that transactions are booked against.
// The pair (Number, Agency) is unique per owner.
type BankAccount struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	Agency    string    `json:"agency"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BankAccountUpdate is a partial update of a [BankAccount].
// Only non-nil fields are written.
type BankAccountUpdate struct {
	Name   *string `json:"name,omitempty"`
	Number *string `json:"number,omitempty"`
	Agency *string `json:"agency,omitempty"`
}

// Empty reports whether the update carries no fields.
func (u BankAccountUpdate) Empty() bool {
	return u.Name == nil && u.Number == nil && u.Agency == nil
}
