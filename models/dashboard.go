// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PieSlice is the expense total of one category in the current month.
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MonthlyPoint is the income/expense total of one month of the current year.
type MonthlyPoint struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// DailyPoint is the income/expense total of one of the last seven days.
type DailyPoint struct {
	Name    string  `json:"name"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Dashboard is the aggregate served by GET /dashboard/data.
type Dashboard struct {
	PieData         []PieSlice     `json:"pieData"`
	LineData        []MonthlyPoint `json:"lineData"`
	BarData         []DailyPoint   `json:"barData"`
	MonthlyIncome   float64        `json:"monthlyIncome"`
	MonthlyExpenses float64        `json:"monthlyExpenses"`
	TotalBalance    float64        `json:"totalBalance"`
	TotalInAccounts float64        `json:"totalInAccounts"`
}

// Totals are the all-time income and expense sums of a user.
type Totals struct {
	Income  float64
	Expense float64
}
