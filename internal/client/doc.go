// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It resumes a stored session when the server still accepts it, and
// otherwise alternates between the login flow and the finance screens
// until the user quits.
package client
