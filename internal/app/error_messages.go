// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message catalogue shared by the
// HTTP handlers, the middleware and the terminal client.
//
// Messages are written into {"message": "..."} response bodies. Keeping them
// in one place keeps the wording identical across endpoints.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be decoded.
	MsgInvalidDataProvided = "Dados inválidos."

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Credenciais inválidas."

	MsgInternalServerError = "Erro interno do servidor."

	// MsgUnauthorized is returned by the auth guard and by a failed refresh.
	MsgUnauthorized        = "Não autorizado."
	MsgInvalidRefreshToken = "Refresh token inválido."

	MsgLogoutSucceeded = "Logout realizado com sucesso."

	MsgEmailAlreadyUsed = "Esse email já está sendo usado."
	MsgUserNotFound     = "Usuário não encontrado."
	MsgUserDeleted      = "Usuário deletado com sucesso."

	MsgBankAccountAlreadyExists = "Conta bancária já adicionada."
	MsgBankAccountNotFound      = "Conta bancária não encontrada."
	MsgBankAccountDeleted       = "Conta bancária deletada com sucesso."

	MsgCategoryAlreadyExists = "Categoria já cadastrada."
	MsgCategoryNotFound      = "Categoria não encontrada."
	MsgCategoryDeleted       = "Categoria deletada com sucesso."

	MsgTransactionNotFound = "Transação não encontrada."
	MsgTransactionDeleted  = "Transação deletada com sucesso."

	// MsgNotFound is the fallback for routes and records without a
	// dedicated message.
	MsgNotFound = "Recurso não encontrado."

	MsgConflict = "Registro já existe."

	// MsgSessionExpired is shown by the client when the refresh token is
	// gone or rejected.
	MsgSessionExpired = "Sessão expirada. Faça login novamente."

	MsgServerUnavailable = "Servidor indisponível."
)
