package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/mock"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func newTestClientAuthSvc(t *testing.T) (ClientAuthService, *mock.MockServerAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientAuthService(mockAdapter), mockAdapter
}

// transportError повторяет формат ошибок mapHTTPError.
func transportError(sentinel error, msg string) error {
	return fmt.Errorf("%w: %s", sentinel, msg)
}

func TestClientAuthService_Login(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)
	credentials := models.Credentials{Email: "ana@example.com", Password: "1234"}

	mockAdapter.EXPECT().Login(gomock.Any(), credentials).Return(models.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil)

	require.NoError(t, svc.Login(context.Background(), credentials))
}

func TestClientAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.TokenPair{}, transportError(adapter.ErrUnauthorized, app.MsgInvalidCredentials))

	err := svc.Login(context.Background(), models.Credentials{Email: "ana@example.com", Password: "x"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestClientAuthService_Register_EmailTaken(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, transportError(adapter.ErrConflict, app.MsgEmailAlreadyUsed))

	_, err := svc.Register(context.Background(), models.User{Name: "Ana", Email: "ana@example.com", Password: "1234"})

	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestClientAuthService_Register_Validation(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(models.User{}, transportError(adapter.ErrBadRequest, "Email inválido"))

	_, err := svc.Register(context.Background(), models.User{Name: "Ana", Email: "ana"})

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Email inválido", UserMessage(err))
}

func TestClientAuthService_DeleteAccount_UsesProfileID(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	gomock.InOrder(
		mockAdapter.EXPECT().Profile(gomock.Any()).Return(models.User{UserID: 7}, nil),
		mockAdapter.EXPECT().DeleteAccount(gomock.Any(), int64(7)).Return(nil),
	)

	require.NoError(t, svc.DeleteAccount(context.Background()))
}

func TestClientAuthService_DeleteAccount_SessionExpired(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Profile(gomock.Any()).Return(models.User{}, adapter.ErrSessionExpired)

	err := svc.DeleteAccount(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, app.MsgSessionExpired, UserMessage(err))
}

func TestClientAuthService_OnSessionExpired_Forwards(t *testing.T) {
	svc, mockAdapter := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().OnSessionExpired(gomock.Any())

	svc.OnSessionExpired(func() {})
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "wrong password", err: transportError(adapter.ErrUnauthorized, app.MsgInvalidCredentials), want: ErrInvalidCredentials},
		{name: "other 401", err: transportError(adapter.ErrUnauthorized, app.MsgUnauthorized), want: ErrUnauthorized},
		{name: "session expired", err: fmt.Errorf("%w: %w", adapter.ErrSessionExpired, adapter.ErrUnauthorized), want: ErrSessionExpired},
		{name: "bank account missing", err: transportError(adapter.ErrNotFound, app.MsgBankAccountNotFound), want: ErrBankAccountNotFound},
		{name: "category missing", err: transportError(adapter.ErrNotFound, app.MsgCategoryNotFound), want: ErrCategoryNotFound},
		{name: "transaction missing", err: transportError(adapter.ErrNotFound, app.MsgTransactionNotFound), want: ErrTransactionNotFound},
		{name: "user missing", err: transportError(adapter.ErrNotFound, app.MsgUserNotFound), want: ErrUserNotFound},
		{name: "duplicate account", err: transportError(adapter.ErrConflict, app.MsgBankAccountAlreadyExists), want: ErrBankAccountAlreadyExists},
		{name: "duplicate category", err: transportError(adapter.ErrConflict, app.MsgCategoryAlreadyExists), want: ErrCategoryAlreadyExists},
		{name: "server error", err: transportError(adapter.ErrInternalServerError, app.MsgInternalServerError), want: ErrServerUnavailable},
		{name: "unknown 404 stays transport", err: transportError(adapter.ErrNotFound, "404 page not found"), want: adapter.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, app.MsgCategoryAlreadyExists, UserMessage(ErrCategoryAlreadyExists))
	assert.Equal(t, app.MsgServerUnavailable, UserMessage(fmt.Errorf("%w: boom", ErrServerUnavailable)))
	assert.Equal(t, "something else", UserMessage(fmt.Errorf("something else")))
}
