package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func newTestMainLoop(auth *fakeAuth, finance *fakeFinance) mainLoopModel {
	m := newMainLoopModel(context.Background(), &service.ClientServices{AuthService: auth, FinanceService: finance})
	m.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local) }
	return m
}

// send feeds msgs to m in order and returns the model and the last command.
func send(t *testing.T, m mainLoopModel, msgs ...tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(mainLoopModel)
		require.True(t, ok)
	}
	return m, cmd
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func TestMainLoop_TabsCycle(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, _ = send(t, m, press("tab"), press("tab"))
	assert.Equal(t, tabCategories, m.tab)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabProfile, m.tab)
}

func TestMainLoop_ShowsLoadedAccounts(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, _ = send(t, m,
		accountsMsg{items: []models.BankAccount{{ID: 3, Name: "Nubank", Number: "123456", Agency: "0001"}}},
		press("tab"),
	)

	view := m.View()
	assert.Contains(t, view, "Nubank")
	assert.Contains(t, view, "123456")
}

func TestMainLoop_DashboardView(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, _ = send(t, m, dashboardMsg{dashboard: models.Dashboard{
		TotalBalance:    1500,
		MonthlyExpenses: 300,
		PieData:         []models.PieSlice{{Name: "Mercado", Value: 300}},
	}})

	view := m.View()
	assert.Contains(t, view, "Mercado")
	assert.Contains(t, view, "R$ 300,00")
	assert.Contains(t, view, "█")
}

func TestMainLoop_SessionExpiredQuits(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, cmd := send(t, m, sessionExpiredMsg{})

	assert.True(t, m.logout)
	assert.True(t, m.sessionExpired)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_LoadFailureWithExpiredSessionQuits(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, cmd := send(t, m, accountsMsg{err: service.ErrSessionExpired})

	assert.True(t, m.sessionExpired)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_LoadFailureShowsMessage(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, cmd := send(t, m, categoriesMsg{err: fmt.Errorf("%w: %s", service.ErrValidation, "Página inválida")})

	assert.Nil(t, cmd)
	assert.False(t, m.logout)
	assert.Equal(t, "Página inválida", m.errMsg)
}

func TestMainLoop_CreateBankAccount(t *testing.T) {
	finance := &fakeFinance{}
	m := newTestMainLoop(&fakeAuth{}, finance)

	m, _ = send(t, m, press("tab"), press("n"))
	require.True(t, m.formOpen)

	m.form.fields[0].input.SetValue("Nubank")
	m.form.fields[1].input.SetValue("123456")
	m.form.fields[2].input.SetValue("0001")

	m, cmd := send(t, m, press("enter"))
	require.NotNil(t, cmd)
	assert.True(t, m.form.submitting)

	saved := cmd()
	assert.Equal(t, models.BankAccount{Name: "Nubank", Number: "123456", Agency: "0001"}, finance.createdAccount)

	m, cmd = send(t, m, saved)
	assert.False(t, m.formOpen)
	assert.Equal(t, "Conta bancária criada", m.status)
	assert.NotNil(t, cmd)
}

func TestMainLoop_ServerRejectionKeepsFormOpen(t *testing.T) {
	finance := &fakeFinance{createErr: fmt.Errorf("%w: %s", service.ErrValidation, "Número deve ter de 5 a 20 dígitos")}
	m := newTestMainLoop(&fakeAuth{}, finance)

	m, _ = send(t, m, press("tab"), press("n"))
	m.form.fields[1].input.SetValue("12")

	m, cmd := send(t, m, press("enter"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	assert.True(t, m.formOpen)
	assert.False(t, m.form.submitting)
	assert.Equal(t, "Número deve ter de 5 a 20 dígitos", m.form.err)
}

func TestMainLoop_CreateTransactionParsesForm(t *testing.T) {
	finance := &fakeFinance{}
	m := newTestMainLoop(&fakeAuth{}, finance)

	m, _ = send(t, m, press("tab"), press("tab"), press("tab"), press("n"))
	require.True(t, m.formOpen)
	require.Len(t, m.form.fields, 7)

	values := []string{"expense", "1.234,56", "3", "1", "aluguel", "s", "05/03/2026"}
	for i, v := range values {
		m.form.fields[i].input.SetValue(v)
	}

	_, cmd := send(t, m, press("enter"))
	require.NotNil(t, cmd)
	cmd()

	got := finance.createdTransaction
	assert.Equal(t, models.Expense, got.Type)
	assert.InDelta(t, 1234.56, got.Amount, 1e-9)
	assert.Equal(t, int64(3), got.BankAccountID)
	assert.Equal(t, int64(1), got.CategoryID)
	assert.Equal(t, "aluguel", got.Description)
	assert.True(t, got.IsEssential)
	assert.Equal(t, "2026-03-05", got.TransactionAt.Format("2006-01-02"))
}

func TestMainLoop_TransactionFormRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "bad type", values: []string{"GIFT", "10", "3", "1", "", "n", ""}, want: "Tipo deve ser INCOME ou EXPENSE"},
		{name: "bad amount", values: []string{"INCOME", "abc", "3", "1", "", "n", ""}, want: errInvalidAmount.Error()},
		{name: "missing account", values: []string{"INCOME", "10", "", "1", "", "n", ""}, want: "Informe o ID da conta"},
		{name: "bad date", values: []string{"INCOME", "10", "3", "1", "", "n", "2026-03-05"}, want: errInvalidDate.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finance := &fakeFinance{}
			m := newTestMainLoop(&fakeAuth{}, finance)
			m, _ = send(t, m, press("tab"), press("tab"), press("tab"), press("n"))
			for i, v := range tt.values {
				m.form.fields[i].input.SetValue(v)
			}

			m, cmd := send(t, m, press("enter"))

			assert.Nil(t, cmd)
			assert.True(t, m.formOpen)
			assert.Equal(t, tt.want, m.form.err)
			assert.Zero(t, finance.createdTransaction)
		})
	}
}

func TestMainLoop_EmptyDateMeansToday(t *testing.T) {
	finance := &fakeFinance{}
	m := newTestMainLoop(&fakeAuth{}, finance)
	m, _ = send(t, m, press("tab"), press("tab"), press("tab"), press("n"))
	for i, v := range []string{"INCOME", "50", "3", "1", "", "n", ""} {
		m.form.fields[i].input.SetValue(v)
	}

	_, cmd := send(t, m, press("enter"))
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, m.now(), finance.createdTransaction.TransactionAt)
	assert.False(t, finance.createdTransaction.IsEssential)
}

func TestMainLoop_EscClosesForm(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, _ = send(t, m, press("tab"), press("n"), press("esc"))

	assert.False(t, m.formOpen)
}

func TestMainLoop_DeleteAsksForConfirmation(t *testing.T) {
	finance := &fakeFinance{}
	m := newTestMainLoop(&fakeAuth{}, finance)

	m, _ = send(t, m,
		accountsMsg{items: []models.BankAccount{{ID: 3, Name: "Nubank"}, {ID: 4, Name: "Inter"}}},
		press("tab"),
		press("j"),
		press("ctrl+d"),
	)
	require.True(t, m.confirmDelete)
	assert.Contains(t, m.View(), "Confirmar exclusão?")

	m, cmd := send(t, m, press("s"))
	require.NotNil(t, cmd)
	assert.False(t, m.confirmDelete)

	cmd()
	assert.Equal(t, int64(4), finance.deletedAccount)
}

func TestMainLoop_DeleteCancelled(t *testing.T) {
	finance := &fakeFinance{}
	m := newTestMainLoop(&fakeAuth{}, finance)

	m, _ = send(t, m,
		accountsMsg{items: []models.BankAccount{{ID: 3}}},
		press("tab"),
		press("ctrl+d"),
		press("n"),
	)

	assert.False(t, m.confirmDelete)
	assert.Zero(t, finance.deletedAccount)
}

func TestMainLoop_DeleteOnEmptyListIgnored(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, _ = send(t, m, press("tab"), press("ctrl+d"))

	assert.False(t, m.confirmDelete)
}

func TestMainLoop_SearchCategories(t *testing.T) {
	finance := &fakeFinance{}
	m := newTestMainLoop(&fakeAuth{}, finance)

	m, _ = send(t, m, press("tab"), press("tab"), press("/"))
	require.True(t, m.searching)

	m, _ = send(t, m, typeText("mer")...)
	m, cmd := send(t, m, press("enter"))
	require.NotNil(t, cmd)
	assert.False(t, m.searching)
	assert.Equal(t, "mer", m.categoryQuery.Search)

	msg := cmd()
	assert.IsType(t, categoriesMsg{}, msg)
	assert.Equal(t, models.PageRequest{Page: 1, Limit: models.DefaultLimit, Search: "mer"}, finance.categoryQuery)
}

func TestMainLoop_SearchOnlyOnPagedTabs(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, _ = send(t, m, press("tab"), press("/"))

	assert.False(t, m.searching)
}

func TestMainLoop_TurnsCategoryPages(t *testing.T) {
	finance := &fakeFinance{}
	m := newTestMainLoop(&fakeAuth{}, finance)

	m, _ = send(t, m, categoriesMsg{page: models.Page[models.Category]{
		Data:       []models.Category{{ID: 1, Name: "Mercado"}},
		Total:      12,
		Page:       1,
		Limit:      10,
		TotalPages: 2,
	}}, press("tab"), press("tab"))

	m, cmd := send(t, m, press("left"))
	assert.Nil(t, cmd, "already on the first page")

	m, cmd = send(t, m, press("right"))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.categoryQuery.Page)
	cmd()
	assert.Equal(t, 2, finance.categoryQuery.Page)

	m.categories.Page = 2
	_, cmd = send(t, m, press("right"))
	assert.Nil(t, cmd, "no page after the last one")
}

func TestMainLoop_CopyAccountNumber(t *testing.T) {
	var copied string
	original := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = original })

	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})
	m, _ = send(t, m,
		accountsMsg{items: []models.BankAccount{{ID: 3, Name: "Nubank", Number: "123456"}}},
		press("tab"),
		press("c"),
	)

	assert.Equal(t, "123456", copied)
	assert.Equal(t, "Número da conta copiado", m.status)
}

func TestMainLoop_CopyFailureShown(t *testing.T) {
	original := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no display") }
	t.Cleanup(func() { copyToClipboard = original })

	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})
	m, _ = send(t, m, accountsMsg{items: []models.BankAccount{{ID: 3, Number: "123456"}}}, press("tab"), press("c"))

	assert.Contains(t, m.errMsg, "no display")
}

func TestMainLoop_LogoutCallsServer(t *testing.T) {
	auth := &fakeAuth{}
	m := newTestMainLoop(auth, &fakeFinance{})

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	require.NotNil(t, cmd)

	msg := cmd()
	assert.True(t, auth.loggedOut)

	m, cmd = send(t, m, msg)
	assert.True(t, m.logout)
	assert.True(t, isQuit(cmd))
}

func TestMainLoop_FailedAccountDeletionStays(t *testing.T) {
	m := newTestMainLoop(&fakeAuth{}, &fakeFinance{})

	m, cmd := send(t, m, logoutDoneMsg{err: service.ErrServerUnavailable, accountDeleted: true})

	assert.False(t, m.logout)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
}

func TestMainLoop_EditProfileKeepsPasswordWhenEmpty(t *testing.T) {
	auth := &fakeAuth{}
	m := newTestMainLoop(auth, &fakeFinance{})

	m, _ = send(t, m,
		profileMsg{user: models.User{UserID: 7, Name: "Ana", Email: "ana@example.com"}},
		tea.KeyMsg{Type: tea.KeyShiftTab},
		press("e"),
	)
	require.True(t, m.formOpen)
	assert.Equal(t, "Ana", m.form.value(0))

	m.form.fields[0].input.SetValue("Ana Paula")
	_, cmd := send(t, m, press("enter"))
	require.NotNil(t, cmd)
	cmd()

	require.NotNil(t, auth.updated.Name)
	assert.Equal(t, "Ana Paula", *auth.updated.Name)
	assert.Nil(t, auth.updated.Password)
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(10, 0, 20))
	assert.Equal(t, "", bar(0, 10, 20))
	assert.Equal(t, 20, len([]rune(bar(10, 10, 20))))
	assert.Equal(t, 1, len([]rune(bar(0.01, 10, 20))))
}
