package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type tab int

const (
	tabDashboard tab = iota
	tabAccounts
	tabCategories
	tabTransactions
	tabProfile
)

var tabTitles = []string{"Painel", "Contas", "Categorias", "Transações", "Perfil"}

// copyToClipboard is swapped in tests; the real clipboard needs a display.
var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	finance service.ClientFinanceService
	now     func() time.Time

	tab    tab
	idx    int
	status string
	errMsg string

	dashboard    *models.Dashboard
	profile      models.User
	accounts     []models.BankAccount
	categories   models.Page[models.Category]
	transactions models.Page[models.Transaction]

	categoryQuery    models.PageRequest
	transactionQuery models.PageRequest

	searching bool
	search    textinput.Model

	formOpen bool
	form     formModel
	formKind tab
	// editID is the record being edited; zero while creating.
	editID int64

	confirmDelete bool

	logout         bool
	sessionExpired bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "buscar"
	search.Width = 30

	return mainLoopModel{
		ctx:              ctx,
		auth:             services.AuthService,
		finance:          services.FinanceService,
		now:              time.Now,
		search:           search,
		categoryQuery:    models.PageRequest{Page: models.DefaultPage, Limit: models.DefaultLimit},
		transactionQuery: models.PageRequest{Page: models.DefaultPage, Limit: models.DefaultLimit},
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.reloadAll()
}

func (m mainLoopModel) reloadAll() tea.Cmd {
	return tea.Batch(
		m.cmdLoadDashboard(),
		m.cmdLoadProfile(),
		m.cmdLoadAccounts(),
		m.cmdLoadCategories(m.categoryQuery),
		m.cmdLoadTransactions(m.transactionQuery),
	)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionExpiredMsg:
		m.sessionExpired = true
		m.logout = true
		return m, tea.Quit
	case dashboardMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		d := msg.dashboard
		m.dashboard = &d
		return m, nil
	case profileMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.profile = msg.user
		return m, nil
	case accountsMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.accounts = msg.items
		m.clampCursor()
		return m, nil
	case categoriesMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.categories = msg.page
		m.clampCursor()
		return m, nil
	case transactionsMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.transactions = msg.page
		m.clampCursor()
		return m, nil
	case savedMsg:
		m.form.submitting = false
		if msg.err != nil {
			if m.formOpen {
				m.form.err = errorText(msg.err)
				if errors.Is(msg.err, service.ErrSessionExpired) {
					return m.fail(msg.err)
				}
				return m, nil
			}
			return m.fail(msg.err)
		}
		m.formOpen = false
		m.status = msg.status
		m.errMsg = ""
		return m, m.reloadAll()
	case logoutDoneMsg:
		if msg.accountDeleted && msg.err != nil {
			return m.fail(msg.err)
		}
		m.logout = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.formOpen {
			var cmd tea.Cmd
			m.form, cmd = m.form.update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.formOpen:
		return m.updateForm(keyMsg)
	case m.searching:
		return m.updateSearch(keyMsg)
	case m.confirmDelete:
		return m.updateConfirm(keyMsg)
	}

	m.status = ""

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.nextTab):
		m.switchTab(1)
	case key.Matches(keyMsg, keys.prevTab):
		m.switchTab(-1)
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < m.rowCount()-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.prevPage):
		return m.turnPage(-1)
	case key.Matches(keyMsg, keys.nextPage):
		return m.turnPage(1)
	case key.Matches(keyMsg, keys.reload):
		m.errMsg = ""
		return m, m.reloadAll()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.search):
		if m.tab == tabCategories || m.tab == tabTransactions {
			m.searching = true
			m.search.SetValue(m.currentQuery().Search)
			m.search.Focus()
		}
	case key.Matches(keyMsg, keys.newItem):
		m.openForm(false)
	case key.Matches(keyMsg, keys.edit):
		m.openForm(true)
	case key.Matches(keyMsg, keys.delete):
		if m.tab == tabProfile || m.rowCount() > 0 {
			m.confirmDelete = true
		}
	case key.Matches(keyMsg, keys.copy):
		m.copyAccountNumber()
	}

	return m, nil
}

// fail shows err. An expired session ends the main loop so the client can
// go back to the login flow.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, service.ErrSessionExpired) {
		m.sessionExpired = true
		m.logout = true
		return m, tea.Quit
	}
	m.errMsg = errorText(err)
	return m, nil
}

func (m *mainLoopModel) switchTab(step int) {
	m.tab = tab((int(m.tab) + step + len(tabTitles)) % len(tabTitles))
	m.idx = 0
	m.errMsg = ""
}

func (m mainLoopModel) rowCount() int {
	switch m.tab {
	case tabAccounts:
		return len(m.accounts)
	case tabCategories:
		return len(m.categories.Data)
	case tabTransactions:
		return len(m.transactions.Data)
	default:
		return 0
	}
}

func (m *mainLoopModel) clampCursor() {
	if m.idx >= m.rowCount() {
		m.idx = m.rowCount() - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) currentQuery() models.PageRequest {
	if m.tab == tabTransactions {
		return m.transactionQuery
	}
	return m.categoryQuery
}

func (m mainLoopModel) turnPage(step int) (tea.Model, tea.Cmd) {
	switch m.tab {
	case tabCategories:
		next := m.categoryQuery.Page + step
		if next < 1 || (m.categories.TotalPages > 0 && next > m.categories.TotalPages) {
			return m, nil
		}
		m.categoryQuery.Page = next
		m.idx = 0
		return m, m.cmdLoadCategories(m.categoryQuery)
	case tabTransactions:
		next := m.transactionQuery.Page + step
		if next < 1 || (m.transactions.TotalPages > 0 && next > m.transactions.TotalPages) {
			return m, nil
		}
		m.transactionQuery.Page = next
		m.idx = 0
		return m, m.cmdLoadTransactions(m.transactionQuery)
	}
	return m, nil
}

func (m mainLoopModel) updateSearch(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		term := strings.TrimSpace(m.search.Value())
		m.idx = 0
		if m.tab == tabTransactions {
			m.transactionQuery.Search = term
			m.transactionQuery.Page = models.DefaultPage
			return m, m.cmdLoadTransactions(m.transactionQuery)
		}
		m.categoryQuery.Search = term
		m.categoryQuery.Page = models.DefaultPage
		return m, m.cmdLoadCategories(m.categoryQuery)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(keyMsg)
	return m, cmd
}

func (m mainLoopModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmDelete = false
		return m, m.cmdDelete()
	case key.Matches(keyMsg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func (m *mainLoopModel) copyAccountNumber() {
	if m.tab != tabAccounts || len(m.accounts) == 0 {
		return
	}
	account := m.accounts[m.idx]
	if err := copyToClipboard(account.Number); err != nil {
		m.errMsg = fmt.Sprintf("Erro ao copiar: %v", err)
		return
	}
	m.status = "Número da conta copiado"
}

// openForm opens the create or edit form of the current tab.
func (m *mainLoopModel) openForm(edit bool) {
	m.editID = 0
	m.formKind = m.tab

	switch m.tab {
	case tabAccounts:
		var a models.BankAccount
		if edit {
			if len(m.accounts) == 0 {
				return
			}
			a = m.accounts[m.idx]
			m.editID = a.ID
		}
		m.form = newForm(formTitle("CONTA", edit),
			newField("Nome", "Nubank", a.Name),
			newField("Número", "5 a 20 dígitos", a.Number),
			newField("Agência", "3 a 10 dígitos", a.Agency),
		)
	case tabCategories:
		var c models.Category
		if edit {
			if len(m.categories.Data) == 0 {
				return
			}
			c = m.categories.Data[m.idx]
			m.editID = c.ID
		}
		m.form = newForm(formTitle("CATEGORIA", edit),
			newField("Nome", "Mercado", c.Name),
			newField("Descrição", "opcional", c.Description),
		)
	case tabTransactions:
		t := models.Transaction{Type: models.Expense}
		if edit {
			if len(m.transactions.Data) == 0 {
				return
			}
			t = m.transactions.Data[m.idx]
			m.editID = t.ID
		}
		amount, accountID, categoryID, date := "", "", "", ""
		if edit {
			amount = strconv.FormatFloat(t.Amount, 'f', 2, 64)
			accountID = strconv.FormatInt(t.BankAccountID, 10)
			categoryID = strconv.FormatInt(t.CategoryID, 10)
			date = formatDate(t.TransactionAt)
		}
		essential := "n"
		if t.IsEssential {
			essential = "s"
		}
		m.form = newForm(formTitle("TRANSAÇÃO", edit),
			newField("Tipo", "INCOME ou EXPENSE", string(t.Type)),
			newField("Valor", "120,50", amount),
			newField("Conta (ID)", "ID da conta", accountID),
			newField("Categoria (ID)", "ID da categoria", categoryID),
			newField("Descrição", "opcional", t.Description),
			newField("Essencial (s/n)", "n", essential),
			newField("Data", "dd/mm/aaaa, vazio = hoje", date),
		)
		m.form.hint = m.referenceHint()
	case tabProfile:
		if !edit {
			return
		}
		m.form = newForm("EDITAR PERFIL",
			newField("Nome", "seu nome", m.profile.Name),
			newField("Email", "voce@exemplo.com", m.profile.Email),
			newSecretField("Nova senha", "vazio = manter"),
		)
	default:
		return
	}

	m.formOpen = true
}

func formTitle(entity string, edit bool) string {
	if edit {
		return "EDITAR " + entity
	}
	return "NOVA " + entity
}

// referenceHint lists the ids the transaction form can refer to.
func (m mainLoopModel) referenceHint() string {
	var accounts, categories []string
	for _, a := range m.accounts {
		accounts = append(accounts, fmt.Sprintf("%d=%s", a.ID, a.Name))
	}
	for _, c := range m.categories.Data {
		categories = append(categories, fmt.Sprintf("%d=%s", c.ID, c.Name))
	}
	return "Contas: " + valueOrDash(strings.Join(accounts, ", ")) +
		"\nCategorias: " + valueOrDash(strings.Join(categories, ", "))
}

func (m mainLoopModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.formOpen = false
		return m, nil
	case "enter":
		if m.form.submitting {
			return m, nil
		}
		cmd, err := m.submitForm()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.form.err = ""
		m.form.submitting = true
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(keyMsg)
	return m, cmd
}

// submitForm reads the open form into a save command. Input that cannot be
// parsed is reported without calling the server; rule checks are left to it.
func (m mainLoopModel) submitForm() (tea.Cmd, error) {
	f := m.form
	ctx, finance, id := m.ctx, m.finance, m.editID

	switch m.formKind {
	case tabAccounts:
		name, number, agency := f.value(0), f.value(1), f.value(2)
		if id == 0 {
			return saveCmd("Conta bancária criada", func() error {
				_, err := finance.CreateBankAccount(ctx, models.BankAccount{Name: name, Number: number, Agency: agency})
				return err
			}), nil
		}
		return saveCmd("Conta bancária atualizada", func() error {
			_, err := finance.UpdateBankAccount(ctx, id, models.BankAccountUpdate{Name: &name, Number: &number, Agency: &agency})
			return err
		}), nil

	case tabCategories:
		name, description := f.value(0), f.value(1)
		if id == 0 {
			return saveCmd("Categoria criada", func() error {
				_, err := finance.CreateCategory(ctx, models.Category{Name: name, Description: description})
				return err
			}), nil
		}
		return saveCmd("Categoria atualizada", func() error {
			_, err := finance.UpdateCategory(ctx, id, models.CategoryUpdate{Name: &name, Description: &description})
			return err
		}), nil

	case tabTransactions:
		t, err := m.transactionFromForm()
		if err != nil {
			return nil, err
		}
		if id == 0 {
			return saveCmd("Transação criada", func() error {
				_, err := finance.CreateTransaction(ctx, t)
				return err
			}), nil
		}
		return saveCmd("Transação atualizada", func() error {
			_, err := finance.UpdateTransaction(ctx, id, models.TransactionUpdate{
				BankAccountID: &t.BankAccountID,
				CategoryID:    &t.CategoryID,
				Type:          &t.Type,
				Amount:        &t.Amount,
				Description:   &t.Description,
				IsEssential:   &t.IsEssential,
				TransactionAt: &t.TransactionAt,
			})
			return err
		}), nil

	case tabProfile:
		name, email := f.value(0), f.value(1)
		update := models.UserUpdate{Name: &name, Email: &email}
		if pass := f.fields[2].input.Value(); pass != "" {
			update.Password = &pass
		}
		auth := m.auth
		return saveCmd("Perfil atualizado", func() error {
			_, err := auth.UpdateProfile(ctx, update)
			return err
		}), nil
	}

	return nil, errors.New("formulário desconhecido")
}

func (m mainLoopModel) transactionFromForm() (models.Transaction, error) {
	f := m.form

	txType := models.TransactionType(strings.ToUpper(f.value(0)))
	if !txType.Valid() {
		return models.Transaction{}, errors.New("Tipo deve ser INCOME ou EXPENSE")
	}
	amount, err := parseMoney(f.value(1))
	if err != nil {
		return models.Transaction{}, err
	}
	accountID, err := strconv.ParseInt(f.value(2), 10, 64)
	if err != nil {
		return models.Transaction{}, errors.New("Informe o ID da conta")
	}
	categoryID, err := strconv.ParseInt(f.value(3), 10, 64)
	if err != nil {
		return models.Transaction{}, errors.New("Informe o ID da categoria")
	}
	at, err := parseDate(f.value(6), m.now())
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		BankAccountID: accountID,
		CategoryID:    categoryID,
		Type:          txType,
		Amount:        amount,
		Description:   f.value(4),
		IsEssential:   strings.EqualFold(f.value(5), "s"),
		TransactionAt: at,
	}, nil
}

func saveCmd(status string, save func() error) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{status: status, err: save()}
	}
}

func (m mainLoopModel) cmdDelete() tea.Cmd {
	ctx, finance := m.ctx, m.finance

	switch m.tab {
	case tabAccounts:
		id := m.accounts[m.idx].ID
		return saveCmd("Conta bancária removida", func() error { return finance.DeleteBankAccount(ctx, id) })
	case tabCategories:
		id := m.categories.Data[m.idx].ID
		return saveCmd("Categoria removida", func() error { return finance.DeleteCategory(ctx, id) })
	case tabTransactions:
		id := m.transactions.Data[m.idx].ID
		return saveCmd("Transação removida", func() error { return finance.DeleteTransaction(ctx, id) })
	case tabProfile:
		auth := m.auth
		return func() tea.Msg { return logoutDoneMsg{err: auth.DeleteAccount(ctx), accountDeleted: true} }
	}
	return nil
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg { return logoutDoneMsg{err: auth.Logout(ctx)} }
}

func (m mainLoopModel) cmdLoadDashboard() tea.Cmd {
	ctx, finance := m.ctx, m.finance
	return func() tea.Msg {
		d, err := finance.Dashboard(ctx)
		return dashboardMsg{dashboard: d, err: err}
	}
}

func (m mainLoopModel) cmdLoadProfile() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		u, err := auth.Profile(ctx)
		return profileMsg{user: u, err: err}
	}
}

func (m mainLoopModel) cmdLoadAccounts() tea.Cmd {
	ctx, finance := m.ctx, m.finance
	return func() tea.Msg {
		items, err := finance.ListBankAccounts(ctx)
		return accountsMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdLoadCategories(page models.PageRequest) tea.Cmd {
	ctx, finance := m.ctx, m.finance
	return func() tea.Msg {
		p, err := finance.ListCategories(ctx, page)
		return categoriesMsg{page: p, err: err}
	}
}

func (m mainLoopModel) cmdLoadTransactions(page models.PageRequest) tea.Cmd {
	ctx, finance := m.ctx, m.finance
	return func() tea.Msg {
		p, err := finance.ListTransactions(ctx, page)
		return transactionsMsg{page: p, err: err}
	}
}

func (m mainLoopModel) View() string {
	if m.formOpen {
		return m.form.view()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabDashboard:
		b.WriteString(m.viewDashboard())
	case tabAccounts:
		b.WriteString(m.viewAccounts())
	case tabCategories:
		b.WriteString(m.viewCategories())
	case tabTransactions:
		b.WriteString(m.viewTransactions())
	case tabProfile:
		b.WriteString(m.viewProfile())
	}

	if m.searching {
		b.WriteString("\n\nBuscar: [")
		b.WriteString(m.search.View())
		b.WriteString("]")
	}
	if m.confirmDelete {
		if m.tab == tabProfile {
			b.WriteString("\n\nExcluir sua conta e todos os dados? (s/n)")
		} else {
			b.WriteString("\n\nConfirmar exclusão? (s/n)")
		}
	}
	b.WriteString(statusLines(m.status, m.errMsg))

	return renderPage("FINANCE TRACKER", b.String(), m.hotKeys())
}

func (m mainLoopModel) viewTabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if tab(i) == m.tab {
			parts[i] = activeTabStyle.Render("[" + title + "]")
		} else {
			parts[i] = " " + title + " "
		}
	}
	return strings.Join(parts, " ")
}

func (m mainLoopModel) hotKeys() string {
	base := "tab: aba │ r: recarregar │ ctrl+l: sair da conta │ q: fechar"
	switch m.tab {
	case tabAccounts:
		return "n: nova │ e: editar │ ctrl+d: excluir │ c: copiar número │ " + base
	case tabCategories, tabTransactions:
		return "n: nova │ e: editar │ ctrl+d: excluir │ /: buscar │ ←/→: página │ " + base
	case tabProfile:
		return "e: editar │ ctrl+d: excluir conta │ " + base
	}
	return base
}

func (m mainLoopModel) cursor(i int) string {
	if i == m.idx {
		return ">"
	}
	return " "
}

func (m mainLoopModel) viewDashboard() string {
	if m.dashboard == nil {
		return "Carregando..."
	}
	d := m.dashboard

	var b strings.Builder
	fmt.Fprintf(&b, "Saldo total      │ %s\n", formatMoney(d.TotalBalance))
	fmt.Fprintf(&b, "Total em contas  │ %s\n", formatMoney(d.TotalInAccounts))
	fmt.Fprintf(&b, "Receitas do mês  │ %s\n", incomeStyle.Render(formatMoney(d.MonthlyIncome)))
	fmt.Fprintf(&b, "Despesas do mês  │ %s\n", expenseStyle.Render(formatMoney(d.MonthlyExpenses)))

	b.WriteString("\nDespesas por categoria (mês)\n")
	if len(d.PieData) == 0 {
		b.WriteString("  -\n")
	}
	var top float64
	for _, s := range d.PieData {
		top = max(top, s.Value)
	}
	for _, s := range d.PieData {
		fmt.Fprintf(&b, "  %s %s %s\n", pad(s.Name, 16), pad(formatMoney(s.Value), 14), bar(s.Value, top, 20))
	}

	b.WriteString("\nÚltimos 7 dias        Receitas        Despesas\n")
	for _, p := range d.BarData {
		fmt.Fprintf(&b, "  %s %s %s\n", pad(p.Name, 19), pad(formatMoney(p.Income), 15), formatMoney(p.Expense))
	}

	b.WriteString("\nAno                   Receitas        Despesas\n")
	for _, p := range d.LineData {
		fmt.Fprintf(&b, "  %s %s %s\n", pad(p.Month, 19), pad(formatMoney(p.Income), 15), formatMoney(p.Expense))
	}

	return strings.TrimRight(b.String(), "\n")
}

// bar draws v as a horizontal bar relative to top.
func bar(v, top float64, width int) string {
	if top <= 0 || v <= 0 {
		return ""
	}
	n := int(v / top * float64(width))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func (m mainLoopModel) viewAccounts() string {
	if len(m.accounts) == 0 {
		return "Nenhuma conta cadastrada"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s │ %s │ %s\n", pad("Nome", 20), pad("Número", 20), "Agência")
	for i, a := range m.accounts {
		fmt.Fprintf(&b, "%s %s │ %s │ %s\n", m.cursor(i), pad(a.Name, 20), pad(a.Number, 20), a.Agency)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewCategories() string {
	var b strings.Builder
	if m.categoryQuery.Search != "" {
		fmt.Fprintf(&b, "Busca: %q\n", m.categoryQuery.Search)
	}
	if len(m.categories.Data) == 0 {
		b.WriteString("Nenhuma categoria encontrada")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s │ %s\n", pad("Nome", 20), "Descrição")
	for i, c := range m.categories.Data {
		fmt.Fprintf(&b, "%s %s │ %s\n", m.cursor(i), pad(c.Name, 20), fitText(valueOrDash(c.Description), 40))
	}
	b.WriteString(pageLine(m.categories.Page, m.categories.TotalPages, m.categories.Total))
	return b.String()
}

func (m mainLoopModel) viewTransactions() string {
	var b strings.Builder
	if m.transactionQuery.Search != "" {
		fmt.Fprintf(&b, "Busca: %q\n", m.transactionQuery.Search)
	}
	if len(m.transactions.Data) == 0 {
		b.WriteString("Nenhuma transação encontrada")
		return b.String()
	}

	fmt.Fprintf(&b, "  %s │ %s │ %s │ %s │ %s\n", pad("Data", 10), pad("Valor", 14), pad("Conta", 12), pad("Categoria", 12), "Descrição")
	for i, t := range m.transactions.Data {
		amount := incomeStyle.Render(pad(formatMoney(t.Amount), 14))
		if t.Type == models.Expense {
			amount = expenseStyle.Render(pad(formatMoney(-t.Amount), 14))
		}
		account, category := "-", "-"
		if t.BankAccount != nil {
			account = t.BankAccount.Name
		}
		if t.Category != nil {
			category = t.Category.Name
		}
		fmt.Fprintf(&b, "%s %s │ %s │ %s │ %s │ %s\n", m.cursor(i), pad(formatDate(t.TransactionAt), 10), amount,
			pad(account, 12), pad(category, 12), fitText(valueOrDash(t.Description), 30))
	}
	b.WriteString(pageLine(m.transactions.Page, m.transactions.TotalPages, m.transactions.Total))
	return b.String()
}

func pageLine(page, totalPages, total int) string {
	return fmt.Sprintf("\nPágina %d de %d │ %d registros", page, totalPages, total)
}

func (m mainLoopModel) viewProfile() string {
	if m.profile.UserID == 0 {
		return "Carregando..."
	}
	return fmt.Sprintf("Nome   │ %s\nEmail  │ %s\nDesde  │ %s", m.profile.Name, m.profile.Email, formatDate(m.profile.CreatedAt))
}
