package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rentcredit/rentcredit/internal/dashboard"
	"github.com/rentcredit/rentcredit/internal/export"
	"github.com/rentcredit/rentcredit/internal/payment"
	"github.com/rentcredit/rentcredit/internal/session"
)

type tenantState int

const (
	tenantStateBrowse tenantState = iota
	tenantStateAdd
)

var paymentFilters = []payment.StatusFilter{
	payment.FilterAll,
	payment.FilterPaid,
	payment.FilterLate,
	payment.FilterPending,
}

// TenantModel is the tenant dashboard: the rent payment history with
// pay-now, add-payment, and report export actions.
type TenantModel struct {
	CommonModel
	svc        *dashboard.Service
	exportSvc  *export.Service
	sessionSvc *session.Service

	state    tenantState
	table    table.Model
	payments []*payment.Payment
	form     *huh.Form

	filterIdx int
	loading   bool
	err       error
	status    string

	// Form bindings
	formMonth  string
	formYear   string
	formAmount string
	formDate   string
}

func NewTenantModel(svc *dashboard.Service, exportSvc *export.Service, sessionSvc *session.Service) TenantModel {
	columns := []table.Column{
		{Title: "Month", Width: 12},
		{Title: "Year", Width: 6},
		{Title: "Amount", Width: 10},
		{Title: "Status", Width: 10},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TenantModel{
		svc:        svc,
		exportSvc:  exportSvc,
		sessionSvc: sessionSvc,
		table:      t,
	}
}

func (m TenantModel) Title() string { return "Tenant Dashboard" }

func (m TenantModel) ShortHelp() string {
	if m.state == tenantStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | p: pay now | a: add payment | s: filter | e: CSV | c: credit summary PDF | r: refresh"
}

func (m TenantModel) Init() tea.Cmd {
	return m.loadPaymentsCmd()
}

func (m TenantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPaymentsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.payments = msg.payments
		m.refreshTable()
		return m, nil

	case tenantActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.status = msg.ack
		return m, m.loadPaymentsCmd()

	case exportDoneMsg:
		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("Export failed: %v", msg.err)
		case msg.path == "":
			m.status = "Nothing to export"
		default:
			m.status = fmt.Sprintf("Saved %s", msg.path)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case tenantStateBrowse:
		return m.updateBrowse(msg)
	case tenantStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TenantModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadPaymentsCmd()
		case "p":
			return m, m.payNextCmd()
		case "a":
			return m.enterAddMode()
		case "s":
			m.filterIdx = (m.filterIdx + 1) % len(paymentFilters)
			m.svc.State().SetPaymentFilter(paymentFilters[m.filterIdx])
			return m, m.loadPaymentsCmd()
		case "e":
			return m, m.exportHistoryCmd()
		case "c":
			return m, m.exportSummaryCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TenantModel) enterAddMode() (tea.Model, tea.Cmd) {
	now := time.Now()
	m.formMonth = now.Format("January")
	m.formYear = strconv.Itoa(now.Year())
	m.formAmount = ""
	m.formDate = FormatDate(now)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("month").
				Title("Month").
				Placeholder("June").
				Value(&m.formMonth).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("month cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("year").
				Title("Year").
				Value(&m.formYear).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(s); err != nil {
						return fmt.Errorf("year must be a number")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("15000").
				Value(&m.formAmount).
				Validate(func(s string) error {
					n, err := strconv.ParseInt(s, 10, 64)
					if err != nil || n <= 0 {
						return fmt.Errorf("amount must be a positive number")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Due Date").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = tenantStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m TenantModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = tenantStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.formMonth = m.form.GetString("month")
	m.formYear = m.form.GetString("year")
	m.formAmount = m.form.GetString("amount")
	m.formDate = m.form.GetString("date")

	m.state = tenantStateBrowse
	m.form = nil
	m.table.Focus()

	return m, m.addPaymentCmd()
}

func (m TenantModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading payments...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("[s] Filter: %s", activeStyle(string(paymentFilters[m.filterIdx])))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == tenantStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Add Payment\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *TenantModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.payments))
	for _, p := range m.payments {
		rows = append(rows, table.Row{
			p.Month,
			strconv.Itoa(p.Year),
			FormatAmount(p.Amount),
			string(p.Status),
			FormatDate(p.Date),
		})
	}
	m.table.SetRows(rows)
}

// userSlug names export files after the signed-in user, falling back to a
// generic label when nobody is signed in.
func (m TenantModel) userSlug() string {
	_, user, err := m.sessionSvc.Current()
	if err != nil {
		return "tenant"
	}

	return strings.ToLower(strings.ReplaceAll(user.Name, " ", "-"))
}

// Messages

type loadPaymentsMsg struct {
	payments []*payment.Payment
	err      error
}

func (m TenantModel) loadPaymentsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		payments, err := m.svc.VisiblePayments(ctx)
		return loadPaymentsMsg{payments: payments, err: err}
	}
}

type tenantActionMsg struct {
	ack string
	err error
}

func (m TenantModel) payNextCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		result, err := m.svc.PayNext(ctx)
		if err != nil {
			return tenantActionMsg{err: err}
		}

		return tenantActionMsg{ack: result.Ack}
	}
}

func (m TenantModel) addPaymentCmd() tea.Cmd {
	year, _ := strconv.Atoi(m.formYear)
	amount, _ := strconv.ParseInt(m.formAmount, 10, 64)
	date, _ := time.Parse(time.DateOnly, m.formDate)

	params := payment.CreateParams{
		Month:  m.formMonth,
		Year:   year,
		Amount: amount,
		Date:   date,
	}

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		result, err := m.svc.AddPayment(ctx, params)
		if err != nil {
			return tenantActionMsg{err: err}
		}

		return tenantActionMsg{ack: result.Ack}
	}
}

func (m TenantModel) exportHistoryCmd() tea.Cmd {
	filter := paymentFilters[m.filterIdx]
	user := m.userSlug()

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		d, err := m.exportSvc.PaymentsCSV(ctx, filter, export.RentHistoryName(user))
		if err != nil {
			return exportDoneMsg{err: err}
		}

		if d == nil {
			return exportDoneMsg{}
		}

		path, err := m.exportSvc.Save(d)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		return exportDoneMsg{path: path}
	}
}

func (m TenantModel) exportSummaryCmd() tea.Cmd {
	user := m.userSlug()

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		payments, err := m.svc.Payments().List(ctx, payment.FilterAll)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		d, err := m.exportSvc.SummaryPDF(
			"Credit Health Summary",
			creditSummary(payments),
			export.CreditSummaryName(user),
		)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		path, err := m.exportSvc.Save(d)
		if err != nil {
			return exportDoneMsg{err: err}
		}

		return exportDoneMsg{path: path}
	}
}

// creditSummary renders the payment history as the text block of the credit
// health report.
func creditSummary(payments []*payment.Payment) string {
	var paid, late, pending int
	var totalPaid int64

	for _, p := range payments {
		switch p.Status {
		case payment.StatusPaid:
			paid++
			totalPaid += p.Amount
		case payment.StatusLate:
			late++
		case payment.StatusPending:
			pending++
		}
	}

	lines := []string{
		fmt.Sprintf("Payments on record: %d", len(payments)),
		fmt.Sprintf("Paid on time: %d", paid),
		fmt.Sprintf("Late: %d", late),
		fmt.Sprintf("Pending: %d", pending),
		fmt.Sprintf("Total rent reported: ₹%d", totalPaid),
	}

	return strings.Join(lines, "\n")
}
