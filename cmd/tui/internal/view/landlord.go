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
	"github.com/rentcredit/rentcredit/internal/tenant"
)

type landlordState int

const (
	landlordStateBrowse landlordState = iota
	landlordStateAdd
	landlordStateSearch
)

var (
	tenantStatusFilters = []tenant.StatusFilter{
		tenant.FilterStatusAll,
		tenant.FilterStatusPaid,
		tenant.FilterStatusLate,
		tenant.FilterStatusPending,
	}

	reportingFilters = []tenant.ReportingFilter{
		tenant.FilterReportingAll,
		tenant.FilterReportingYes,
		tenant.FilterReportingNo,
	}

	graphTypes = []dashboard.GraphType{
		dashboard.GraphLine,
		dashboard.GraphBar,
		dashboard.GraphPie,
	}
)

// LandlordModel is the landlord dashboard: the filterable tenant table with
// confirm-payment, add-tenant, and report export actions.
type LandlordModel struct {
	CommonModel
	svc       *dashboard.Service
	exportSvc *export.Service

	state   landlordState
	table   table.Model
	tenants []*tenant.Tenant
	form    *huh.Form

	statusIdx    int
	reportingIdx int
	graphIdx     int
	search       string

	loading bool
	err     error
	status  string

	// Form bindings
	formName      string
	formRent      string
	formDueDate   string
	formReporting bool
	formSearch    string
}

func NewLandlordModel(svc *dashboard.Service, exportSvc *export.Service) LandlordModel {
	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Rent", Width: 10},
		{Title: "Due Date", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Reporting", Width: 10},
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

	return LandlordModel{
		svc:       svc,
		exportSvc: exportSvc,
		table:     t,
	}
}

func (m LandlordModel) Title() string { return "Landlord Dashboard" }

func (m LandlordModel) ShortHelp() string {
	if m.state != landlordStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | c: confirm payment | a: add tenant | /: search | s: status | f: reporting | g: graph | e: CSV | p: PDF"
}

func (m LandlordModel) Init() tea.Cmd {
	return m.loadTenantsCmd()
}

func (m LandlordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTenantsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.tenants = msg.tenants
		m.refreshTable()
		return m, nil

	case landlordActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.status = msg.ack
		return m, m.loadTenantsCmd()

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
	case landlordStateBrowse:
		return m.updateBrowse(msg)
	case landlordStateAdd, landlordStateSearch:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m LandlordModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTenantsCmd()
		case "c":
			return m, m.confirmPaymentCmd()
		case "a":
			return m.enterAddMode()
		case "/":
			return m.enterSearchMode()
		case "s":
			m.statusIdx = (m.statusIdx + 1) % len(tenantStatusFilters)
			m.applyFilters()
			return m, m.loadTenantsCmd()
		case "f":
			m.reportingIdx = (m.reportingIdx + 1) % len(reportingFilters)
			m.applyFilters()
			return m, m.loadTenantsCmd()
		case "g":
			m.graphIdx = (m.graphIdx + 1) % len(graphTypes)
			if err := m.svc.State().SetGraphType(graphTypes[m.graphIdx]); err != nil {
				m.status = fmt.Sprintf("Error: %v", err)
			}
			return m, nil
		case "e":
			return m, m.exportCmd(".csv")
		case "p":
			return m, m.exportCmd(".pdf")
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m LandlordModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formRent = ""
	m.formDueDate = FormatDate(time.Now())
	m.formReporting = true

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Tenant Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("rent").
				Title("Monthly Rent").
				Placeholder("15000").
				Value(&m.formRent).
				Validate(func(s string) error {
					n, err := strconv.ParseInt(s, 10, 64)
					if err != nil || n <= 0 {
						return fmt.Errorf("rent must be a positive number")
					}
					return nil
				}),

			huh.NewInput().
				Key("due_date").
				Title("Due Date").
				Placeholder("2024-06-10").
				Value(&m.formDueDate).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewConfirm().
				Key("reporting").
				Title("Report to credit bureau?").
				Value(&m.formReporting),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = landlordStateAdd
	m.table.Blur()
	return m, m.form.Init()
}

func (m LandlordModel) enterSearchMode() (tea.Model, tea.Cmd) {
	m.formSearch = m.search

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("search").
				Title("Search by name").
				Placeholder("alice").
				Value(&m.formSearch),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = landlordStateSearch
	m.table.Blur()
	return m, m.form.Init()
}

func (m LandlordModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = landlordStateBrowse
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

	state := m.state
	if state == landlordStateSearch {
		m.formSearch = m.form.GetString("search")
	} else {
		m.formName = m.form.GetString("name")
		m.formRent = m.form.GetString("rent")
		m.formDueDate = m.form.GetString("due_date")
		m.formReporting = m.form.GetBool("reporting")
	}

	m.state = landlordStateBrowse
	m.form = nil
	m.table.Focus()

	if state == landlordStateSearch {
		m.search = m.formSearch
		m.applyFilters()
		return m, m.loadTenantsCmd()
	}

	return m, m.addTenantCmd()
}

func (m *LandlordModel) applyFilters() {
	m.svc.State().SetFilters(tenant.FilterCriteria{
		Search:    m.search,
		Status:    tenantStatusFilters[m.statusIdx],
		Reporting: reportingFilters[m.reportingIdx],
	})
}

func (m LandlordModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading tenants...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	search := m.search
	if search == "" {
		search = "(none)"
	}

	header := fmt.Sprintf(
		"[/] Search: %s | [s] Status: %s | [f] Reporting: %s | [g] Graph: %s",
		activeStyle(search),
		activeStyle(string(tenantStatusFilters[m.statusIdx])),
		activeStyle(string(reportingFilters[m.reportingIdx])),
		activeStyle(string(m.svc.State().GraphType())),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state != landlordStateBrowse && m.form != nil {
		title := "Add Tenant"
		if m.state == landlordStateSearch {
			title = "Search Tenants"
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("%s\n\n%s", title, m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *LandlordModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.tenants))
	for _, t := range m.tenants {
		rows = append(rows, table.Row{
			t.Name,
			FormatAmount(t.Rent),
			FormatDate(t.DueDate),
			string(t.Status),
			FormatReporting(t.Reporting),
		})
	}
	m.table.SetRows(rows)
}

// Messages

type loadTenantsMsg struct {
	tenants []*tenant.Tenant
	err     error
}

func (m LandlordModel) loadTenantsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		tenants, err := m.svc.VisibleTenants(ctx)
		return loadTenantsMsg{tenants: tenants, err: err}
	}
}

type landlordActionMsg struct {
	ack string
	err error
}

func (m LandlordModel) confirmPaymentCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.tenants) {
		return nil
	}

	id := m.tenants[idx].ID

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		result, err := m.svc.ConfirmPayment(ctx, id)
		if err != nil {
			return landlordActionMsg{err: err}
		}

		return landlordActionMsg{ack: result.Ack}
	}
}

func (m LandlordModel) addTenantCmd() tea.Cmd {
	rent, _ := strconv.ParseInt(m.formRent, 10, 64)
	dueDate, _ := time.Parse(time.DateOnly, m.formDueDate)

	params := tenant.CreateParams{
		Name:      m.formName,
		Rent:      rent,
		DueDate:   dueDate,
		Reporting: m.formReporting,
	}

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		result, err := m.svc.AddTenant(ctx, params)
		if err != nil {
			return landlordActionMsg{err: err}
		}

		return landlordActionMsg{ack: result.Ack}
	}
}

type exportDoneMsg struct {
	path string
	err  error
}

func (m LandlordModel) exportCmd(ext string) tea.Cmd {
	crit := m.svc.State().Filters()

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		var (
			d   *export.Download
			err error
		)

		if ext == ".pdf" {
			d, err = m.exportSvc.TenantsPDF(ctx, crit, export.TenantReportName(ext), "Tenant Report")
		} else {
			d, err = m.exportSvc.TenantsCSV(ctx, crit, export.TenantReportName(ext))
		}

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
