package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/rentcredit/rentcredit/cmd/tui/internal/view"
	"github.com/rentcredit/rentcredit/internal/config"
	"github.com/rentcredit/rentcredit/internal/dashboard"
	"github.com/rentcredit/rentcredit/internal/export"
	"github.com/rentcredit/rentcredit/internal/payment"
	paymentStore "github.com/rentcredit/rentcredit/internal/payment/store"
	"github.com/rentcredit/rentcredit/internal/session"
	sessionStore "github.com/rentcredit/rentcredit/internal/session/store"
	"github.com/rentcredit/rentcredit/internal/tenant"
	tenantStore "github.com/rentcredit/rentcredit/internal/tenant/store"
)

type model struct {
	dashboardService *dashboard.Service
	exportService    *export.Service
	sessionService   *session.Service

	currentView View

	signInView   view.SignInModel
	landlordView view.LandlordModel
	tenantView   view.TenantModel
}

type View int

const (
	ViewMenu     View = 0
	ViewSignIn   View = 1
	ViewLandlord View = 2
	ViewTenant   View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sessStore, err := sessionStore.New(cfg.Session.DBPath)
	if err != nil {
		slog.Error("failed to open session store", "error", err)
		os.Exit(1)
	}

	sessionSvc, err := session.NewService(context.Background(), sessStore, cfg.Session.Secret)
	if err != nil {
		slog.Error("failed to load session", "error", err)
		os.Exit(1)
	}

	tenantSvc := tenant.NewService(tenantStore.Seeded())
	paymentSvc := payment.NewService(paymentStore.Seeded())
	dashSvc := dashboard.NewService(tenantSvc, paymentSvc, dashboard.NewState())
	exportSvc := export.NewService(tenantSvc, paymentSvc, cfg.Export.Dir)

	return model{
		dashboardService: dashSvc,
		exportService:    exportSvc,
		sessionService:   sessionSvc,
		currentView:      ViewMenu,
		signInView:       view.NewSignInModel(sessionSvc),
		landlordView:     view.NewLandlordModel(dashSvc, exportSvc),
		tenantView:       view.NewTenantModel(dashSvc, exportSvc, sessionSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewSignIn
				m.signInView = view.NewSignInModel(m.sessionService)

				return m, m.signInView.Init()
			case "2":
				m.currentView = ViewLandlord
				m.landlordView = view.NewLandlordModel(m.dashboardService, m.exportService)

				return m, m.landlordView.Init()
			case "3":
				m.currentView = ViewTenant
				m.tenantView = view.NewTenantModel(m.dashboardService, m.exportService, m.sessionService)

				return m, m.tenantView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewSignIn:
		var newModel tea.Model
		newModel, cmd = m.signInView.Update(msg)
		m.signInView = newModel.(view.SignInModel)
	case ViewLandlord:
		var newModel tea.Model
		newModel, cmd = m.landlordView.Update(msg)
		m.landlordView = newModel.(view.LandlordModel)
	case ViewTenant:
		var newModel tea.Model
		newModel, cmd = m.tenantView.Update(msg)
		m.tenantView = newModel.(view.TenantModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		signedIn := "not signed in"
		if role, user, err := m.sessionService.Current(); err == nil {
			signedIn = user.Name + " (" + string(role) + ")"
		}

		return lipgloss.NewStyle().Padding(2).Render(
			"RentCredit TUI\n\n" +
				"Signed in as: " + signedIn + "\n\n" +
				"1. Sign In\n" +
				"2. Landlord Dashboard\n" +
				"3. Tenant Dashboard\n\n" +
				"q. Quit",
		)
	case ViewSignIn:
		return m.signInView.View()
	case ViewLandlord:
		return m.landlordView.View()
	case ViewTenant:
		return m.tenantView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
