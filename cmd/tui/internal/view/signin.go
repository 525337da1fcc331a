package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rentcredit/rentcredit/internal/session"
)

// SignInModel is the role picker and profile form shown before either
// dashboard opens.
type SignInModel struct {
	CommonModel
	svc *session.Service

	form *huh.Form
	err  error

	formRole  string
	formName  string
	formEmail string
}

func NewSignInModel(svc *session.Service) SignInModel {
	m := SignInModel{svc: svc, formRole: string(session.RoleTenant)}

	if role, user, err := svc.Current(); err == nil {
		m.formRole = string(role)
		m.formName = user.Name
		m.formEmail = user.Email
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("role").
				Title("Role").
				Options(
					huh.NewOption("Tenant", string(session.RoleTenant)),
					huh.NewOption("Landlord", string(session.RoleLandlord)),
				).
				Value(&m.formRole),

			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("you@example.com").
				Value(&m.formEmail),
		),
	).WithWidth(45).WithShowHelp(false)

	return m
}

func (m SignInModel) Title() string { return "Sign In" }

func (m SignInModel) ShortHelp() string { return "Navigate form | Esc: cancel" }

func (m SignInModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	if result, ok := msg.(signInMsg); ok {
		if result.err != nil {
			m.err = result.err
			return m, nil
		}

		return m, Back
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.formRole = m.form.GetString("role")
	m.formName = m.form.GetString("name")
	m.formEmail = m.form.GetString("email")

	return m, m.signInCmd()
}

func (m SignInModel) View() string {
	content := m.form.View()
	if m.err != nil {
		content = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(
			fmt.Sprintf("Error: %v", m.err)) + "\n\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

type signInMsg struct {
	err error
}

func (m SignInModel) signInCmd() tea.Cmd {
	role := session.Role(m.formRole)
	user := session.User{Name: m.formName, Email: m.formEmail}

	return func() tea.Msg {
		ctx, cancel := OpCtx()
		defer cancel()

		_, err := m.svc.SignIn(ctx, role, user)
		return signInMsg{err: err}
	}
}
