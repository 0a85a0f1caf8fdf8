package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-campus-login/internal/app"
	"github.com/MKhiriev/go-campus-login/internal/service"
	"github.com/MKhiriev/go-campus-login/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit marks a quit initiated by the user, as opposed to a program
// failure. Callers treat it as a clean exit.
var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenHistory
	screenDetail
	screenAbout
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.BuildInfo

	currentScreen screen

	welcome welcomeModel
	login   loginFormModel
	history historyModel
	detail  detailModel

	// savedCredential mirrors the vault content for form prefill and the
	// welcome hint. The vault itself stays authoritative.
	savedCredential   models.Credential
	pendingCredential models.Credential
	pendingRemember   bool

	err          error
	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.BuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		buildInfo:     buildInfo,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginFormModel(models.Credential{}),
		history:       newHistoryModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadSavedCredential()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdClearCredential()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
			}
			return m, nil
		}
	case savedCredentialMsg:
		if msg.err != nil {
			// An empty vault is the normal first-run state.
			if !errors.Is(msg.err, service.ErrNoSavedCredential) {
				m.showErrorf(humanizeVaultError(msg.err))
			}
			return m, nil
		}
		m.savedCredential = msg.credential
		m.welcome.savedUser = msg.credential.Username
		return m, nil
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.login.status = outcomeMessage(msg.outcome)
		m.login.failed = !msg.outcome.Succeeded()
		if msg.outcome.Succeeded() && m.pendingRemember {
			m.savedCredential = m.pendingCredential
			m.welcome.savedUser = m.savedCredential.Username
		}
		return m, nil
	case historyLoadedMsg:
		m.history.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.history.attempts = msg.attempts
		if m.history.idx >= len(m.history.attempts) {
			m.history.idx = len(m.history.attempts) - 1
		}
		if m.history.idx < 0 {
			m.history.idx = 0
		}
		return m, nil
	case credentialClearedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.savedCredential = models.Credential{}
		m.welcome.savedUser = ""
		m.welcome.status = "Saved credential cleared."
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.welcome.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenAbout:
		return m.updateAbout(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenHistory:
		body = m.history.View()
	case screenDetail:
		body = m.detail.View()
	case screenAbout:
		body = renderBuildInfoWindow(m.buildInfo)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.welcome.idx {
		case 0:
			m.login = newLoginFormModel(m.savedCredential)
			m.currentScreen = screenLogin
		case 1:
			m.history = newHistoryModel()
			m.currentScreen = screenHistory
			return m, tea.Batch(m.history.spinner.Tick, m.cmdLoadHistory())
		case 2:
			m.currentScreen = screenAbout
		}
	case key.Matches(keyMsg, keys.clear):
		if m.savedCredential.IsZero() {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = m.savedCredential.Username
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.forceQuit):
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(msg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(msg, keys.space):
			if m.login.focus == rememberFocus {
				m.login.remember = !m.login.remember
				return m, nil
			}
		case key.Matches(msg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			credential := m.login.credential()
			if credential.Username == "" || credential.Password == "" {
				m.showErrorf(app.MsgEnterBothFields)
				return m, nil
			}
			m.login.submitting = true
			m.login.status = ""
			m.pendingCredential = credential
			m.pendingRemember = m.login.remember
			return m, tea.Batch(m.login.spinner.Tick, m.cmdLogin(credential, m.login.remember))
		}
	case spinner.TickMsg:
		if m.login.submitting {
			var cmd tea.Cmd
			m.login.spinner, cmd = m.login.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.login.focus < rememberFocus {
		var cmd tea.Cmd
		m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.history.idx > 0 {
				m.history.idx--
			}
		case key.Matches(msg, keys.down):
			if m.history.idx < len(m.history.attempts)-1 {
				m.history.idx++
			}
		case key.Matches(msg, keys.enter):
			attempt, ok := m.history.current()
			if !ok {
				return m, nil
			}
			m.detail = detailModel{attempt: attempt}
			m.currentScreen = screenDetail
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenWelcome
		case key.Matches(msg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.history.loading {
			var cmd tea.Cmd
			m.history.spinner, cmd = m.history.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHistory
	case key.Matches(keyMsg, keys.copyUser):
		if m.detail.attempt.Username == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.attempt.Username)
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAbout(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenWelcome
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdLoadSavedCredential() tea.Cmd {
	ctx := m.ctx
	svc := m.services.LoginService
	return func() tea.Msg {
		credential, err := svc.SavedCredential(ctx)
		return savedCredentialMsg{credential: credential, err: err}
	}
}

func (m appModel) cmdLogin(credential models.Credential, remember bool) tea.Cmd {
	ctx := m.ctx
	svc := m.services.LoginService
	return func() tea.Msg {
		outcome, err := svc.Login(ctx, credential, remember)
		return loginDoneMsg{outcome: outcome, err: err}
	}
}

func (m appModel) cmdLoadHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services.JournalService
	return func() tea.Msg {
		attempts, err := svc.RecentAttempts(ctx, historyLimit)
		return historyLoadedMsg{attempts: attempts, err: err}
	}
}

func (m appModel) cmdClearCredential() tea.Cmd {
	ctx := m.ctx
	svc := m.services.LoginService
	return func() tea.Msg {
		err := svc.ClearCredential(ctx)
		return credentialClearedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginFormModel) loginFormModel {
	if m.focus < rememberFocus {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + 1) % (rememberFocus + 1)
	if m.focus < rememberFocus {
		m.inputs[m.focus].Focus()
	}
	return m
}

func focusPrevLogin(m loginFormModel) loginFormModel {
	if m.focus < rememberFocus {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus - 1 + rememberFocus + 1) % (rememberFocus + 1)
	if m.focus < rememberFocus {
		m.inputs[m.focus].Focus()
	}
	return m
}
