package main

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/api"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/control"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/feed"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/client/session"
	"github.com/Atgsasakazh5/bulletinboard-app/internal/config"
)

type appState int

const (
	stateSetup appState = iota
	stateFeed
	stateLogin
	stateSignup
	stateCompose
	stateEdit
	stateConfirm
)

// env wires the client stack together. The TUI and the one-shot subcommands
// share it so both drive the exact same controllers.
type env struct {
	cfg       *config.Config
	store     session.Store
	client    *api.Client
	sync      *feed.Synchronizer
	auth      *control.Auth
	mutations *control.Mutations
	edit      *control.EditSession
}

func newEnv(cfg *config.Config) (*env, error) {
	path, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}
	store := session.NewFileStore(path)
	client := api.New(cfg.ServerURL, cfg.Timeout)
	sync := feed.NewSynchronizer(client, store)
	mut := control.NewMutations(client, store, sync.Refresh)

	return &env{
		cfg:       cfg,
		store:     store,
		client:    client,
		sync:      sync,
		auth:      control.NewAuth(client, store),
		mutations: mut,
		edit:      control.NewEditSession(mut),
	}, nil
}

type model struct {
	state appState
	env   *env

	view   feed.View
	cursor int

	serverInput textinput.Model
	userInput   textinput.Model
	passInput   textinput.Model
	focus       int

	compose     textarea.Model
	editAuthor  textinput.Model
	editContent textarea.Model

	confirmID int64

	notice   string
	errText  string
	pending  bool // one request at a time per user action
	quitting bool
}

type feedMsg struct {
	view feed.View
}

type loginDoneMsg struct {
	err error
}

type signupDoneMsg struct {
	err error
}

type mutationDoneMsg struct {
	op   string
	view feed.View
	err  error
}

func initialModel(e *env) model {
	si := textinput.New()
	si.Placeholder = config.DefaultServerURL
	si.CharLimit = 156
	si.Width = 50

	ui := textinput.New()
	ui.Placeholder = "username"
	ui.CharLimit = 64
	ui.Width = 40

	pi := textinput.New()
	pi.Placeholder = "password"
	pi.EchoMode = textinput.EchoPassword
	pi.EchoCharacter = '*'
	pi.CharLimit = 128
	pi.Width = 40

	ca := textarea.New()
	ca.Placeholder = "What's on your mind?"
	ca.SetWidth(56)
	ca.SetHeight(4)

	ea := textinput.New()
	ea.CharLimit = 64
	ea.Width = 40

	ec := textarea.New()
	ec.SetWidth(56)
	ec.SetHeight(4)

	m := model{
		env:         e,
		serverInput: si,
		userInput:   ui,
		passInput:   pi,
		compose:     ca,
		editAuthor:  ea,
		editContent: ec,
	}

	if e == nil {
		m.state = stateSetup
		m.serverInput.Focus()
	} else {
		m.state = stateFeed
	}
	return m
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.state == stateSetup {
		cmds = append(cmds, textinput.Blink)
	} else {
		cmds = append(cmds, m.refreshCmd())
	}
	return tea.Batch(cmds...)
}

func (m *model) refreshCmd() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		return feedMsg{view: e.sync.Refresh(context.Background())}
	}
}

func (m *model) loginCmd(username, password string) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		return loginDoneMsg{err: e.auth.Login(context.Background(), username, password)}
	}
}

func (m *model) signupCmd(username, password string) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		return signupDoneMsg{err: e.auth.Signup(context.Background(), username, password)}
	}
}

func (m *model) createCmd(author, content string) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		view, err := e.mutations.Create(context.Background(), author, content)
		return mutationDoneMsg{op: "create", view: view, err: err}
	}
}

func (m *model) submitEditCmd() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		view, err := e.edit.Submit(context.Background())
		return mutationDoneMsg{op: "update", view: view, err: err}
	}
}

func (m *model) deleteCmd(id int64) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		view, err := e.mutations.Delete(context.Background(), id)
		return mutationDoneMsg{op: "delete", view: view, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case feedMsg:
		m.view = msg.view
		m.pending = false
		if m.cursor >= len(m.view.Items) {
			m.cursor = max(0, len(m.view.Items)-1)
		}
		return m, nil

	case loginDoneMsg:
		m.pending = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.notice = "Logged in."
		m.userInput.Reset()
		m.passInput.Reset()
		m.state = stateFeed
		// Full refresh: ownership must be recomputed under the new identity.
		return m, m.refreshCmd()

	case signupDoneMsg:
		m.pending = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.notice = "Registered. Please log in."
		m.passInput.Reset()
		m.focus = 0
		m.userInput.Focus()
		m.passInput.Blur()
		m.state = stateLogin
		return m, textinput.Blink

	case mutationDoneMsg:
		m.pending = false
		if msg.err != nil {
			// Stay where we are: the compose form or edit modal keeps its
			// contents so the user can retry.
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		m.view = msg.view
		if m.cursor >= len(m.view.Items) {
			m.cursor = max(0, len(m.view.Items)-1)
		}
		switch msg.op {
		case "create":
			m.notice = "Posted."
			m.compose.Reset()
		case "update":
			m.notice = "Post updated."
		case "delete":
			m.notice = "Post deleted."
		}
		m.state = stateFeed
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case error:
		m.errText = msg.Error()
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateSetup:
		return m.handleSetupKey(msg)
	case stateFeed:
		return m.handleFeedKey(msg)
	case stateLogin, stateSignup:
		return m.handleAuthKey(msg)
	case stateCompose:
		return m.handleComposeKey(msg)
	case stateEdit:
		return m.handleEditKey(msg)
	case stateConfirm:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		url := m.serverInput.Value()
		if url == "" {
			url = config.DefaultServerURL
		}
		cfg := config.Default()
		cfg.ServerURL = url
		if err := config.Save(cfg); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		e, err := newEnv(cfg)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.env = e
		m.errText = ""
		m.state = stateFeed
		return m, m.refreshCmd()
	}

	var cmd tea.Cmd
	m.serverInput, cmd = m.serverInput.Update(msg)
	return m, cmd
}

func (m model) handleFeedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, loggedIn := m.env.store.Get()

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.view.Items)-1 {
			m.cursor++
		}

	case "r":
		m.notice = ""
		return m, m.refreshCmd()

	case "l":
		if !loggedIn {
			m.notice = ""
			m.errText = ""
			m.focus = 0
			m.userInput.Focus()
			m.passInput.Blur()
			m.state = stateLogin
			return m, textinput.Blink
		}

	case "s":
		if !loggedIn {
			m.notice = ""
			m.errText = ""
			m.focus = 0
			m.userInput.Focus()
			m.passInput.Blur()
			m.state = stateSignup
			return m, textinput.Blink
		}

	case "o":
		if loggedIn {
			if err := m.env.auth.Logout(); err != nil {
				m.errText = err.Error()
				return m, nil
			}
			m.notice = "Logged out."
			m.errText = ""
			return m, m.refreshCmd()
		}

	case "n":
		if loggedIn {
			m.notice = ""
			m.errText = ""
			m.compose.Focus()
			m.state = stateCompose
			return m, textarea.Blink
		}

	case "e":
		if item, ok := m.selected(); ok && item.CanMutate {
			m.env.edit.Open(item.Post)
			m.editAuthor.SetValue(item.Post.AuthorUsername)
			m.editContent.SetValue(item.Post.Content)
			m.editAuthor.Blur()
			m.editContent.Focus()
			m.focus = 1
			m.notice = ""
			m.errText = ""
			m.state = stateEdit
			return m, textarea.Blink
		}

	case "d":
		if item, ok := m.selected(); ok && item.CanMutate {
			m.confirmID = item.Post.ID
			m.notice = ""
			m.errText = ""
			m.state = stateConfirm
		}
	}

	return m, nil
}

func (m model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.errText = ""
		m.userInput.Blur()
		m.passInput.Blur()
		m.state = stateFeed
		return m, nil

	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.focus = (m.focus + 1) % 2
		if m.focus == 0 {
			m.userInput.Focus()
			m.passInput.Blur()
		} else {
			m.userInput.Blur()
			m.passInput.Focus()
		}
		return m, textinput.Blink

	case tea.KeyEnter:
		if m.pending {
			return m, nil
		}
		username := m.userInput.Value()
		password := m.passInput.Value()
		if username == "" || password == "" {
			m.errText = "username and password are required"
			return m, nil
		}
		m.pending = true
		m.errText = ""
		if m.state == stateLogin {
			return m, m.loginCmd(username, password)
		}
		return m, m.signupCmd(username, password)
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.userInput, cmd = m.userInput.Update(msg)
	} else {
		m.passInput, cmd = m.passInput.Update(msg)
	}
	return m, cmd
}

func (m model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Content is kept; reopening the form resumes the draft.
		m.compose.Blur()
		m.state = stateFeed
		return m, nil

	case "ctrl+s":
		if m.pending {
			return m, nil
		}
		id, ok := m.env.store.Get()
		if !ok {
			m.errText = control.ErrNotLoggedIn.Error()
			return m, nil
		}
		if m.compose.Value() == "" {
			m.errText = "post content is empty"
			return m, nil
		}
		m.pending = true
		m.errText = ""
		// The author is always the logged-in user, same as the read-only
		// author field in the original form.
		return m, m.createCmd(id.Username, m.compose.Value())
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.env.edit.Cancel()
		m.editAuthor.Blur()
		m.editContent.Blur()
		m.errText = ""
		m.state = stateFeed
		return m, nil

	case "tab", "shift+tab":
		m.focus = (m.focus + 1) % 2
		if m.focus == 0 {
			m.editAuthor.Focus()
			m.editContent.Blur()
			return m, textinput.Blink
		}
		m.editAuthor.Blur()
		m.editContent.Focus()
		return m, textarea.Blink

	case "ctrl+s":
		if m.pending {
			return m, nil
		}
		m.env.edit.Update(m.editAuthor.Value(), m.editContent.Value())
		m.pending = true
		m.errText = ""
		return m, m.submitEditCmd()
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.editAuthor, cmd = m.editAuthor.Update(msg)
	} else {
		m.editContent, cmd = m.editContent.Update(msg)
	}
	return m, cmd
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.pending {
			return m, nil
		}
		m.pending = true
		m.errText = ""
		m.state = stateFeed
		return m, m.deleteCmd(m.confirmID)

	case "n", "esc":
		m.confirmID = 0
		m.state = stateFeed
	}
	return m, nil
}

func (m model) selected() (feed.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Items) {
		return feed.Item{}, false
	}
	return m.view.Items[m.cursor], true
}
