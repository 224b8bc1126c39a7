package main

import (
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tudu/internal/ui"
	"tudu/pkg/auth"
	"tudu/pkg/state"
	"tudu/pkg/todo"
)

const (
	headerHeight = 6
	footerHeight = 2
)

type screen int

const (
	screenAuth screen = iota
	screenTasks
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeEdit
)

// celebrationOverMsg resets the confetti after its timer fires.
type celebrationOverMsg struct{}

type app struct {
	machine     *state.Machine
	celebration time.Duration

	screen screen
	mode   mode

	// auth screen
	email    textinput.Model
	password textinput.Model
	signup   bool
	focus    int // 0 email, 1 password

	// tasks screen
	viewport viewport.Model
	input    textinput.Model
	cursor   int

	width       int
	errline     string
	warnline    string
	celebrating bool
}

// newApp builds the TUI model, resuming a persisted session if one exists.
func newApp(machine *state.Machine, celebration time.Duration) *app {
	email := textinput.NewModel()
	email.Prompt = "> "
	email.Placeholder = "you@example.com"
	email.Width = 40
	email.Focus()

	password := textinput.NewModel()
	password.Prompt = "> "
	password.Width = 40
	password.EchoMode = textinput.EchoPassword

	input := textinput.NewModel()
	input.Prompt = "> "
	input.Placeholder = "What do you need to do?"
	input.Width = 50

	a := &app{
		machine:     machine,
		celebration: celebration,
		email:       email,
		password:    password,
		input:       input,
		viewport:    viewport.Model{},
	}
	if eff, ok := machine.Restore(); ok {
		a.screen = screenTasks
		a.warnline = eff.Warning
	}
	return a
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m *app) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
	case celebrationOverMsg:
		m.celebrating = false
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenAuth:
			cmd = m.authKey(msg)
		case screenTasks:
			cmd = m.tasksKey(msg)
		}
	}
	return m, cmd
}

func (m *app) authKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		m.setFocus(1 - m.focus)
		return nil
	case tea.KeyCtrlS:
		m.signup = !m.signup
		m.errline = ""
		return nil
	case tea.KeyEnter:
		m.submitAuth()
		return nil
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return cmd
}

func (m *app) setFocus(i int) {
	m.focus = i
	if i == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.email.Blur()
		m.password.Focus()
	}
}

func (m *app) submitAuth() {
	var cmd state.Command
	if m.signup {
		cmd = state.SignUp{Email: m.email.Value(), Password: m.password.Value()}
	} else {
		cmd = state.SignIn{Email: m.email.Value(), Password: m.password.Value()}
	}
	eff, err := m.machine.Apply(cmd)
	if err != nil {
		if errors.Is(err, state.ErrEmptyField) ||
			errors.Is(err, auth.ErrDuplicateEmail) ||
			errors.Is(err, auth.ErrInvalidCredentials) {
			m.errline = err.Error()
			return
		}
		// store failure, nothing sensible to recover
		check(err)
	}
	m.screen = screenTasks
	m.mode = modeNormal
	m.cursor = 0
	m.errline = ""
	m.warnline = eff.Warning
	m.email.SetValue("")
	m.password.SetValue("")
	m.setFocus(0)
}

func (m *app) tasksKey(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case modeInsert:
		switch msg.Type {
		case tea.KeyEsc:
			m.mode = modeNormal
			return nil
		case tea.KeyEnter:
			_, err := m.machine.Apply(state.AddTask{Text: m.input.Value()})
			check(err)
			m.mode = modeNormal
			m.setCursor(len(m.machine.Tasks()) - 1)
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd

	case modeEdit:
		switch msg.Type {
		case tea.KeyEsc:
			_, err := m.machine.Apply(state.CancelEdit{})
			check(err)
			m.mode = modeNormal
			return nil
		case tea.KeyEnter:
			if id, ok := m.machine.Editing(); ok {
				_, err := m.machine.Apply(state.EditTask{ID: id, Text: m.input.Value()})
				check(err)
			}
			m.mode = modeNormal
			return nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	// modeNormal
	switch msg.String() {
	case "j", "down":
		m.setCursor(m.cursor + 1)
	case "k", "up":
		m.setCursor(m.cursor - 1)
	case "g":
		m.setCursor(0)
	case "G":
		m.setCursor(len(m.machine.Tasks()) - 1)
	case "o":
		m.mode = modeInsert
		m.input.SetValue("")
		m.input.Focus()
	case "i":
		if t, ok := m.atCursor(); ok {
			_, err := m.machine.Apply(state.StartEdit{ID: t.ID})
			check(err)
			m.mode = modeEdit
			m.input.SetValue(t.Text)
			m.input.SetCursor(len(t.Text))
			m.input.Focus()
		}
	case " ", "t":
		if t, ok := m.atCursor(); ok {
			eff, err := m.machine.Apply(state.ToggleTask{ID: t.ID})
			check(err)
			if eff.Completed {
				m.celebrating = true
				return tea.Tick(m.celebration, func(time.Time) tea.Msg {
					return celebrationOverMsg{}
				})
			}
		}
	case "x", tea.KeyDelete.String():
		if t, ok := m.atCursor(); ok {
			_, err := m.machine.Apply(state.DeleteTask{ID: t.ID})
			check(err)
			m.setCursor(m.cursor)
		}
	case "q":
		_, err := m.machine.Apply(state.Logout{})
		check(err)
		m.screen = screenAuth
		m.signup = false
		m.celebrating = false
		m.warnline = ""
	}
	return nil
}

func (m *app) atCursor() (todo.Task, bool) {
	tasks := m.machine.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *app) setCursor(value int) {
	size := len(m.machine.Tasks())
	m.cursor = clamp(value, 0, max(size-1, 0))
	if size == 0 {
		return
	}
	// one line per task, keep the cursor inside the viewport
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = m.cursor + 1 - m.viewport.Height
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.YOffset = m.cursor
	}
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m *app) View() string {
	if m.screen == screenAuth {
		return m.viewAuth()
	}
	return m.viewTasks()
}

func (m *app) viewAuth() string {
	title, subtitle, switchHint := "Welcome Back", "Sign in to continue", "sign up"
	if m.signup {
		title, subtitle, switchHint = "Create Account", "Sign up to organize your life", "sign in"
	}
	s := "\n  " + ui.Title.Render(title) + "\n"
	s += "  " + ui.Subtitle.Render(subtitle) + "\n\n"
	if m.errline != "" {
		s += "  " + ui.Error.Render(m.errline) + "\n\n"
	}
	s += "  " + ui.Label.Render("Email") + "\n"
	s += "  " + m.email.View() + "\n\n"
	s += "  " + ui.Label.Render("Password") + "\n"
	s += "  " + m.password.View() + "\n\n"
	s += "  " + ui.Hint.Render("enter submit ∙ ctrl+s switch to "+switchHint+" ∙ ctrl+c quit") + "\n"
	return s
}

func (m *app) viewTasks() string {
	tasks := m.machine.Tasks()

	header := "\n  " + ui.Title.Render("My Tasks") + "  " + ui.Subtitle.Render(m.machine.Email()) + "\n"
	header += "  " + stat("total", len(tasks)) + "  " + stat("active", tasks.Active()) + "  " + stat("done", tasks.Done()) + "\n\n"

	body := ""
	if len(tasks) == 0 {
		body = "  " + ui.Subtitle.Render("No tasks yet. Add your first task to get started!") + "\n"
	}
	for i, t := range tasks {
		icon := "○"
		title := ui.TaskTitle
		if t.Completed {
			icon = "●"
			title = ui.DoneTaskTitle
		}
		marker := " "
		if m.cursor == i && m.mode == modeNormal {
			marker = ">"
		}
		line := marker + ui.TaskIcon.Render(icon)
		if m.mode == modeEdit && m.cursor == i {
			line += m.input.View()
		} else {
			line += title.Render(t.Text)
		}
		body += line + "\n"
	}
	m.viewport.SetContent(body)

	footer := ""
	switch {
	case m.mode == modeInsert:
		footer = "  " + m.input.View()
	case m.celebrating:
		footer = ui.Confetti(m.width, 1)
	case m.warnline != "":
		footer = "  " + ui.Error.Render(m.warnline) + "\n"
	default:
		footer = "  " + ui.Hint.Render("o add ∙ i edit ∙ space toggle ∙ x delete ∙ j/k move ∙ q logout") + "\n"
	}

	return header + m.viewport.View() + "\n" + footer
}

func stat(label string, n int) string {
	return ui.StatLabel.Render(label+" ") + ui.StatValue.Render(strconv.Itoa(n))
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
