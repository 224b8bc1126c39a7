// Package state is the application state machine. It owns the current
// session and task list, and is the only place business rules live:
// repositories below it are pure data access, the UI above it only turns
// key presses into commands.
package state

import (
	"errors"
	"fmt"
	"time"

	"tudu/pkg/auth"
	"tudu/pkg/kv"
	"tudu/pkg/session"
	"tudu/pkg/todo"
)

var (
	// ErrEmptyField is returned when email or password is blank.
	ErrEmptyField = errors.New("please fill in all fields")
	// ErrNotSignedIn is returned for task commands outside a session.
	ErrNotSignedIn = errors.New("not signed in")
)

// Command is a discrete user action consumed by Apply.
type Command interface{ isCommand() }

type (
	// SignUp registers a new account and signs it in.
	SignUp struct{ Email, Password string }
	// SignIn authenticates an existing account.
	SignIn struct{ Email, Password string }
	// Logout ends the session and clears in-memory task state.
	Logout struct{}
	// AddTask appends a task to the signed-in user's list.
	AddTask struct{ Text string }
	// ToggleTask flips a task's completed flag.
	ToggleTask struct{ ID int64 }
	// EditTask replaces a task's text and ends any in-progress edit.
	EditTask struct {
		ID   int64
		Text string
	}
	// DeleteTask removes a task.
	DeleteTask struct{ ID int64 }
	// StartEdit marks a task as being edited. In-memory only.
	StartEdit struct{ ID int64 }
	// CancelEdit clears the editing mark. In-memory only.
	CancelEdit struct{}
)

func (SignUp) isCommand()     {}
func (SignIn) isCommand()     {}
func (Logout) isCommand()     {}
func (AddTask) isCommand()    {}
func (ToggleTask) isCommand() {}
func (EditTask) isCommand()   {}
func (DeleteTask) isCommand() {}
func (StartEdit) isCommand()  {}
func (CancelEdit) isCommand() {}

// Effect reports side effects of a command the caller may react to.
type Effect struct {
	// Completed is set on a false->true toggle: the celebration event.
	Completed bool
	// Warning carries non-fatal trouble, e.g. a stored list that was
	// unreadable and has been reset to empty.
	Warning string
}

// Machine mediates every mutation between the UI and the repositories.
// It is either unauthenticated (no email, no list) or authenticated.
type Machine struct {
	accounts *auth.Repo
	sessions *session.Manager
	tasks    *todo.Repo

	email     string
	list      todo.List
	editingID int64
	editing   bool

	now func() time.Time
}

// New wires a machine over a single store.
func New(store kv.Store) *Machine {
	return &Machine{
		accounts: auth.NewRepo(store, nil),
		sessions: session.NewManager(store),
		tasks:    todo.NewRepo(store),
		now:      time.Now,
	}
}

// Restore resumes a persisted session, if any. The session blob is
// trusted without re-checking credentials, matching the stored layout.
func (m *Machine) Restore() (Effect, bool) {
	s, ok := m.sessions.Restore()
	if !ok {
		return Effect{}, false
	}
	return m.signedIn(s.Email), true
}

// SignedIn reports whether a session is active.
func (m *Machine) SignedIn() bool { return m.email != "" }

// Email returns the signed-in user's email, or "".
func (m *Machine) Email() string { return m.email }

// Tasks returns the current in-memory task list.
func (m *Machine) Tasks() todo.List { return m.list }

// Editing returns the id being edited, if any.
func (m *Machine) Editing() (int64, bool) { return m.editingID, m.editing }

// Apply runs one command. On error the machine's state is unchanged.
func (m *Machine) Apply(cmd Command) (Effect, error) {
	switch c := cmd.(type) {
	case SignUp:
		if c.Email == "" || c.Password == "" {
			return Effect{}, ErrEmptyField
		}
		if err := m.accounts.Create(c.Email, c.Password); err != nil {
			return Effect{}, err
		}
		if err := m.sessions.Start(c.Email); err != nil {
			return Effect{}, err
		}
		return m.signedIn(c.Email), nil

	case SignIn:
		if c.Email == "" || c.Password == "" {
			return Effect{}, ErrEmptyField
		}
		if err := m.accounts.Verify(c.Email, c.Password); err != nil {
			return Effect{}, err
		}
		if err := m.sessions.Start(c.Email); err != nil {
			return Effect{}, err
		}
		return m.signedIn(c.Email), nil

	case Logout:
		if err := m.sessions.End(); err != nil {
			return Effect{}, err
		}
		m.email = ""
		m.list = nil
		m.editing = false
		m.editingID = 0
		return Effect{}, nil

	case AddTask:
		if !m.SignedIn() {
			return Effect{}, ErrNotSignedIn
		}
		next, changed := m.list.Add(c.Text, m.now())
		return Effect{}, m.commit(next, changed)

	case ToggleTask:
		if !m.SignedIn() {
			return Effect{}, ErrNotSignedIn
		}
		next, res := m.list.Toggle(c.ID)
		if err := m.commit(next, res.Changed); err != nil {
			return Effect{}, err
		}
		return Effect{Completed: res.Completed}, nil

	case EditTask:
		if !m.SignedIn() {
			return Effect{}, ErrNotSignedIn
		}
		next, changed := m.list.Edit(c.ID, c.Text)
		if err := m.commit(next, changed); err != nil {
			return Effect{}, err
		}
		if changed {
			m.editing = false
			m.editingID = 0
		}
		return Effect{}, nil

	case DeleteTask:
		if !m.SignedIn() {
			return Effect{}, ErrNotSignedIn
		}
		next, changed := m.list.Remove(c.ID)
		return Effect{}, m.commit(next, changed)

	case StartEdit:
		if !m.SignedIn() {
			return Effect{}, ErrNotSignedIn
		}
		m.editingID = c.ID
		m.editing = true
		return Effect{}, nil

	case CancelEdit:
		if !m.SignedIn() {
			return Effect{}, ErrNotSignedIn
		}
		m.editing = false
		m.editingID = 0
		return Effect{}, nil
	}
	return Effect{}, fmt.Errorf("unknown command %T", cmd)
}

// signedIn loads the user's list and enters the authenticated state.
// An unreadable blob resets to empty and surfaces as a warning, not an
// error: losing the list must not lock the user out.
func (m *Machine) signedIn(email string) Effect {
	list, err := m.tasks.Load(email)
	var eff Effect
	if errors.Is(err, todo.ErrCorruptBlob) {
		eff.Warning = "stored tasks were unreadable and have been reset"
	}
	m.email = email
	m.list = list
	m.editing = false
	m.editingID = 0
	return eff
}

// commit persists the new list if anything changed. The in-memory list is
// only swapped once the write succeeds.
func (m *Machine) commit(next todo.List, changed bool) error {
	if !changed {
		return nil
	}
	if err := m.tasks.Save(m.email, next); err != nil {
		return err
	}
	m.list = next
	return nil
}
