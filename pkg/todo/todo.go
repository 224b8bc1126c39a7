// Package todo holds the task model and the per-user task repository.
package todo

import (
	"strings"
	"time"
)

// Task is a single todo item. The JSON field names match the persisted
// blob layout, so lists written by earlier versions of the app load as-is.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// List is one user's tasks in insertion order. Display order is creation
// order: toggle and edit never reorder, add appends, remove drops.
type List []Task

func (l List) clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// nextID returns max existing id + 1, so ids stay unique within a list
// even when tasks are created within the same instant.
func nextID(l List) int64 {
	var max int64
	for _, t := range l {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Add appends a new task. Text that trims to empty is a no-op; otherwise
// the text is stored as given.
func (l List) Add(text string, now time.Time) (List, bool) {
	if strings.TrimSpace(text) == "" {
		return l, false
	}
	t := Task{
		ID:        nextID(l),
		Text:      text,
		CreatedAt: now,
	}
	return append(l.clone(), t), true
}

// ToggleResult reports what a toggle did. Completed marks the false->true
// transition that fires the celebration; reopening does not.
type ToggleResult struct {
	Changed   bool
	Completed bool
}

// Toggle flips the completed flag of the task with the given id.
// An absent id is a no-op, since UI actions may double-fire.
func (l List) Toggle(id int64) (List, ToggleResult) {
	for i, t := range l {
		if t.ID == id {
			out := l.clone()
			out[i].Completed = !t.Completed
			return out, ToggleResult{Changed: true, Completed: out[i].Completed}
		}
	}
	return l, ToggleResult{}
}

// Edit replaces the text of the task with the given id, leaving id,
// completed and createdAt untouched. Empty-after-trim text and absent ids
// are no-ops.
func (l List) Edit(id int64, text string) (List, bool) {
	if strings.TrimSpace(text) == "" {
		return l, false
	}
	for i, t := range l {
		if t.ID == id {
			out := l.clone()
			out[i].Text = text
			return out, true
		}
	}
	return l, false
}

// Remove drops the task with the given id. An absent id is a no-op.
func (l List) Remove(id int64) (List, bool) {
	for i, t := range l {
		if t.ID == id {
			out := make(List, 0, len(l)-1)
			out = append(out, l[:i]...)
			return append(out, l[i+1:]...), true
		}
	}
	return l, false
}

// Active counts tasks not yet completed.
func (l List) Active() int {
	n := 0
	for _, t := range l {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Done counts completed tasks.
func (l List) Done() int {
	return len(l) - l.Active()
}
