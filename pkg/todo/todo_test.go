package todo

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

var now = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestList_Add(t *testing.T) {
	t.Run("appends with fresh id", func(t *testing.T) {
		is := is.New(t)
		l, ok := List{}.Add("Buy milk", now)
		is.True(ok)
		is.Equal(len(l), 1)
		is.Equal(l[0].Text, "Buy milk")
		is.Equal(l[0].Completed, false)
		is.Equal(l[0].CreatedAt, now)
	})

	t.Run("empty text is a no-op", func(t *testing.T) {
		is := is.New(t)
		l, ok := List{}.Add("   ", now)
		is.True(!ok)
		is.Equal(len(l), 0)
	})

	t.Run("ids stay unique even at the same instant", func(t *testing.T) {
		is := is.New(t)
		l := List{}
		for i := 0; i < 10; i++ {
			var ok bool
			l, ok = l.Add("task", now)
			is.True(ok)
		}
		seen := map[int64]bool{}
		for _, task := range l {
			is.True(!seen[task.ID])
			seen[task.ID] = true
		}
	})

	t.Run("ids are not reused after remove", func(t *testing.T) {
		is := is.New(t)
		l, _ := List{}.Add("a", now)
		l, _ = l.Add("b", now)
		last := l[1].ID
		l, _ = l.Remove(l[0].ID)
		l, _ = l.Add("c", now)
		is.True(l[1].ID > last)
	})
}

func TestList_Toggle(t *testing.T) {
	l, _ := List{}.Add("Buy milk", now)
	l, _ = l.Add("Walk dog", now)
	id := l[0].ID

	t.Run("completing reports the completion event", func(t *testing.T) {
		is := is.New(t)
		next, res := l.Toggle(id)
		is.True(res.Changed)
		is.True(res.Completed)
		is.True(next[0].Completed)
		l = next
	})

	t.Run("reopening does not", func(t *testing.T) {
		is := is.New(t)
		next, res := l.Toggle(id)
		is.True(res.Changed)
		is.True(!res.Completed)
		is.True(!next[0].Completed)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		is := is.New(t)
		next, res := l.Toggle(999)
		is.True(!res.Changed)
		is.Equal(next, l)
	})

	t.Run("order is stable", func(t *testing.T) {
		is := is.New(t)
		next, _ := l.Toggle(l[1].ID)
		is.Equal(next[0].Text, "Buy milk")
		is.Equal(next[1].Text, "Walk dog")
	})
}

func TestList_Edit(t *testing.T) {
	l, _ := List{}.Add("Buy milk", now)
	l, _ = l.Toggle(l[0].ID)
	id := l[0].ID

	t.Run("replaces text only", func(t *testing.T) {
		is := is.New(t)
		next, ok := l.Edit(id, "Buy oat milk")
		is.True(ok)
		is.Equal(next[0].Text, "Buy oat milk")
		is.Equal(next[0].ID, id)
		is.Equal(next[0].Completed, true)
		is.Equal(next[0].CreatedAt, now)
	})

	t.Run("empty text is a no-op", func(t *testing.T) {
		is := is.New(t)
		next, ok := l.Edit(id, "  ")
		is.True(!ok)
		is.Equal(next[0].Text, "Buy milk")
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		is := is.New(t)
		_, ok := l.Edit(999, "hello")
		is.True(!ok)
	})
}

func TestList_Remove(t *testing.T) {
	l, _ := List{}.Add("a", now)
	l, _ = l.Add("b", now)
	l, _ = l.Add("c", now)

	t.Run("removes the matching task", func(t *testing.T) {
		is := is.New(t)
		next, ok := l.Remove(l[1].ID)
		is.True(ok)
		is.Equal(len(next), 2)
		is.Equal(next[0].Text, "a")
		is.Equal(next[1].Text, "c")
	})

	t.Run("removing twice equals removing once", func(t *testing.T) {
		is := is.New(t)
		once, _ := l.Remove(l[1].ID)
		twice, ok := once.Remove(l[1].ID)
		is.True(!ok)
		is.Equal(twice, once)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		is := is.New(t)
		_, _ = l.Remove(l[0].ID)
		is.Equal(len(l), 3)
	})
}

func TestList_Counts(t *testing.T) {
	is := is.New(t)

	l, _ := List{}.Add("a", now)
	l, _ = l.Add("b", now)
	l, _ = l.Toggle(l[0].ID)
	is.Equal(l.Active(), 1)
	is.Equal(l.Done(), 1)
}
