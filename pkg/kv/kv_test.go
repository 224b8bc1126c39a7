package kv

import (
	"os"
	"path"
	"testing"

	"github.com/matryer/is"
)

func TestMemory(t *testing.T) {
	is := is.New(t)

	s := NewMemory()
	_, ok := s.Get("users")
	is.True(!ok)

	is.NoErr(s.Set("users", `{}`))
	v, ok := s.Get("users")
	is.True(ok)
	is.Equal(v, `{}`)

	is.NoErr(s.Remove("users"))
	_, ok = s.Get("users")
	is.True(!ok)
}

func TestFile(t *testing.T) {
	file := path.Join(t.TempDir(), "data.json")
	s := NewFile(file)

	t.Run("missing key is absent", func(t *testing.T) {
		is := is.New(t)
		_, ok := s.Get("users")
		is.True(!ok)
	})

	t.Run("set then get", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(s.Set("users", `{"a@x.com":{}}`))
		v, ok := s.Get("users")
		is.True(ok)
		is.Equal(v, `{"a@x.com":{}}`)
	})

	t.Run("survives reopen", func(t *testing.T) {
		is := is.New(t)
		v, ok := NewFile(file).Get("users")
		is.True(ok)
		is.Equal(v, `{"a@x.com":{}}`)
	})

	t.Run("keys are independent", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(s.Set("currentUser", `{"email":"a@x.com"}`))
		is.NoErr(s.Remove("currentUser"))
		_, ok := s.Get("users")
		is.True(ok)
	})

	t.Run("remove", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(s.Remove("users"))
		_, ok := s.Get("users")
		is.True(!ok)
	})

	t.Run("removing an absent key is fine", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(s.Remove("nope"))
	})
}

func TestFile_UnreadableFile(t *testing.T) {
	is := is.New(t)

	file := path.Join(t.TempDir(), "data.json")
	is.NoErr(os.WriteFile(file, []byte("{not json"), 0600))

	s := NewFile(file)
	_, ok := s.Get("users")
	is.True(!ok)
	is.True(s.Set("users", "{}") != nil)
}
