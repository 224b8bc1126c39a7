package kv

import (
	"encoding/json"
	"errors"
	"os"
)

// File is a Store backed by a single JSON file holding the whole
// key -> blob map. The file is re-read on every operation and fully
// rewritten on every write, so each call observes the latest on-disk state.
type File struct {
	file string
}

func NewFile(file string) *File {
	return &File{file: file}
}

func (s File) Get(key string) (string, bool) {
	m, err := s.fetch()
	if err != nil {
		return "", false
	}
	v, ok := m[key]
	return v, ok
}

func (s File) Set(key, value string) error {
	m, err := s.fetch()
	if err != nil {
		return err
	}
	m[key] = value
	return s.sync(m)
}

func (s File) Remove(key string) error {
	m, err := s.fetch()
	if err != nil {
		return err
	}
	delete(m, key)
	return s.sync(m)
}

func (s File) fetch() (map[string]string, error) {
	bs, err := os.ReadFile(s.file)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(bs, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]string{}
	}
	return m, nil
}

func (s File) sync(m map[string]string) error {
	f, err := os.OpenFile(s.file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
