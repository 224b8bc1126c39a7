package todo

import (
	"encoding/json"
	"errors"
	"fmt"

	"tudu/pkg/kv"
)

// KeyPrefix prefixes the per-user store key: the full key is
// KeyPrefix + email.
const KeyPrefix = "todos_"

// ErrCorruptBlob marks a persisted list that could not be decoded or did
// not validate. Load still returns a usable empty list; callers should
// warn and carry on rather than fail.
var ErrCorruptBlob = errors.New("corrupt task blob")

// Key returns the store key for a user's task list.
func Key(email string) string {
	return KeyPrefix + email
}

// Repo persists one task list per user email. Writes are full replaces:
// each Save overwrites the previous blob entirely.
type Repo struct {
	store kv.Store
}

func NewRepo(store kv.Store) *Repo {
	return &Repo{store: store}
}

// Load returns the persisted list for email, or an empty list if none is
// stored. A blob that fails to decode or validate empty-initializes and
// reports ErrCorruptBlob.
func (r *Repo) Load(email string) (List, error) {
	raw, ok := r.store.Get(Key(email))
	if !ok {
		return List{}, nil
	}
	if err := validate([]byte(raw)); err != nil {
		return List{}, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}
	var l List
	if err := json.Unmarshal([]byte(raw), &l); err != nil {
		return List{}, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}
	return l, nil
}

// Save fully replaces the persisted list for email.
func (r *Repo) Save(email string, l List) error {
	if l == nil {
		l = List{}
	}
	bs, err := json.Marshal(l)
	if err != nil {
		return err
	}
	return r.store.Set(Key(email), string(bs))
}
