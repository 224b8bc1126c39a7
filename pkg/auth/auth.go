// Package auth manages the email -> account mapping persisted under a
// single key in the blob store.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"

	"tudu/pkg/kv"
)

// UsersKey is the store key holding the serialized account mapping.
const UsersKey = "users"

var (
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account is a registered email+password pair. Email is the primary key
// and is matched case-sensitively.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Hasher transforms passwords before storage and checks them on verify.
// The repository never compares passwords directly, so a real scheme can
// replace Plain without changing the repository contract.
type Hasher interface {
	Hash(password string) string
	Compare(hashed, password string) bool
}

// Plain stores passwords verbatim, matching the original data layout.
type Plain struct{}

func (Plain) Hash(password string) string          { return password }
func (Plain) Compare(hashed, password string) bool { return hashed == password }

// Repo reads and writes the account mapping. Every operation decodes the
// full mapping from the store first; nothing is cached between calls.
type Repo struct {
	store  kv.Store
	hasher Hasher
}

// NewRepo creates a repository over the given store. A nil hasher means
// verbatim password storage.
func NewRepo(store kv.Store, hasher Hasher) *Repo {
	if hasher == nil {
		hasher = Plain{}
	}
	return &Repo{store: store, hasher: hasher}
}

// Find returns the account for the given email, if any.
func (r *Repo) Find(email string) (Account, bool) {
	users, err := r.fetch()
	if err != nil {
		return Account{}, false
	}
	a, ok := users[email]
	return a, ok
}

// Create registers a new account. Fails with ErrDuplicateEmail if the
// email is already taken. Accounts are never updated or deleted.
func (r *Repo) Create(email, password string) error {
	users, err := r.fetch()
	if err != nil {
		return err
	}
	if _, taken := users[email]; taken {
		return ErrDuplicateEmail
	}
	users[email] = Account{Email: email, Password: r.hasher.Hash(password)}
	return r.sync(users)
}

// Verify checks an email+password pair against the stored mapping.
// A missing account and a wrong password both return ErrInvalidCredentials,
// so callers cannot tell which of the two was wrong.
func (r *Repo) Verify(email, password string) error {
	users, err := r.fetch()
	if err != nil {
		return err
	}
	a, ok := users[email]
	if !ok || !r.hasher.Compare(a.Password, password) {
		return ErrInvalidCredentials
	}
	return nil
}

func (r *Repo) fetch() (map[string]Account, error) {
	users := map[string]Account{}
	raw, ok := r.store.Get(UsersKey)
	if !ok {
		return users, nil
	}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *Repo) sync(users map[string]Account) error {
	bs, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Set(UsersKey, string(bs))
}
