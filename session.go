package traveltales

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etnz/traveltales/store"
	"github.com/google/uuid"
)

// AccountService owns the user registry and the current-session pointer.
//
// Authentication failures (duplicate email, bad credentials) are nil results,
// never errors: errors are reserved for storage faults. The session holds a
// copy of the registry record, not a reference.
type AccountService struct {
	kv   store.KV
	repo *Repository
}

// NewAccountService returns an account service over kv, seeding new users
// through repo.
func NewAccountService(kv store.KV, repo *Repository) *AccountService {
	return &AccountService{kv: kv, repo: repo}
}

// Signup registers a new user. It returns nil when the email is already
// registered, leaving the registry unchanged. On success the new user becomes
// the current session and receives a fresh copy of the sample collections.
func (s *AccountService) Signup(ctx context.Context, name, email, password string) (*User, error) {
	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, nil
		}
	}

	user := User{ID: uuid.NewString(), Name: name, Email: email, Password: password}
	if err := s.saveUsers(ctx, append(users, user)); err != nil {
		return nil, err
	}
	if err := s.setSession(ctx, user); err != nil {
		return nil, err
	}
	if err := s.repo.SaveTrips(ctx, user.ID, SampleTrips()); err != nil {
		return nil, err
	}
	if err := s.repo.SavePlannedTrips(ctx, user.ID, SamplePlans()); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login returns the registry user matching both email and password exactly,
// and makes it the current session. It returns nil on any mismatch.
func (s *AccountService) Login(ctx context.Context, email, password string) (*User, error) {
	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := s.setSession(ctx, u); err != nil {
				return nil, err
			}
			return &u, nil
		}
	}
	return nil, nil
}

// Logout clears the current-session pointer. The registry and all user data
// stay untouched.
func (s *AccountService) Logout(ctx context.Context) error {
	return s.kv.Remove(ctx, store.SessionKey)
}

// CheckSession returns the persisted current-session user, or nil when no
// one is signed in.
func (s *AccountService) CheckSession(ctx context.Context) (*User, error) {
	value, ok, err := s.kv.Get(ctx, store.SessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var user User
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, fmt.Errorf("corrupt session record: %w", err)
	}
	return &user, nil
}

func (s *AccountService) users(ctx context.Context) ([]User, error) {
	value, ok, err := s.kv.Get(ctx, store.UsersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var users []User
	if err := json.Unmarshal(value, &users); err != nil {
		return nil, fmt.Errorf("corrupt user registry: %w", err)
	}
	return users, nil
}

func (s *AccountService) saveUsers(ctx context.Context, users []User) error {
	value, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user registry: %w", err)
	}
	return s.kv.Set(ctx, store.UsersKey, value)
}

func (s *AccountService) setSession(ctx context.Context, user User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	return s.kv.Set(ctx, store.SessionKey, value)
}
