package traveltales

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/etnz/traveltales/date"
	"github.com/etnz/traveltales/store"
)

// ErrNotLoaded is returned by mutations issued before the collections of the
// signed-in user have finished loading, or when no user is signed in.
var ErrNotLoaded = errors.New("no signed-in user with loaded collections")

// App is the application state controller. It holds in-memory copies of the
// current user, trips and planned trips, and keeps them synchronized with
// the repository:
//
//   - every session change (login, signup, session restore) reloads both
//     collections and installs the user together with them, in one step;
//   - the state produced by that load is never written back;
//   - every mutation persists the whole affected collection immediately.
//
// Mutations are pure transformations from the previous collection value to a
// new one, so each save serializes a complete, consistent snapshot.
type App struct {
	accounts *AccountService
	repo     *Repository

	mu     sync.Mutex
	user   *User
	trips  []Trip
	plans  []PlannedTrip
	loaded bool
	gen    int // load generation, guards against superseded loads
}

// NewApp returns a controller over kv.
func NewApp(kv store.KV) *App {
	repo := NewRepository(kv)
	return &App{accounts: NewAccountService(kv, repo), repo: repo}
}

// Accounts exposes the underlying account service.
func (a *App) Accounts() *AccountService { return a.accounts }

// Login authenticates and, on success, loads the user's collections. It
// returns false on bad credentials.
func (a *App) Login(ctx context.Context, email, password string) (bool, error) {
	user, err := a.accounts.Login(ctx, email, password)
	if err != nil || user == nil {
		return false, err
	}
	return true, a.setUser(ctx, user)
}

// Signup registers a new account and loads its freshly seeded collections.
// It returns false when the email is already registered.
func (a *App) Signup(ctx context.Context, name, email, password string) (bool, error) {
	if err := ValidateSignup(name, email, password); err != nil {
		return false, err
	}
	user, err := a.accounts.Signup(ctx, name, email, password)
	if err != nil || user == nil {
		return false, err
	}
	return true, a.setUser(ctx, user)
}

// RestoreSession loads the persisted session, if any, and then the session
// user's collections. It returns false when no one is signed in.
func (a *App) RestoreSession(ctx context.Context) (bool, error) {
	user, err := a.accounts.CheckSession(ctx)
	if err != nil || user == nil {
		return false, err
	}
	return true, a.setUser(ctx, user)
}

// Logout clears the session and the in-memory state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.accounts.Logout(ctx); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
	a.trips = nil
	a.plans = nil
	a.loaded = false
	a.gen++ // invalidate any in-flight load
	return nil
}

// setUser reloads both collections and installs user alongside them, so the
// visible user and the visible collections always belong together. The two
// fetches are issued concurrently; saves stay suppressed until both have
// resolved. A failed load leaves the previous state visible (and unloaded).
// A load superseded by a newer one installs nothing: its data is stale by
// definition.
func (a *App) setUser(ctx context.Context, user *User) error {
	a.mu.Lock()
	a.loaded = false
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	var (
		trips []Trip
		plans []PlannedTrip
		terr  error
		perr  error
		wg    sync.WaitGroup
	)
	wg.Add(2)
	go func() { defer wg.Done(); trips, terr = a.repo.Trips(ctx, user.ID) }()
	go func() { defer wg.Done(); plans, perr = a.repo.PlannedTrips(ctx, user.ID) }()
	wg.Wait()
	if err := errors.Join(terr, perr); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gen != gen {
		return nil
	}
	a.user = user
	a.trips = trips
	a.plans = plans
	a.loaded = true
	return nil
}

// User returns the signed-in user, or nil.
func (a *App) User() *User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

// Trips returns the in-memory trip collection.
func (a *App) Trips() []Trip {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.trips)
}

// PlannedTrips returns the in-memory planned-trip collection.
func (a *App) PlannedTrips() []PlannedTrip {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.plans)
}

// AddTrip creates a trip and persists the trip collection.
func (a *App) AddTrip(ctx context.Context, title string, start, end date.Date) (Trip, error) {
	if err := ValidateTrip(title, start, end); err != nil {
		return Trip{}, err
	}
	trip := NewTrip(title, start, end)
	err := a.mutateTrips(ctx, func(trips []Trip) ([]Trip, error) {
		return append([]Trip{trip}, trips...), nil
	})
	return trip, err
}

// AddEntry appends a journal entry to a trip and persists the trip
// collection. The trip's entries stay sorted newest first.
func (a *App) AddEntry(ctx context.Context, tripID string, on date.Date, title, content, location string, photos []Photo) (JournalEntry, error) {
	if err := ValidateEntry(on, title); err != nil {
		return JournalEntry{}, err
	}
	entry := NewEntry(on, title, content, location, photos)
	err := a.mutateTrips(ctx, func(trips []Trip) ([]Trip, error) {
		return updateTrip(trips, tripID, func(t Trip) Trip { return t.WithEntry(entry) })
	})
	return entry, err
}

// AddExpense appends an expense to a trip and persists the trip collection.
func (a *App) AddExpense(ctx context.Context, tripID string, on date.Date, description string, amount Money) (Expense, error) {
	if err := ValidateExpense(on, description, amount); err != nil {
		return Expense{}, err
	}
	expense := NewExpense(on, description, amount)
	err := a.mutateTrips(ctx, func(trips []Trip) ([]Trip, error) {
		return updateTrip(trips, tripID, func(t Trip) Trip { return t.WithExpense(expense) })
	})
	return expense, err
}

// SetSummary stores a generated summary on a trip and persists the trip
// collection.
func (a *App) SetSummary(ctx context.Context, tripID, summary string) error {
	return a.mutateTrips(ctx, func(trips []Trip) ([]Trip, error) {
		return updateTrip(trips, tripID, func(t Trip) Trip { return t.WithSummary(summary) })
	})
}

// AddPlan creates a planned trip and persists the plan collection.
func (a *App) AddPlan(ctx context.Context, title, destination string, start, end date.Date) (PlannedTrip, error) {
	if err := ValidateTrip(title, start, end); err != nil {
		return PlannedTrip{}, err
	}
	plan := NewPlannedTrip(title, destination, start, end)
	err := a.mutatePlans(ctx, func(plans []PlannedTrip) ([]PlannedTrip, error) {
		return append([]PlannedTrip{plan}, plans...), nil
	})
	return plan, err
}

// AddItineraryItem appends an item to a plan and persists the plan
// collection. The itinerary stays sorted oldest first.
func (a *App) AddItineraryItem(ctx context.Context, planID string, on date.Date, activity, notes string) (ItineraryItem, error) {
	if err := ValidateItineraryItem(on, activity); err != nil {
		return ItineraryItem{}, err
	}
	item := NewItineraryItem(on, activity, notes)
	err := a.mutatePlans(ctx, func(plans []PlannedTrip) ([]PlannedTrip, error) {
		return updatePlan(plans, planID, func(p PlannedTrip) PlannedTrip { return p.WithItem(item) })
	})
	return item, err
}

// ConvertPlan turns a plan into a draft trip: a single state transition that
// removes the plan and prepends the derived trip, then persists both
// collections.
func (a *App) ConvertPlan(ctx context.Context, planID string) (Trip, error) {
	a.mu.Lock()
	if a.user == nil || !a.loaded {
		a.mu.Unlock()
		return Trip{}, ErrNotLoaded
	}
	i := slices.IndexFunc(a.plans, func(p PlannedTrip) bool { return p.ID == planID })
	if i < 0 {
		a.mu.Unlock()
		return Trip{}, fmt.Errorf("unknown plan %q", planID)
	}
	trip := a.plans[i].ConvertToTrip()
	trips := append([]Trip{trip}, a.trips...)
	plans := slices.Delete(slices.Clone(a.plans), i, i+1)
	a.trips = trips
	a.plans = plans
	userID := a.user.ID
	a.mu.Unlock()

	if err := a.repo.SaveTrips(ctx, userID, trips); err != nil {
		return Trip{}, err
	}
	return trip, a.repo.SavePlannedTrips(ctx, userID, plans)
}

// mutateTrips applies transform to the trip collection, installs the result
// and persists it. Nothing is written when the transform fails.
func (a *App) mutateTrips(ctx context.Context, transform func([]Trip) ([]Trip, error)) error {
	a.mu.Lock()
	if a.user == nil || !a.loaded {
		a.mu.Unlock()
		return ErrNotLoaded
	}
	next, err := transform(a.trips)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.trips = next
	userID := a.user.ID
	a.mu.Unlock()
	return a.repo.SaveTrips(ctx, userID, next)
}

// mutatePlans is the planned-trip counterpart of mutateTrips.
func (a *App) mutatePlans(ctx context.Context, transform func([]PlannedTrip) ([]PlannedTrip, error)) error {
	a.mu.Lock()
	if a.user == nil || !a.loaded {
		a.mu.Unlock()
		return ErrNotLoaded
	}
	next, err := transform(a.plans)
	if err != nil {
		a.mu.Unlock()
		return err
	}
	a.plans = next
	userID := a.user.ID
	a.mu.Unlock()
	return a.repo.SavePlannedTrips(ctx, userID, next)
}

// updateTrip maps the trip with the given id through fn, leaving every other
// trip untouched.
func updateTrip(trips []Trip, tripID string, fn func(Trip) Trip) ([]Trip, error) {
	i := slices.IndexFunc(trips, func(t Trip) bool { return t.ID == tripID })
	if i < 0 {
		return nil, fmt.Errorf("unknown trip %q", tripID)
	}
	next := slices.Clone(trips)
	next[i] = fn(next[i])
	return next, nil
}

// updatePlan maps the plan with the given id through fn.
func updatePlan(plans []PlannedTrip, planID string, fn func(PlannedTrip) PlannedTrip) ([]PlannedTrip, error) {
	i := slices.IndexFunc(plans, func(p PlannedTrip) bool { return p.ID == planID })
	if i < 0 {
		return nil, fmt.Errorf("unknown plan %q", planID)
	}
	next := slices.Clone(plans)
	next[i] = fn(next[i])
	return next, nil
}
