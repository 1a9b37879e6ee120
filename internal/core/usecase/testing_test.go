package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
	"github.com/promobeats/backoffice/internal/core/specification"
)

// memRepo is an in-memory ports.Repository backed by the specification
// evaluator, so tests execute exactly the queries production code issues.
type memRepo[T domain.Entity[ID], ID comparable] struct {
	items []T
	seq   int64
	newID func(seq int64) ID
}

func (r *memRepo[T, ID]) FindMany(_ context.Context, q *specification.Query[T]) ([]T, error) {
	if q == nil {
		return append([]T(nil), r.items...), nil
	}
	return q.Apply(r.items)
}

func (r *memRepo[T, ID]) FindOne(_ context.Context, q *specification.Query[T]) (T, error) {
	var zero T
	for _, it := range r.items {
		if q == nil || q.Matches(it) {
			return it, nil
		}
	}
	return zero, nil
}

func (r *memRepo[T, ID]) FindByID(_ context.Context, id ID) (T, error) {
	var zero T
	for _, it := range r.items {
		if it.GetID() == id {
			return it, nil
		}
	}
	return zero, nil
}

func (r *memRepo[T, ID]) Count(_ context.Context, q *specification.Query[T]) (int64, error) {
	var n int64
	for _, it := range r.items {
		if q == nil || q.Matches(it) {
			n++
		}
	}
	return n, nil
}

func (r *memRepo[T, ID]) Exists(ctx context.Context, q *specification.Query[T]) (bool, error) {
	n, err := r.Count(ctx, q)
	return n > 0, err
}

func (r *memRepo[T, ID]) Create(_ context.Context, entity T) error {
	var zero ID
	if entity.GetID() == zero && r.newID != nil {
		r.seq++
		entity.SetID(r.newID(r.seq))
	}
	entity.TouchCreated(time.Now().UTC())
	r.items = append(r.items, entity)
	return nil
}

func (r *memRepo[T, ID]) Update(_ context.Context, entity T) error {
	for i, it := range r.items {
		if it.GetID() == entity.GetID() {
			entity.TouchUpdated(time.Now().UTC())
			r.items[i] = entity
			return nil
		}
	}
	return ports.ErrNotFound
}

func (r *memRepo[T, ID]) Delete(_ context.Context, id ID) error {
	for i, it := range r.items {
		if it.GetID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ports.ErrNotFound
}

func (r *memRepo[T, ID]) CreateMany(ctx context.Context, entities []T) error {
	for _, e := range entities {
		if err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *memRepo[T, ID]) UpdateMany(ctx context.Context, entities []T) error {
	for _, e := range entities {
		if err := r.Update(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *memRepo[T, ID]) DeleteMany(ctx context.Context, ids []ID) error {
	for _, id := range ids {
		if err := r.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func intID(seq int64) int64 { return seq }

func newTestRepos() *ports.RepoSet {
	return &ports.RepoSet{
		Accounts:    &memRepo[*domain.AccountHolder, string]{},
		Roles:       &memRepo[*domain.Role, int64]{newID: intID},
		Assignments: &memRepo[*domain.RoleAssignment, int64]{newID: intID},
		Influencers: &memRepo[*domain.Influencer, int64]{newID: intID},
		Profiles:    &memRepo[*domain.SocialProfile, int64]{newID: intID},
		Brands:      &memRepo[*domain.Brand, int64]{newID: intID},
		Beats:       &memRepo[*domain.Beat, int64]{newID: intID},
	}
}

// fakeUOW runs the function against the shared repo set and counts commit
// and abort decisions, so tests can assert that tagged failures commit and
// only unexpected errors abort.
type fakeUOW struct {
	repos   *ports.RepoSet
	commits int
	aborts  int
}

func (u *fakeUOW) Execute(ctx context.Context, fn func(ctx context.Context, repos *ports.RepoSet) error) error {
	if err := fn(ctx, u.repos); err != nil {
		u.aborts++
		return err
	}
	u.commits++
	return nil
}

// fakeHasher produces reversible marker hashes.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }
func (fakeHasher) Compare(plaintext, hash string) bool   { return hash == "hashed:"+plaintext }

// fakeSigner records the last signing request.
type fakeSigner struct {
	calls      int
	lastClaims map[string]any
	lastTTL    string
}

func (s *fakeSigner) Sign(claims map[string]any, expiresIn string) (ports.Token, error) {
	s.calls++
	s.lastClaims = claims
	s.lastTTL = expiresIn
	return ports.Token{Value: "signed-token", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (s *fakeSigner) Verify(string) (map[string]any, error) { return s.lastClaims, nil }
func (s *fakeSigner) Decode(string) (map[string]any, error) { return s.lastClaims, nil }

type activityEntry struct {
	action     string
	entityType string
	id         string
}

// recordingActivity captures activity calls synchronously.
type recordingActivity struct {
	entries []activityEntry
}

func (r *recordingActivity) LogCreate(_ context.Context, entityType, id string, _ any) {
	r.entries = append(r.entries, activityEntry{"create", entityType, id})
}

func (r *recordingActivity) LogUpdate(_ context.Context, entityType, id string, _, _ any) {
	r.entries = append(r.entries, activityEntry{"update", entityType, id})
}

func (r *recordingActivity) LogDelete(_ context.Context, entityType, id string, _ any) {
	r.entries = append(r.entries, activityEntry{"delete", entityType, id})
}

func testLog() zerolog.Logger { return zerolog.Nop() }

// seedRoles persists the builtin roles and returns them keyed by role key.
func seedRoles(t *testing.T, repos *ports.RepoSet) map[string]*domain.Role {
	t.Helper()
	byKey := make(map[string]*domain.Role)
	for _, role := range domain.BuiltinRoles() {
		if err := repos.Roles.Create(context.Background(), role); err != nil {
			t.Fatalf("seed role %s: %v", role.Key, err)
		}
		byKey[role.Key] = role
	}
	return byKey
}

// seedAccount persists a holder with the given role keys assigned, wiring
// the hydrated pointers the way the storage hydrators would.
func seedAccount(t *testing.T, repos *ports.RepoSet, email, password string, roles ...*domain.Role) *domain.AccountHolder {
	t.Helper()
	account := &domain.AccountHolder{
		ID:           uuid.NewString(),
		Name:         "Seeded Holder",
		Email:        email,
		PasswordHash: "hashed:" + password,
	}
	if err := repos.Accounts.Create(context.Background(), account); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	for _, role := range roles {
		a := &domain.RoleAssignment{HolderID: account.ID, RoleID: role.ID, Role: role}
		if err := repos.Assignments.Create(context.Background(), a); err != nil {
			t.Fatalf("seed assignment: %v", err)
		}
		account.Assignments = append(account.Assignments, a)
	}
	return account
}
