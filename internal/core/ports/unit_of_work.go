package ports

import (
	"context"

	"github.com/promobeats/backoffice/internal/core/domain"
)

// RepoSet is one typed repository per entity. A set handed out by a Unit of
// Work is bound to that transaction; sets built outside one read committed
// state. Repositories hold no mutable state, so building a fresh set per
// operation is cheap.
type RepoSet struct {
	Accounts    Repository[*domain.AccountHolder, string]
	Roles       Repository[*domain.Role, int64]
	Assignments Repository[*domain.RoleAssignment, int64]
	Influencers Repository[*domain.Influencer, int64]
	Profiles    Repository[*domain.SocialProfile, int64]
	Brands      Repository[*domain.Brand, int64]
	Beats       Repository[*domain.Beat, int64]
}

// UnitOfWork executes fn inside one atomic transaction with a
// transaction-scoped RepoSet.
//
// The central contract: a non-nil error from fn rolls back and propagates;
// a nil return commits. Expected business outcomes are carried out of fn as
// tagged results through captured variables, not as errors, so they commit —
// only unexpected failures abort.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context, repos *RepoSet) error) error
}
