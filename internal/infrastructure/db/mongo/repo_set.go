package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
)

// Collection names. Sequence counters share these names so that each
// collection has exactly one counter document.
const (
	collectionAccounts    = "account_holders"
	collectionRoles       = "roles"
	collectionAssignments = "role_assignments"
	collectionInfluencers = "influencers"
	collectionProfiles    = "social_profiles"
	collectionBrands      = "brands"
	collectionBeats       = "beats"
)

// NewRepoSet builds the full repository set over db. Account holders carry
// application-assigned string ids; everything else draws int64 ids from the
// counters collection on insert.
func NewRepoSet(db *mongo.Database) *ports.RepoSet {
	return &ports.RepoSet{
		Accounts: NewRepository[*domain.AccountHolder, string](db, collectionAccounts,
			func() *domain.AccountHolder { return &domain.AccountHolder{} }).
			WithHydrator(hydrateAccounts),

		Roles: NewRepository[*domain.Role, int64](db, collectionRoles,
			func() *domain.Role { return &domain.Role{} }).
			WithIDGenerator(Sequence(db, collectionRoles)),

		Assignments: NewRepository[*domain.RoleAssignment, int64](db, collectionAssignments,
			func() *domain.RoleAssignment { return &domain.RoleAssignment{} }).
			WithIDGenerator(Sequence(db, collectionAssignments)).
			WithHydrator(hydrateAssignments),

		Influencers: NewRepository[*domain.Influencer, int64](db, collectionInfluencers,
			func() *domain.Influencer { return &domain.Influencer{} }).
			WithIDGenerator(Sequence(db, collectionInfluencers)).
			WithHydrator(hydrateInfluencers),

		Profiles: NewRepository[*domain.SocialProfile, int64](db, collectionProfiles,
			func() *domain.SocialProfile { return &domain.SocialProfile{} }).
			WithIDGenerator(Sequence(db, collectionProfiles)),

		Brands: NewRepository[*domain.Brand, int64](db, collectionBrands,
			func() *domain.Brand { return &domain.Brand{} }).
			WithIDGenerator(Sequence(db, collectionBrands)),

		Beats: NewRepository[*domain.Beat, int64](db, collectionBeats,
			func() *domain.Beat { return &domain.Beat{} }).
			WithIDGenerator(Sequence(db, collectionBeats)).
			WithHydrator(hydrateBeats),
	}
}

var (
	_ ports.Repository[*domain.AccountHolder, string] = (*Repository[*domain.AccountHolder, string])(nil)
	_ ports.Repository[*domain.Beat, int64]           = (*Repository[*domain.Beat, int64])(nil)
)
