package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
	"github.com/promobeats/backoffice/internal/core/specification"
)

// RoleService lists roles and seeds the built-in ones.
type RoleService struct {
	repos *ports.RepoSet
	uow   ports.UnitOfWork
	log   zerolog.Logger
}

func NewRoleService(repos *ports.RepoSet, uow ports.UnitOfWork, log zerolog.Logger) *RoleService {
	return &RoleService{repos: repos, uow: uow, log: log}
}

// List returns every role ordered by id.
func (s *RoleService) List(ctx context.Context) (Result[[]*domain.Role], error) {
	roles, err := s.repos.Roles.FindMany(ctx,
		specification.New[*domain.Role]().OrderBy(domain.FieldID))
	if err != nil {
		return Result[[]*domain.Role]{}, err
	}
	return Ok(roles), nil
}

// EnsureBuiltins guarantees the three built-in role keys exist. Idempotent;
// runs at bootstrap inside one Unit of Work so concurrent instances cannot
// double-seed.
func (s *RoleService) EnsureBuiltins(ctx context.Context) error {
	return s.uow.Execute(ctx, func(ctx context.Context, r *ports.RepoSet) error {
		for _, builtin := range domain.BuiltinRoles() {
			existing, err := r.Roles.FindOne(ctx,
				specification.New[*domain.Role]().WhereEq(domain.RoleFieldKey, builtin.Key))
			if err != nil {
				return err
			}
			if existing != nil {
				continue
			}
			if err := r.Roles.Create(ctx, builtin); err != nil {
				return err
			}
			s.log.Info().Str("key", builtin.Key).Msg("seeded builtin role")
		}
		return nil
	})
}
