package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
	"github.com/promobeats/backoffice/internal/core/specification"
)

const entityAccount = "account_holder"

// AccountService orchestrates account-holder operations, including role
// assignment and first-admin bootstrapping.
type AccountService struct {
	repos    *ports.RepoSet
	uow      ports.UnitOfWork
	hasher   ports.PasswordHasher
	activity ports.ActivityLogger
	log      zerolog.Logger
}

func NewAccountService(repos *ports.RepoSet, uow ports.UnitOfWork, hasher ports.PasswordHasher, activity ports.ActivityLogger, log zerolog.Logger) *AccountService {
	return &AccountService{repos: repos, uow: uow, hasher: hasher, activity: activity, log: log}
}

type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	// RoleKeys optionally assigns roles at creation time; a non-empty list
	// makes the operation privileged.
	RoleKeys []string
}

// Create registers a new account holder. The identity is generated
// client-side. When initial role keys are requested the caller must hold
// super-admin and the whole sequence runs in one Unit of Work.
func (s *AccountService) Create(ctx context.Context, caller RoleSet, in CreateAccountInput) (Result[*domain.AccountHolder], error) {
	if len(in.RoleKeys) > 0 && !caller.Has(domain.RoleSuperAdmin) {
		return Fail[*domain.AccountHolder](InsufficientPermissions()), nil
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Result[*domain.AccountHolder]{}, err
	}

	var res Result[*domain.AccountHolder]
	err = s.uow.Execute(ctx, func(ctx context.Context, r *ports.RepoSet) error {
		taken, err := r.Accounts.Exists(ctx,
			specification.New[*domain.AccountHolder]().WhereEq(domain.AccountFieldEmail, in.Email))
		if err != nil {
			return err
		}
		if taken {
			res = Fail[*domain.AccountHolder](AlreadyExists("email", in.Email))
			return nil
		}

		roles, missing, err := resolveRoles(ctx, r, in.RoleKeys)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			res = Fail[*domain.AccountHolder](RolesNotFound(missing))
			return nil
		}

		account := &domain.AccountHolder{
			ID:           uuid.NewString(),
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: hash,
			Phone:        in.Phone,
		}
		if err := r.Accounts.Create(ctx, account); err != nil {
			return err
		}
		assignments := make([]*domain.RoleAssignment, 0, len(roles))
		for _, role := range roles {
			assignments = append(assignments, &domain.RoleAssignment{HolderID: account.ID, RoleID: role.ID})
		}
		if err := r.Assignments.CreateMany(ctx, assignments); err != nil {
			return err
		}
		res = Ok(account)
		return nil
	})
	if err != nil {
		return Result[*domain.AccountHolder]{}, err
	}
	if res.OK() {
		s.activity.LogCreate(ctx, entityAccount, res.Value().ID, res.Value())
	}
	return res, nil
}

// List returns one page of account holders, optionally free-text filtered on
// name and email.
func (s *AccountService) List(ctx context.Context, in ListInput) (Result[Page[*domain.AccountHolder]], error) {
	page, limit := in.window()

	q := specification.New[*domain.AccountHolder]().
		SearchFor(in.Search, domain.AccountFieldName, domain.AccountFieldEmail)
	total, err := s.repos.Accounts.Count(ctx, q)
	if err != nil {
		return Result[Page[*domain.AccountHolder]]{}, err
	}
	items, err := s.repos.Accounts.FindMany(ctx, q.Clone().
		OrderByDesc(domain.FieldCreatedAt).
		Paginate(page, limit))
	if err != nil {
		return Result[Page[*domain.AccountHolder]]{}, err
	}
	return Ok(NewPage(items, total, page, limit)), nil
}

// Get loads one account holder with its role assignments and their roles.
func (s *AccountService) Get(ctx context.Context, id string) (Result[*domain.AccountHolder], error) {
	account, err := s.repos.Accounts.FindOne(ctx,
		specification.New[*domain.AccountHolder]().
			WhereEq(domain.FieldID, id).
			Include("assignments.role"))
	if err != nil {
		return Result[*domain.AccountHolder]{}, err
	}
	if account == nil {
		return Fail[*domain.AccountHolder](NotFound("account holder")), nil
	}
	return Ok(account), nil
}

type UpdateAccountInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

// Update applies a partial mutation. A changed email is re-checked for
// uniqueness excluding the holder's own row.
func (s *AccountService) Update(ctx context.Context, id string, in UpdateAccountInput) (Result[*domain.AccountHolder], error) {
	account, err := s.repos.Accounts.FindByID(ctx, id)
	if err != nil {
		return Result[*domain.AccountHolder]{}, err
	}
	if account == nil {
		return Fail[*domain.AccountHolder](NotFound("account holder")), nil
	}
	before := *account

	if in.Email != nil {
		taken, err := s.repos.Accounts.Exists(ctx,
			specification.New[*domain.AccountHolder]().
				WhereEq(domain.AccountFieldEmail, *in.Email).
				WhereNe(domain.FieldID, id))
		if err != nil {
			return Result[*domain.AccountHolder]{}, err
		}
		if taken {
			return Fail[*domain.AccountHolder](AlreadyExists("email", *in.Email)), nil
		}
		account.Email = *in.Email
	}
	if in.Name != nil {
		account.Name = *in.Name
	}
	if in.Phone != nil {
		account.Phone = *in.Phone
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return Result[*domain.AccountHolder]{}, err
		}
		account.PasswordHash = hash
	}

	if err := s.repos.Accounts.Update(ctx, account); err != nil {
		return Result[*domain.AccountHolder]{}, err
	}
	s.activity.LogUpdate(ctx, entityAccount, id, &before, account)
	return Ok(account), nil
}

// Delete removes an account holder and cascades its role assignments inside
// one Unit of Work.
func (s *AccountService) Delete(ctx context.Context, id string) (Result[struct{}], error) {
	var res Result[struct{}]
	var before *domain.AccountHolder
	err := s.uow.Execute(ctx, func(ctx context.Context, r *ports.RepoSet) error {
		account, err := r.Accounts.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if account == nil {
			res = Fail[struct{}](NotFound("account holder"))
			return nil
		}
		before = account

		assignments, err := r.Assignments.FindMany(ctx,
			specification.New[*domain.RoleAssignment]().WhereEq(domain.AssignmentFieldHolderID, id))
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(assignments))
		for _, a := range assignments {
			ids = append(ids, a.ID)
		}
		if err := r.Assignments.DeleteMany(ctx, ids); err != nil {
			return err
		}
		if err := r.Accounts.Delete(ctx, id); err != nil {
			return err
		}
		res = Ok(struct{}{})
		return nil
	})
	if err != nil {
		return Result[struct{}]{}, err
	}
	if res.OK() {
		s.activity.LogDelete(ctx, entityAccount, id, before)
	}
	return res, nil
}

// AssignRoles replaces the holder's role set with the given keys. Only a
// caller holding super-admin may assign roles; the existence check, the
// replacement and the writes are atomic with respect to concurrent callers.
func (s *AccountService) AssignRoles(ctx context.Context, caller RoleSet, holderID string, roleKeys []string) (Result[[]*domain.Role], error) {
	if !caller.Has(domain.RoleSuperAdmin) {
		return Fail[[]*domain.Role](InsufficientPermissions()), nil
	}

	var res Result[[]*domain.Role]
	err := s.uow.Execute(ctx, func(ctx context.Context, r *ports.RepoSet) error {
		holder, err := r.Accounts.FindByID(ctx, holderID)
		if err != nil {
			return err
		}
		if holder == nil {
			res = Fail[[]*domain.Role](NotFound("account holder"))
			return nil
		}

		roles, missing, err := resolveRoles(ctx, r, roleKeys)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			res = Fail[[]*domain.Role](RolesNotFound(missing))
			return nil
		}

		existing, err := r.Assignments.FindMany(ctx,
			specification.New[*domain.RoleAssignment]().WhereEq(domain.AssignmentFieldHolderID, holderID))
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(existing))
		for _, a := range existing {
			ids = append(ids, a.ID)
		}
		if err := r.Assignments.DeleteMany(ctx, ids); err != nil {
			return err
		}
		assignments := make([]*domain.RoleAssignment, 0, len(roles))
		for _, role := range roles {
			assignments = append(assignments, &domain.RoleAssignment{HolderID: holderID, RoleID: role.ID})
		}
		if err := r.Assignments.CreateMany(ctx, assignments); err != nil {
			return err
		}
		res = Ok(roles)
		return nil
	})
	if err != nil {
		return Result[[]*domain.Role]{}, err
	}
	if res.OK() {
		s.activity.LogUpdate(ctx, entityAccount, holderID, nil, res.Value())
	}
	return res, nil
}

// BootstrapSuperAdmin seeds the first privileged account. Idempotent: when
// any holder already has the super-admin role the call succeeds with a nil
// payload and writes nothing.
func (s *AccountService) BootstrapSuperAdmin(ctx context.Context, name, email, password string) (Result[*domain.AccountHolder], error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return Result[*domain.AccountHolder]{}, err
	}

	var res Result[*domain.AccountHolder]
	err = s.uow.Execute(ctx, func(ctx context.Context, r *ports.RepoSet) error {
		roles, missing, err := resolveRoles(ctx, r, []string{domain.RoleSuperAdmin})
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			res = Fail[*domain.AccountHolder](RolesNotFound(missing))
			return nil
		}
		superAdmin := roles[0]

		bootstrapped, err := r.Assignments.Exists(ctx,
			specification.New[*domain.RoleAssignment]().WhereEq(domain.AssignmentFieldRoleID, superAdmin.ID))
		if err != nil {
			return err
		}
		if bootstrapped {
			res = Ok[*domain.AccountHolder](nil)
			return nil
		}

		taken, err := r.Accounts.Exists(ctx,
			specification.New[*domain.AccountHolder]().WhereEq(domain.AccountFieldEmail, email))
		if err != nil {
			return err
		}
		if taken {
			res = Fail[*domain.AccountHolder](AlreadyExists("email", email))
			return nil
		}

		account := &domain.AccountHolder{
			ID:           uuid.NewString(),
			Name:         name,
			Email:        email,
			PasswordHash: hash,
		}
		if err := r.Accounts.Create(ctx, account); err != nil {
			return err
		}
		if err := r.Assignments.Create(ctx, &domain.RoleAssignment{HolderID: account.ID, RoleID: superAdmin.ID}); err != nil {
			return err
		}
		s.log.Info().Str("email", email).Msg("bootstrapped super-admin account")
		res = Ok(account)
		return nil
	})
	if err != nil {
		return Result[*domain.AccountHolder]{}, err
	}
	return res, nil
}

// resolveRoles loads roles by key and reports the keys that do not exist.
func resolveRoles(ctx context.Context, r *ports.RepoSet, keys []string) ([]*domain.Role, []string, error) {
	if len(keys) == 0 {
		return nil, nil, nil
	}
	values := make([]any, 0, len(keys))
	for _, k := range keys {
		values = append(values, k)
	}
	roles, err := r.Roles.FindMany(ctx,
		specification.New[*domain.Role]().WhereIn(domain.RoleFieldKey, values...))
	if err != nil {
		return nil, nil, err
	}
	found := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		found[role.Key] = struct{}{}
	}
	var missing []string
	for _, k := range keys {
		if _, ok := found[k]; !ok {
			missing = append(missing, k)
		}
	}
	return roles, missing, nil
}
