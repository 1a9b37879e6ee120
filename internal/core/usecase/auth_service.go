package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
	"github.com/promobeats/backoffice/internal/core/specification"
)

// AuthService implements login.
type AuthService struct {
	repos    *ports.RepoSet
	hasher   ports.PasswordHasher
	signer   ports.TokenSigner
	tokenTTL string
	log      zerolog.Logger
}

func NewAuthService(repos *ports.RepoSet, hasher ports.PasswordHasher, signer ports.TokenSigner, tokenTTL string, log zerolog.Logger) *AuthService {
	if tokenTTL == "" {
		tokenTTL = "1d"
	}
	return &AuthService{repos: repos, hasher: hasher, signer: signer, tokenTTL: tokenTTL, log: log}
}

// LoginOutput is the success payload of Login.
type LoginOutput struct {
	Token   ports.Token           `json:"token"`
	Account *domain.AccountHolder `json:"account"`
	Roles   []string              `json:"roles"`
}

// Login authenticates an account holder by email and password. Unknown email
// yields Not-Found; a wrong password or an account without a stored hash
// yields Invalid-Credentials. The signer is only reached after both checks.
func (s *AuthService) Login(ctx context.Context, email, password string) (Result[LoginOutput], error) {
	q := specification.New[*domain.AccountHolder]().WhereEq(domain.AccountFieldEmail, email)
	account, err := s.repos.Accounts.FindOne(ctx, q)
	if err != nil {
		return Result[LoginOutput]{}, err
	}
	if account == nil {
		return Fail[LoginOutput](NotFound("account holder")), nil
	}
	if account.PasswordHash == "" || !s.hasher.Compare(password, account.PasswordHash) {
		s.log.Warn().Str("email", email).Msg("login rejected")
		return Fail[LoginOutput](InvalidCredentials()), nil
	}

	assignments, err := s.repos.Assignments.FindMany(ctx,
		specification.New[*domain.RoleAssignment]().
			WhereEq(domain.AssignmentFieldHolderID, account.ID).
			Include("role"))
	if err != nil {
		return Result[LoginOutput]{}, err
	}
	account.Assignments = assignments
	roles := account.RoleKeys()

	token, err := s.signer.Sign(map[string]any{
		"sub":   account.ID,
		"email": account.Email,
		"roles": roles,
	}, s.tokenTTL)
	if err != nil {
		return Result[LoginOutput]{}, err
	}

	s.log.Info().Str("account_id", account.ID).Msg("login succeeded")
	return Ok(LoginOutput{Token: token, Account: account, Roles: roles}), nil
}
