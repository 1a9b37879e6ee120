// Package usecase hosts one orchestrated business operation per method: the
// place where invariants are enforced before any write reaches storage.
// Expected failures come back as tagged Result values; infrastructure
// failures propagate as errors and abort any enclosing Unit of Work.
package usecase

import (
	"fmt"
	"math"
	"strings"
)

// Stable machine-readable failure codes. The HTTP layer maps these to
// transport status; the core never does.
const (
	CodeNotFound                = "NOT_FOUND"
	CodeAlreadyExists           = "ALREADY_EXISTS"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	CodeHasDependents           = "HAS_DEPENDENTS"
	CodeRoleNotFound            = "ROLE_NOT_FOUND"
)

// Failure is an expected business outcome: a stable code plus a
// human-readable message. It implements error only so transport adapters can
// funnel it through their error plumbing — use cases return it as a value,
// never panic or throw it.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (f *Failure) Error() string { return fmt.Sprintf("%s: %s", f.Code, f.Message) }

func NotFound(entity string) *Failure {
	return &Failure{Code: CodeNotFound, Message: entity + " not found"}
}

func AlreadyExists(field, value string) *Failure {
	return &Failure{Code: CodeAlreadyExists, Message: fmt.Sprintf("%s %q is already taken", field, value)}
}

func InvalidCredentials() *Failure {
	return &Failure{Code: CodeInvalidCredentials, Message: "invalid credentials"}
}

func InsufficientPermissions() *Failure {
	return &Failure{Code: CodeInsufficientPermissions, Message: "caller lacks the required role"}
}

func HasDependents(entity, dependents string) *Failure {
	return &Failure{Code: CodeHasDependents, Message: fmt.Sprintf("%s has existing %s", entity, dependents)}
}

func RolesNotFound(keys []string) *Failure {
	return &Failure{Code: CodeRoleNotFound, Message: "unknown role keys: " + strings.Join(keys, ", ")}
}

// Result is a tagged success-or-failure value. Inspect OK before using the
// payload.
type Result[T any] struct {
	value   T
	failure *Failure
}

func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

func Fail[T any](f *Failure) Result[T] { return Result[T]{failure: f} }

func (r Result[T]) OK() bool          { return r.failure == nil }
func (r Result[T]) Value() T          { return r.value }
func (r Result[T]) Failure() *Failure { return r.failure }

// RoleSet is the caller-supplied authorization context: the role keys held by
// the current caller, always passed explicitly into privileged use cases.
type RoleSet []string

func (s RoleSet) Has(key string) bool {
	for _, k := range s {
		if k == key {
			return true
		}
	}
	return false
}

// Page is one window of a listed result set.
type Page[T any] struct {
	Items           []T   `json:"items"`
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalPages      int64 `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// NewPage derives the pagination arithmetic: totalPages = ceil(total/limit).
func NewPage[T any](items []T, total int64, page, limit int) Page[T] {
	totalPages := int64(math.Ceil(float64(total) / float64(limit)))
	return Page[T]{
		Items:           items,
		Total:           total,
		Page:            page,
		Limit:           limit,
		TotalPages:      totalPages,
		HasNextPage:     int64(page) < totalPages,
		HasPreviousPage: page > 1 && total > 0,
	}
}

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListInput is the shared list-operation input. The specification layer
// stores pagination literally, so use cases normalize here: page and limit
// below one fall back to defaults and limit is capped at 100.
type ListInput struct {
	Page   int
	Limit  int
	Search string
}

func (in ListInput) window() (page, limit int) {
	page = in.Page
	if page < 1 {
		page = 1
	}
	limit = in.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
