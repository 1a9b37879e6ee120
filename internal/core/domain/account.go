package domain

import "github.com/promobeats/backoffice/internal/core/specification"

// AccountHolder models a back-office operator. Identity is a client-generated
// opaque string; email is unique across all holders.
type AccountHolder struct {
	ID           string `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Timestamps   `bson:",inline"`

	// Assignments is hydrated on demand via the "assignments" include path.
	Assignments []*RoleAssignment `json:"assignments,omitempty" bson:"-"`
}

func (a *AccountHolder) GetID() string   { return a.ID }
func (a *AccountHolder) SetID(id string) { a.ID = id }

// RoleKeys returns the role keys of the hydrated assignments. Empty when the
// assignments (or their roles) were not included.
func (a *AccountHolder) RoleKeys() []string {
	keys := make([]string, 0, len(a.Assignments))
	for _, as := range a.Assignments {
		if as.Role != nil {
			keys = append(keys, as.Role.Key)
		}
	}
	return keys
}

// RoleAssignment links an AccountHolder to a Role. The (holder, role) pair is
// unique; assignments are owned by the holder and cascade with it.
type RoleAssignment struct {
	ID         int64  `json:"id" bson:"_id"`
	HolderID   string `json:"holder_id" bson:"holder_id"`
	RoleID     int64  `json:"role_id" bson:"role_id"`
	Timestamps `bson:",inline"`

	// Role is hydrated on demand via the "assignments.role" include path.
	Role *Role `json:"role,omitempty" bson:"-"`
}

func (r *RoleAssignment) GetID() int64   { return r.ID }
func (r *RoleAssignment) SetID(id int64) { r.ID = id }

// Queryable account fields.
const (
	AccountFieldName  specification.Field = "name"
	AccountFieldEmail specification.Field = "email"
	AccountFieldPhone specification.Field = "phone"
)

// Queryable role-assignment fields.
const (
	AssignmentFieldHolderID specification.Field = "holder_id"
	AssignmentFieldRoleID   specification.Field = "role_id"
)
