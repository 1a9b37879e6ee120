package domain

import "github.com/promobeats/backoffice/internal/core/specification"

// Built-in role keys. These three always exist; EnsureBuiltins seeds them at
// bootstrap and the key column carries a unique index.
const (
	RoleSuperAdmin = "super-admin"
	RoleAdmin      = "admin"
	RoleExecutive  = "executive"
)

// Role is a named privilege bundle referenced by RoleAssignments.
type Role struct {
	ID         int64  `json:"id" bson:"_id"`
	Key        string `json:"key" bson:"key"`
	NameEn     string `json:"name_en" bson:"name_en"`
	NameAr     string `json:"name_ar" bson:"name_ar"`
	Timestamps `bson:",inline"`
}

func (r *Role) GetID() int64   { return r.ID }
func (r *Role) SetID(id int64) { r.ID = id }

// BuiltinRoles returns the roles that must exist in every deployment.
func BuiltinRoles() []*Role {
	return []*Role{
		{Key: RoleSuperAdmin, NameEn: "Super Admin", NameAr: "مدير عام"},
		{Key: RoleAdmin, NameEn: "Admin", NameAr: "مدير"},
		{Key: RoleExecutive, NameEn: "Executive", NameAr: "تنفيذي"},
	}
}

// Queryable role fields.
const (
	RoleFieldKey    specification.Field = "key"
	RoleFieldNameEn specification.Field = "name_en"
	RoleFieldNameAr specification.Field = "name_ar"
)
