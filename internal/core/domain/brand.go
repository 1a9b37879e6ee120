package domain

import "github.com/promobeats/backoffice/internal/core/specification"

// Brand is a sponsoring company referenced by beats. The display name is
// unique, checked independently per language.
type Brand struct {
	ID         int64  `json:"id" bson:"_id"`
	NameEn     string `json:"name_en" bson:"name_en"`
	NameAr     string `json:"name_ar" bson:"name_ar"`
	LogoURL    string `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	WebsiteURL string `json:"website_url,omitempty" bson:"website_url,omitempty"`
	Timestamps `bson:",inline"`
}

func (b *Brand) GetID() int64   { return b.ID }
func (b *Brand) SetID(id int64) { b.ID = id }

// Queryable brand fields.
const (
	BrandFieldNameEn specification.Field = "name_en"
	BrandFieldNameAr specification.Field = "name_ar"
)
