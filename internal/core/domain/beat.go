package domain

import "github.com/promobeats/backoffice/internal/core/specification"

// BeatStatus represents the publication state of a beat.
type BeatStatus string

const (
	BeatStatusDraft     BeatStatus = "draft"
	BeatStatusPublished BeatStatus = "published"
	BeatStatusArchived  BeatStatus = "archived"
)

// Valid reports whether s is a known beat status.
func (s BeatStatus) Valid() bool {
	switch s {
	case BeatStatusDraft, BeatStatusPublished, BeatStatusArchived:
		return true
	}
	return false
}

// Beat is a single piece of promoted content. It holds non-owning references
// (by id) to one Influencer and one Brand; both must exist at write time.
type Beat struct {
	ID           int64      `json:"id" bson:"_id"`
	Caption      string     `json:"caption,omitempty" bson:"caption,omitempty"`
	MediaURL     string     `json:"media_url" bson:"media_url"`
	ThumbnailURL string     `json:"thumbnail_url" bson:"thumbnail_url"`
	Status       BeatStatus `json:"status" bson:"status"`
	InfluencerID int64      `json:"influencer_id" bson:"influencer_id"`
	BrandID      int64      `json:"brand_id" bson:"brand_id"`
	Timestamps   `bson:",inline"`

	// Influencer and Brand are hydrated on demand via the "influencer" and
	// "brand" include paths.
	Influencer *Influencer `json:"influencer,omitempty" bson:"-"`
	Brand      *Brand      `json:"brand,omitempty" bson:"-"`
}

func (b *Beat) GetID() int64   { return b.ID }
func (b *Beat) SetID(id int64) { b.ID = id }

// Queryable beat fields.
const (
	BeatFieldCaption      specification.Field = "caption"
	BeatFieldStatus       specification.Field = "status"
	BeatFieldInfluencerID specification.Field = "influencer_id"
	BeatFieldBrandID      specification.Field = "brand_id"
)
