package domain

import "github.com/promobeats/backoffice/internal/core/specification"

// Supported social platform keys.
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformX         = "x"
	PlatformSnapchat  = "snapchat"
	PlatformFacebook  = "facebook"
)

var knownPlatforms = map[string]struct{}{
	PlatformInstagram: {},
	PlatformTikTok:    {},
	PlatformYouTube:   {},
	PlatformX:         {},
	PlatformSnapchat:  {},
	PlatformFacebook:  {},
}

// KnownPlatform reports whether key names a supported social platform.
func KnownPlatform(key string) bool {
	_, ok := knownPlatforms[key]
	return ok
}

// Influencer is a content creator promoted through beats. Username and email
// are each unique across all influencers.
type Influencer struct {
	ID              int64  `json:"id" bson:"_id"`
	Username        string `json:"username" bson:"username"`
	Email           string `json:"email" bson:"email"`
	NameEn          string `json:"name_en" bson:"name_en"`
	NameAr          string `json:"name_ar" bson:"name_ar"`
	ProfileImageURL string `json:"profile_image_url,omitempty" bson:"profile_image_url,omitempty"`
	Timestamps      `bson:",inline"`

	// Profiles is hydrated on demand via the "profiles" include path. Profiles
	// are exclusively owned: they cascade when the influencer is deleted.
	Profiles []*SocialProfile `json:"profiles,omitempty" bson:"-"`
}

func (i *Influencer) GetID() int64   { return i.ID }
func (i *Influencer) SetID(id int64) { i.ID = id }

// SocialProfile is a per-platform presence of an influencer. The
// (influencer, platform) pair is unique.
type SocialProfile struct {
	ID           int64  `json:"id" bson:"_id"`
	InfluencerID int64  `json:"influencer_id" bson:"influencer_id"`
	Platform     string `json:"platform" bson:"platform"`
	URL          string `json:"url" bson:"url"`
	Followers    int64  `json:"followers" bson:"followers"`
	Timestamps   `bson:",inline"`
}

func (p *SocialProfile) GetID() int64   { return p.ID }
func (p *SocialProfile) SetID(id int64) { p.ID = id }

// Queryable influencer fields.
const (
	InfluencerFieldUsername specification.Field = "username"
	InfluencerFieldEmail    specification.Field = "email"
	InfluencerFieldNameEn   specification.Field = "name_en"
	InfluencerFieldNameAr   specification.Field = "name_ar"
)

// Queryable social-profile fields.
const (
	ProfileFieldInfluencerID specification.Field = "influencer_id"
	ProfileFieldPlatform     specification.Field = "platform"
	ProfileFieldFollowers    specification.Field = "followers"
)
