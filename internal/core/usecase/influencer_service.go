package usecase

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
	"github.com/promobeats/backoffice/internal/core/specification"
)

const (
	entityInfluencer = "influencer"
	entityProfile    = "social_profile"
)

// InfluencerService orchestrates influencer and social-profile operations.
// Social profiles are exclusively owned by their influencer: they never
// outlive it and cascade on delete.
type InfluencerService struct {
	repos    *ports.RepoSet
	uow      ports.UnitOfWork
	activity ports.ActivityLogger
	log      zerolog.Logger
}

func NewInfluencerService(repos *ports.RepoSet, uow ports.UnitOfWork, activity ports.ActivityLogger, log zerolog.Logger) *InfluencerService {
	return &InfluencerService{repos: repos, uow: uow, activity: activity, log: log}
}

type CreateInfluencerInput struct {
	Username        string
	Email           string
	NameEn          string
	NameAr          string
	ProfileImageURL string
}

// Create registers a new influencer. Username and email are each checked for
// uniqueness before the write; the storage-level unique indexes remain the
// authoritative guard against races.
func (s *InfluencerService) Create(ctx context.Context, in CreateInfluencerInput) (Result[*domain.Influencer], error) {
	f, err := s.checkUnique(ctx, domain.InfluencerFieldUsername, "username", in.Username, 0)
	if err != nil {
		return Result[*domain.Influencer]{}, err
	}
	if f == nil {
		f, err = s.checkUnique(ctx, domain.InfluencerFieldEmail, "email", in.Email, 0)
		if err != nil {
			return Result[*domain.Influencer]{}, err
		}
	}
	if f != nil {
		return Fail[*domain.Influencer](f), nil
	}

	influencer := &domain.Influencer{
		Username:        in.Username,
		Email:           in.Email,
		NameEn:          in.NameEn,
		NameAr:          in.NameAr,
		ProfileImageURL: in.ProfileImageURL,
	}
	if err := s.repos.Influencers.Create(ctx, influencer); err != nil {
		return Result[*domain.Influencer]{}, err
	}
	s.activity.LogCreate(ctx, entityInfluencer, formatID(influencer.ID), influencer)
	return Ok(influencer), nil
}

// List returns one page of influencers, free-text filtered on username and
// display names.
func (s *InfluencerService) List(ctx context.Context, in ListInput) (Result[Page[*domain.Influencer]], error) {
	page, limit := in.window()

	q := specification.New[*domain.Influencer]().
		SearchFor(in.Search, domain.InfluencerFieldUsername, domain.InfluencerFieldNameEn, domain.InfluencerFieldNameAr)
	total, err := s.repos.Influencers.Count(ctx, q)
	if err != nil {
		return Result[Page[*domain.Influencer]]{}, err
	}
	items, err := s.repos.Influencers.FindMany(ctx, q.Clone().
		OrderByDesc(domain.FieldCreatedAt).
		Paginate(page, limit))
	if err != nil {
		return Result[Page[*domain.Influencer]]{}, err
	}
	return Ok(NewPage(items, total, page, limit)), nil
}

// Get loads one influencer with its social profiles.
func (s *InfluencerService) Get(ctx context.Context, id int64) (Result[*domain.Influencer], error) {
	influencer, err := s.repos.Influencers.FindOne(ctx,
		specification.New[*domain.Influencer]().
			WhereEq(domain.FieldID, id).
			Include("profiles"))
	if err != nil {
		return Result[*domain.Influencer]{}, err
	}
	if influencer == nil {
		return Fail[*domain.Influencer](NotFound("influencer")), nil
	}
	return Ok(influencer), nil
}

type UpdateInfluencerInput struct {
	Username        *string
	Email           *string
	NameEn          *string
	NameAr          *string
	ProfileImageURL *string
}

// Update applies a partial mutation; changed username or email is re-checked
// for uniqueness excluding the influencer's own row.
func (s *InfluencerService) Update(ctx context.Context, id int64, in UpdateInfluencerInput) (Result[*domain.Influencer], error) {
	influencer, err := s.repos.Influencers.FindByID(ctx, id)
	if err != nil {
		return Result[*domain.Influencer]{}, err
	}
	if influencer == nil {
		return Fail[*domain.Influencer](NotFound("influencer")), nil
	}
	before := *influencer

	if in.Username != nil {
		f, err := s.checkUnique(ctx, domain.InfluencerFieldUsername, "username", *in.Username, id)
		if err != nil {
			return Result[*domain.Influencer]{}, err
		}
		if f != nil {
			return Fail[*domain.Influencer](f), nil
		}
		influencer.Username = *in.Username
	}
	if in.Email != nil {
		f, err := s.checkUnique(ctx, domain.InfluencerFieldEmail, "email", *in.Email, id)
		if err != nil {
			return Result[*domain.Influencer]{}, err
		}
		if f != nil {
			return Fail[*domain.Influencer](f), nil
		}
		influencer.Email = *in.Email
	}
	if in.NameEn != nil {
		influencer.NameEn = *in.NameEn
	}
	if in.NameAr != nil {
		influencer.NameAr = *in.NameAr
	}
	if in.ProfileImageURL != nil {
		influencer.ProfileImageURL = *in.ProfileImageURL
	}

	if err := s.repos.Influencers.Update(ctx, influencer); err != nil {
		return Result[*domain.Influencer]{}, err
	}
	s.activity.LogUpdate(ctx, entityInfluencer, formatID(id), &before, influencer)
	return Ok(influencer), nil
}

// Delete removes an influencer. Blocked with Has-Dependents while any beat
// references it; otherwise its social profiles are cascaded in the same
// Unit of Work.
func (s *InfluencerService) Delete(ctx context.Context, id int64) (Result[struct{}], error) {
	var res Result[struct{}]
	var before *domain.Influencer
	err := s.uow.Execute(ctx, func(ctx context.Context, r *ports.RepoSet) error {
		influencer, err := r.Influencers.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if influencer == nil {
			res = Fail[struct{}](NotFound("influencer"))
			return nil
		}
		before = influencer

		promoted, err := r.Beats.Exists(ctx,
			specification.New[*domain.Beat]().WhereEq(domain.BeatFieldInfluencerID, id))
		if err != nil {
			return err
		}
		if promoted {
			res = Fail[struct{}](HasDependents("influencer", "beats"))
			return nil
		}

		profiles, err := r.Profiles.FindMany(ctx,
			specification.New[*domain.SocialProfile]().WhereEq(domain.ProfileFieldInfluencerID, id))
		if err != nil {
			return err
		}
		ids := make([]int64, 0, len(profiles))
		for _, p := range profiles {
			ids = append(ids, p.ID)
		}
		if err := r.Profiles.DeleteMany(ctx, ids); err != nil {
			return err
		}
		if err := r.Influencers.Delete(ctx, id); err != nil {
			return err
		}
		res = Ok(struct{}{})
		return nil
	})
	if err != nil {
		return Result[struct{}]{}, err
	}
	if res.OK() {
		s.activity.LogDelete(ctx, entityInfluencer, formatID(id), before)
	}
	return res, nil
}

type ProfileInput struct {
	Platform  string
	URL       string
	Followers int64
}

// AddProfile attaches a social profile to an existing influencer. One
// profile per platform per influencer.
func (s *InfluencerService) AddProfile(ctx context.Context, influencerID int64, in ProfileInput) (Result[*domain.SocialProfile], error) {
	parent, err := s.repos.Influencers.FindByID(ctx, influencerID)
	if err != nil {
		return Result[*domain.SocialProfile]{}, err
	}
	if parent == nil {
		return Fail[*domain.SocialProfile](NotFound("influencer")), nil
	}

	taken, err := s.repos.Profiles.Exists(ctx,
		specification.New[*domain.SocialProfile]().
			WhereEq(domain.ProfileFieldInfluencerID, influencerID).
			WhereEq(domain.ProfileFieldPlatform, in.Platform))
	if err != nil {
		return Result[*domain.SocialProfile]{}, err
	}
	if taken {
		return Fail[*domain.SocialProfile](AlreadyExists("platform", in.Platform)), nil
	}

	profile := &domain.SocialProfile{
		InfluencerID: influencerID,
		Platform:     in.Platform,
		URL:          in.URL,
		Followers:    in.Followers,
	}
	if err := s.repos.Profiles.Create(ctx, profile); err != nil {
		return Result[*domain.SocialProfile]{}, err
	}
	s.activity.LogCreate(ctx, entityProfile, formatID(profile.ID), profile)
	return Ok(profile), nil
}

type UpdateProfileInput struct {
	Platform  *string
	URL       *string
	Followers *int64
}

// UpdateProfile applies a partial mutation; a changed platform is re-checked
// against the owning influencer's other profiles.
func (s *InfluencerService) UpdateProfile(ctx context.Context, profileID int64, in UpdateProfileInput) (Result[*domain.SocialProfile], error) {
	profile, err := s.repos.Profiles.FindByID(ctx, profileID)
	if err != nil {
		return Result[*domain.SocialProfile]{}, err
	}
	if profile == nil {
		return Fail[*domain.SocialProfile](NotFound("social profile")), nil
	}
	before := *profile

	if in.Platform != nil {
		taken, err := s.repos.Profiles.Exists(ctx,
			specification.New[*domain.SocialProfile]().
				WhereEq(domain.ProfileFieldInfluencerID, profile.InfluencerID).
				WhereEq(domain.ProfileFieldPlatform, *in.Platform).
				WhereNe(domain.FieldID, profileID))
		if err != nil {
			return Result[*domain.SocialProfile]{}, err
		}
		if taken {
			return Fail[*domain.SocialProfile](AlreadyExists("platform", *in.Platform)), nil
		}
		profile.Platform = *in.Platform
	}
	if in.URL != nil {
		profile.URL = *in.URL
	}
	if in.Followers != nil {
		profile.Followers = *in.Followers
	}

	if err := s.repos.Profiles.Update(ctx, profile); err != nil {
		return Result[*domain.SocialProfile]{}, err
	}
	s.activity.LogUpdate(ctx, entityProfile, formatID(profileID), &before, profile)
	return Ok(profile), nil
}

// RemoveProfile deletes one social profile.
func (s *InfluencerService) RemoveProfile(ctx context.Context, profileID int64) (Result[struct{}], error) {
	profile, err := s.repos.Profiles.FindByID(ctx, profileID)
	if err != nil {
		return Result[struct{}]{}, err
	}
	if profile == nil {
		return Fail[struct{}](NotFound("social profile")), nil
	}
	if err := s.repos.Profiles.Delete(ctx, profileID); err != nil {
		return Result[struct{}]{}, err
	}
	s.activity.LogDelete(ctx, entityProfile, formatID(profileID), profile)
	return Ok(struct{}{}), nil
}

// checkUnique reports an Already-Exists failure when another influencer
// (excluding excludeID, 0 for none) already holds value in field.
func (s *InfluencerService) checkUnique(ctx context.Context, field specification.Field, name, value string, excludeID int64) (*Failure, error) {
	q := specification.New[*domain.Influencer]().WhereEq(field, value)
	if excludeID != 0 {
		q.WhereNe(domain.FieldID, excludeID)
	}
	taken, err := s.repos.Influencers.Exists(ctx, q)
	if err != nil {
		return nil, err
	}
	if taken {
		return AlreadyExists(name, value), nil
	}
	return nil, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
