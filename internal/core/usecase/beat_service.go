package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
	"github.com/promobeats/backoffice/internal/core/specification"
)

const entityBeat = "beat"

// BeatService orchestrates beat operations. A beat holds non-owning
// references to one influencer and one brand; both must exist at write time.
type BeatService struct {
	repos    *ports.RepoSet
	activity ports.ActivityLogger
	log      zerolog.Logger
}

func NewBeatService(repos *ports.RepoSet, activity ports.ActivityLogger, log zerolog.Logger) *BeatService {
	return &BeatService{repos: repos, activity: activity, log: log}
}

type CreateBeatInput struct {
	Caption      string
	MediaURL     string
	ThumbnailURL string
	Status       domain.BeatStatus
	InfluencerID int64
	BrandID      int64
}

func (s *BeatService) Create(ctx context.Context, in CreateBeatInput) (Result[*domain.Beat], error) {
	if f, err := s.checkReferences(ctx, &in.InfluencerID, &in.BrandID); f != nil || err != nil {
		if err != nil {
			return Result[*domain.Beat]{}, err
		}
		return Fail[*domain.Beat](f), nil
	}

	status := in.Status
	if status == "" {
		status = domain.BeatStatusDraft
	}
	beat := &domain.Beat{
		Caption:      in.Caption,
		MediaURL:     in.MediaURL,
		ThumbnailURL: in.ThumbnailURL,
		Status:       status,
		InfluencerID: in.InfluencerID,
		BrandID:      in.BrandID,
	}
	if err := s.repos.Beats.Create(ctx, beat); err != nil {
		return Result[*domain.Beat]{}, err
	}
	s.activity.LogCreate(ctx, entityBeat, formatID(beat.ID), beat)
	return Ok(beat), nil
}

// ListBeatsInput narrows a beat listing beyond the shared paging fields.
type ListBeatsInput struct {
	ListInput
	Status       domain.BeatStatus
	InfluencerID int64
	BrandID      int64
}

func (s *BeatService) List(ctx context.Context, in ListBeatsInput) (Result[Page[*domain.Beat]], error) {
	page, limit := in.window()

	q := specification.New[*domain.Beat]().
		SearchFor(in.Search, domain.BeatFieldCaption)
	if in.Status != "" {
		q.WhereEq(domain.BeatFieldStatus, in.Status)
	}
	if in.InfluencerID != 0 {
		q.WhereEq(domain.BeatFieldInfluencerID, in.InfluencerID)
	}
	if in.BrandID != 0 {
		q.WhereEq(domain.BeatFieldBrandID, in.BrandID)
	}

	total, err := s.repos.Beats.Count(ctx, q)
	if err != nil {
		return Result[Page[*domain.Beat]]{}, err
	}
	items, err := s.repos.Beats.FindMany(ctx, q.Clone().
		OrderByDesc(domain.FieldCreatedAt).
		Paginate(page, limit))
	if err != nil {
		return Result[Page[*domain.Beat]]{}, err
	}
	return Ok(NewPage(items, total, page, limit)), nil
}

// Get loads one beat with its referenced influencer and brand.
func (s *BeatService) Get(ctx context.Context, id int64) (Result[*domain.Beat], error) {
	beat, err := s.repos.Beats.FindOne(ctx,
		specification.New[*domain.Beat]().
			WhereEq(domain.FieldID, id).
			Include("influencer", "brand"))
	if err != nil {
		return Result[*domain.Beat]{}, err
	}
	if beat == nil {
		return Fail[*domain.Beat](NotFound("beat")), nil
	}
	return Ok(beat), nil
}

type UpdateBeatInput struct {
	Caption      *string
	MediaURL     *string
	ThumbnailURL *string
	Status       *domain.BeatStatus
	InfluencerID *int64
	BrandID      *int64
}

// Update applies a partial mutation; changed references are re-verified.
func (s *BeatService) Update(ctx context.Context, id int64, in UpdateBeatInput) (Result[*domain.Beat], error) {
	beat, err := s.repos.Beats.FindByID(ctx, id)
	if err != nil {
		return Result[*domain.Beat]{}, err
	}
	if beat == nil {
		return Fail[*domain.Beat](NotFound("beat")), nil
	}
	before := *beat

	if f, err := s.checkReferences(ctx, in.InfluencerID, in.BrandID); f != nil || err != nil {
		if err != nil {
			return Result[*domain.Beat]{}, err
		}
		return Fail[*domain.Beat](f), nil
	}

	if in.Caption != nil {
		beat.Caption = *in.Caption
	}
	if in.MediaURL != nil {
		beat.MediaURL = *in.MediaURL
	}
	if in.ThumbnailURL != nil {
		beat.ThumbnailURL = *in.ThumbnailURL
	}
	if in.Status != nil {
		beat.Status = *in.Status
	}
	if in.InfluencerID != nil {
		beat.InfluencerID = *in.InfluencerID
	}
	if in.BrandID != nil {
		beat.BrandID = *in.BrandID
	}

	if err := s.repos.Beats.Update(ctx, beat); err != nil {
		return Result[*domain.Beat]{}, err
	}
	s.activity.LogUpdate(ctx, entityBeat, formatID(id), &before, beat)
	return Ok(beat), nil
}

func (s *BeatService) Delete(ctx context.Context, id int64) (Result[struct{}], error) {
	beat, err := s.repos.Beats.FindByID(ctx, id)
	if err != nil {
		return Result[struct{}]{}, err
	}
	if beat == nil {
		return Fail[struct{}](NotFound("beat")), nil
	}
	if err := s.repos.Beats.Delete(ctx, id); err != nil {
		return Result[struct{}]{}, err
	}
	s.activity.LogDelete(ctx, entityBeat, formatID(id), beat)
	return Ok(struct{}{}), nil
}

// checkReferences verifies the referenced influencer and brand exist. Nil
// ids are skipped (unchanged on update).
func (s *BeatService) checkReferences(ctx context.Context, influencerID, brandID *int64) (*Failure, error) {
	if influencerID != nil {
		influencer, err := s.repos.Influencers.FindByID(ctx, *influencerID)
		if err != nil {
			return nil, err
		}
		if influencer == nil {
			return NotFound("influencer"), nil
		}
	}
	if brandID != nil {
		brand, err := s.repos.Brands.FindByID(ctx, *brandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return NotFound("brand"), nil
		}
	}
	return nil, nil
}
