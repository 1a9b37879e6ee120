package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
	"github.com/promobeats/backoffice/internal/core/specification"
)

const entityBrand = "brand"

// BrandService orchestrates brand operations. The display name is unique,
// checked independently per language.
type BrandService struct {
	repos    *ports.RepoSet
	uow      ports.UnitOfWork
	activity ports.ActivityLogger
	log      zerolog.Logger
}

func NewBrandService(repos *ports.RepoSet, uow ports.UnitOfWork, activity ports.ActivityLogger, log zerolog.Logger) *BrandService {
	return &BrandService{repos: repos, uow: uow, activity: activity, log: log}
}

type CreateBrandInput struct {
	NameEn     string
	NameAr     string
	LogoURL    string
	WebsiteURL string
}

func (s *BrandService) Create(ctx context.Context, in CreateBrandInput) (Result[*domain.Brand], error) {
	f, err := s.checkNames(ctx, &in.NameEn, &in.NameAr, 0)
	if err != nil {
		return Result[*domain.Brand]{}, err
	}
	if f != nil {
		return Fail[*domain.Brand](f), nil
	}

	brand := &domain.Brand{
		NameEn:     in.NameEn,
		NameAr:     in.NameAr,
		LogoURL:    in.LogoURL,
		WebsiteURL: in.WebsiteURL,
	}
	if err := s.repos.Brands.Create(ctx, brand); err != nil {
		return Result[*domain.Brand]{}, err
	}
	s.activity.LogCreate(ctx, entityBrand, formatID(brand.ID), brand)
	return Ok(brand), nil
}

func (s *BrandService) List(ctx context.Context, in ListInput) (Result[Page[*domain.Brand]], error) {
	page, limit := in.window()

	q := specification.New[*domain.Brand]().
		SearchFor(in.Search, domain.BrandFieldNameEn, domain.BrandFieldNameAr)
	total, err := s.repos.Brands.Count(ctx, q)
	if err != nil {
		return Result[Page[*domain.Brand]]{}, err
	}
	items, err := s.repos.Brands.FindMany(ctx, q.Clone().
		OrderBy(domain.BrandFieldNameEn).
		Paginate(page, limit))
	if err != nil {
		return Result[Page[*domain.Brand]]{}, err
	}
	return Ok(NewPage(items, total, page, limit)), nil
}

func (s *BrandService) Get(ctx context.Context, id int64) (Result[*domain.Brand], error) {
	brand, err := s.repos.Brands.FindByID(ctx, id)
	if err != nil {
		return Result[*domain.Brand]{}, err
	}
	if brand == nil {
		return Fail[*domain.Brand](NotFound("brand")), nil
	}
	return Ok(brand), nil
}

type UpdateBrandInput struct {
	NameEn     *string
	NameAr     *string
	LogoURL    *string
	WebsiteURL *string
}

func (s *BrandService) Update(ctx context.Context, id int64, in UpdateBrandInput) (Result[*domain.Brand], error) {
	brand, err := s.repos.Brands.FindByID(ctx, id)
	if err != nil {
		return Result[*domain.Brand]{}, err
	}
	if brand == nil {
		return Fail[*domain.Brand](NotFound("brand")), nil
	}
	before := *brand

	f, err := s.checkNames(ctx, in.NameEn, in.NameAr, id)
	if err != nil {
		return Result[*domain.Brand]{}, err
	}
	if f != nil {
		return Fail[*domain.Brand](f), nil
	}

	if in.NameEn != nil {
		brand.NameEn = *in.NameEn
	}
	if in.NameAr != nil {
		brand.NameAr = *in.NameAr
	}
	if in.LogoURL != nil {
		brand.LogoURL = *in.LogoURL
	}
	if in.WebsiteURL != nil {
		brand.WebsiteURL = *in.WebsiteURL
	}

	if err := s.repos.Brands.Update(ctx, brand); err != nil {
		return Result[*domain.Brand]{}, err
	}
	s.activity.LogUpdate(ctx, entityBrand, formatID(id), &before, brand)
	return Ok(brand), nil
}

// Delete removes a brand unless beats still reference it. The reference
// check and the delete run in one Unit of Work so a beat created in between
// cannot be left dangling.
func (s *BrandService) Delete(ctx context.Context, id int64) (Result[struct{}], error) {
	var res Result[struct{}]
	var before *domain.Brand
	err := s.uow.Execute(ctx, func(ctx context.Context, r *ports.RepoSet) error {
		brand, err := r.Brands.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if brand == nil {
			res = Fail[struct{}](NotFound("brand"))
			return nil
		}
		before = brand

		referenced, err := r.Beats.Exists(ctx,
			specification.New[*domain.Beat]().WhereEq(domain.BeatFieldBrandID, id))
		if err != nil {
			return err
		}
		if referenced {
			res = Fail[struct{}](HasDependents("brand", "beats"))
			return nil
		}

		if err := r.Brands.Delete(ctx, id); err != nil {
			return err
		}
		res = Ok(struct{}{})
		return nil
	})
	if err != nil {
		return Result[struct{}]{}, err
	}
	if res.OK() {
		s.activity.LogDelete(ctx, entityBrand, formatID(id), before)
	}
	return res, nil
}

// checkNames verifies name uniqueness per language, excluding excludeID
// (0 for none). Nil inputs are skipped, so Update only re-checks what
// actually changes.
func (s *BrandService) checkNames(ctx context.Context, nameEn, nameAr *string, excludeID int64) (*Failure, error) {
	check := func(field specification.Field, label, value string) (*Failure, error) {
		q := specification.New[*domain.Brand]().WhereEq(field, value)
		if excludeID != 0 {
			q.WhereNe(domain.FieldID, excludeID)
		}
		taken, err := s.repos.Brands.Exists(ctx, q)
		if err != nil {
			return nil, err
		}
		if taken {
			return AlreadyExists(label, value), nil
		}
		return nil, nil
	}
	if nameEn != nil {
		if f, err := check(domain.BrandFieldNameEn, "name_en", *nameEn); f != nil || err != nil {
			return f, err
		}
	}
	if nameAr != nil {
		if f, err := check(domain.BrandFieldNameAr, "name_ar", *nameAr); f != nil || err != nil {
			return f, err
		}
	}
	return nil, nil
}
