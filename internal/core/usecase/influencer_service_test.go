package usecase

import (
	"context"
	"testing"

	"github.com/promobeats/backoffice/internal/core/domain"
	"github.com/promobeats/backoffice/internal/core/ports"
)

func newInfluencerService(repos *ports.RepoSet) (*InfluencerService, *fakeUOW, *recordingActivity) {
	uow := &fakeUOW{repos: repos}
	activity := &recordingActivity{}
	return NewInfluencerService(repos, uow, activity, testLog()), uow, activity
}

func seedInfluencer(t *testing.T, repos *ports.RepoSet, username, email string) *domain.Influencer {
	influencer := &domain.Influencer{Username: username, Email: email, NameEn: username}
	if err := repos.Influencers.Create(context.Background(), influencer); err != nil {
		t.Fatalf("seed influencer: %v", err)
	}
	return influencer
}

func seedBrand(t *testing.T, repos *ports.RepoSet, nameEn, nameAr string) *domain.Brand {
	brand := &domain.Brand{NameEn: nameEn, NameAr: nameAr}
	if err := repos.Brands.Create(context.Background(), brand); err != nil {
		t.Fatalf("seed brand: %v", err)
	}
	return brand
}

func TestInfluencerService_Create_Success(t *testing.T) {
	repos := newTestRepos()
	svc, _, activity := newInfluencerService(repos)

	res, err := svc.Create(context.Background(), CreateInfluencerInput{
		Username: "nora.beats",
		Email:    "nora@creators.io",
		NameEn:   "Nora",
		NameAr:   "نورا",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Failure())
	}
	if res.Value().ID == 0 {
		t.Fatal("expected a generated id")
	}
	if len(activity.entries) != 1 || activity.entries[0].entityType != "influencer" {
		t.Fatalf("expected one influencer activity entry, got %v", activity.entries)
	}
}

func TestInfluencerService_Create_DuplicateUsername(t *testing.T) {
	repos := newTestRepos()
	seedInfluencer(t, repos, "nora.beats", "nora@creators.io")
	svc, _, _ := newInfluencerService(repos)

	res, err := svc.Create(context.Background(), CreateInfluencerInput{
		Username: "nora.beats",
		Email:    "other@creators.io",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK() || res.Failure().Code != CodeAlreadyExists {
		t.Fatalf("expected %s, got %+v", CodeAlreadyExists, res)
	}
}

func TestInfluencerService_Create_DuplicateEmail(t *testing.T) {
	repos := newTestRepos()
	seedInfluencer(t, repos, "nora.beats", "nora@creators.io")
	svc, _, _ := newInfluencerService(repos)

	res, err := svc.Create(context.Background(), CreateInfluencerInput{
		Username: "other.handle",
		Email:    "nora@creators.io",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK() || res.Failure().Code != CodeAlreadyExists {
		t.Fatalf("expected %s, got %+v", CodeAlreadyExists, res)
	}
}

func TestInfluencerService_Update_OwnUsernameExcluded(t *testing.T) {
	repos := newTestRepos()
	influencer := seedInfluencer(t, repos, "nora.beats", "nora@creators.io")
	svc, _, _ := newInfluencerService(repos)

	same := "nora.beats"
	nameEn := "Nora B"
	res, err := svc.Update(context.Background(), influencer.ID, UpdateInfluencerInput{Username: &same, NameEn: &nameEn})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("re-submitting the own username must pass, got %v", res.Failure())
	}
	if res.Value().NameEn != "Nora B" {
		t.Fatalf("name not applied, got %q", res.Value().NameEn)
	}
}

func TestInfluencerService_Delete_BlockedByBeats(t *testing.T) {
	repos := newTestRepos()
	influencer := seedInfluencer(t, repos, "nora.beats", "nora@creators.io")
	brand := seedBrand(t, repos, "Glow", "جلو")
	beat := &domain.Beat{Caption: "spring drop", Status: domain.BeatStatusDraft, InfluencerID: influencer.ID, BrandID: brand.ID}
	if err := repos.Beats.Create(context.Background(), beat); err != nil {
		t.Fatalf("seed beat: %v", err)
	}
	svc, uow, _ := newInfluencerService(repos)

	res, err := svc.Delete(context.Background(), influencer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK() || res.Failure().Code != CodeHasDependents {
		t.Fatalf("expected %s, got %+v", CodeHasDependents, res)
	}
	if uow.commits != 1 {
		t.Fatalf("a tagged failure must commit, commits=%d", uow.commits)
	}
	if got, _ := repos.Influencers.FindByID(context.Background(), influencer.ID); got == nil {
		t.Fatal("influencer must survive a blocked delete")
	}
}

func TestInfluencerService_Delete_CascadesProfiles(t *testing.T) {
	repos := newTestRepos()
	influencer := seedInfluencer(t, repos, "nora.beats", "nora@creators.io")
	other := seedInfluencer(t, repos, "omar.vlogs", "omar@creators.io")
	for _, p := range []*domain.SocialProfile{
		{InfluencerID: influencer.ID, Platform: "instagram", URL: "https://instagram.com/nora.beats"},
		{InfluencerID: influencer.ID, Platform: "tiktok", URL: "https://tiktok.com/@nora.beats"},
		{InfluencerID: other.ID, Platform: "instagram", URL: "https://instagram.com/omar.vlogs"},
	} {
		if err := repos.Profiles.Create(context.Background(), p); err != nil {
			t.Fatalf("seed profile: %v", err)
		}
	}
	svc, _, _ := newInfluencerService(repos)

	res, err := svc.Delete(context.Background(), influencer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Failure())
	}
	left, _ := repos.Profiles.Count(context.Background(), nil)
	if left != 1 {
		t.Fatalf("only the other influencer's profile may survive, %d left", left)
	}
}

func TestInfluencerService_AddProfile_UnknownParent(t *testing.T) {
	repos := newTestRepos()
	svc, _, _ := newInfluencerService(repos)

	res, err := svc.AddProfile(context.Background(), 99, ProfileInput{Platform: "instagram", URL: "https://instagram.com/x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK() || res.Failure().Code != CodeNotFound {
		t.Fatalf("expected %s, got %+v", CodeNotFound, res)
	}
}

func TestInfluencerService_AddProfile_PlatformTaken(t *testing.T) {
	repos := newTestRepos()
	influencer := seedInfluencer(t, repos, "nora.beats", "nora@creators.io")
	svc, _, _ := newInfluencerService(repos)

	first, err := svc.AddProfile(context.Background(), influencer.ID, ProfileInput{
		Platform: "instagram", URL: "https://instagram.com/nora.beats", Followers: 120_000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.OK() {
		t.Fatalf("expected success, got %v", first.Failure())
	}

	second, err := svc.AddProfile(context.Background(), influencer.ID, ProfileInput{
		Platform: "instagram", URL: "https://instagram.com/nora.alt",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.OK() || second.Failure().Code != CodeAlreadyExists {
		t.Fatalf("expected %s, got %+v", CodeAlreadyExists, second)
	}
}

func TestInfluencerService_UpdateProfile_PlatformConflict(t *testing.T) {
	repos := newTestRepos()
	influencer := seedInfluencer(t, repos, "nora.beats", "nora@creators.io")
	instagram := &domain.SocialProfile{InfluencerID: influencer.ID, Platform: "instagram", URL: "https://instagram.com/nora.beats"}
	tiktok := &domain.SocialProfile{InfluencerID: influencer.ID, Platform: "tiktok", URL: "https://tiktok.com/@nora.beats"}
	for _, p := range []*domain.SocialProfile{instagram, tiktok} {
		if err := repos.Profiles.Create(context.Background(), p); err != nil {
			t.Fatalf("seed profile: %v", err)
		}
	}
	svc, _, _ := newInfluencerService(repos)

	conflict := "instagram"
	res, err := svc.UpdateProfile(context.Background(), tiktok.ID, UpdateProfileInput{Platform: &conflict})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK() || res.Failure().Code != CodeAlreadyExists {
		t.Fatalf("expected %s, got %+v", CodeAlreadyExists, res)
	}

	followers := int64(250_000)
	ok, err := svc.UpdateProfile(context.Background(), tiktok.ID, UpdateProfileInput{Followers: &followers})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok.OK() || ok.Value().Followers != 250_000 {
		t.Fatalf("follower update failed: %+v", ok)
	}
}

func TestInfluencerService_RemoveProfile(t *testing.T) {
	repos := newTestRepos()
	influencer := seedInfluencer(t, repos, "nora.beats", "nora@creators.io")
	profile := &domain.SocialProfile{InfluencerID: influencer.ID, Platform: "instagram", URL: "https://instagram.com/nora.beats"}
	if err := repos.Profiles.Create(context.Background(), profile); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	svc, _, activity := newInfluencerService(repos)

	res, err := svc.RemoveProfile(context.Background(), profile.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Failure())
	}
	if len(activity.entries) != 1 || activity.entries[0].entityType != "social_profile" {
		t.Fatalf("expected one profile activity entry, got %v", activity.entries)
	}

	missing, err := svc.RemoveProfile(context.Background(), profile.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.OK() || missing.Failure().Code != CodeNotFound {
		t.Fatalf("expected %s, got %+v", CodeNotFound, missing)
	}
}
