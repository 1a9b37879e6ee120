package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/promobeats/backoffice/internal/core/domain"
)

// hasInclude reports whether the include list asks for path, either directly
// or through a nested path such as "assignments.role".
func hasInclude(includes []string, path string) bool {
	for _, p := range includes {
		if p == path || strings.HasPrefix(p, path+".") {
			return true
		}
	}
	return false
}

func hydrateAccounts(ctx context.Context, db *mongo.Database, includes []string, items []*domain.AccountHolder) error {
	if !hasInclude(includes, "assignments") {
		return nil
	}

	ids := make([]string, 0, len(items))
	byID := make(map[string]*domain.AccountHolder, len(items))
	for _, h := range items {
		h.Assignments = nil
		ids = append(ids, h.ID)
		byID[h.ID] = h
	}

	cur, err := db.Collection(collectionAssignments).Find(ctx, bson.M{"holder_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	var assignments []*domain.RoleAssignment
	if err := cur.All(ctx, &assignments); err != nil {
		return err
	}
	for _, a := range assignments {
		if h, ok := byID[a.HolderID]; ok {
			h.Assignments = append(h.Assignments, a)
		}
	}

	if hasInclude(includes, "assignments.role") {
		return attachRoles(ctx, db, assignments)
	}
	return nil
}

func hydrateAssignments(ctx context.Context, db *mongo.Database, includes []string, items []*domain.RoleAssignment) error {
	if !hasInclude(includes, "role") {
		return nil
	}
	return attachRoles(ctx, db, items)
}

// attachRoles resolves the Role pointer for a batch of assignments with a
// single lookup over the distinct role ids.
func attachRoles(ctx context.Context, db *mongo.Database, assignments []*domain.RoleAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(assignments))
	ids := make([]int64, 0, len(assignments))
	for _, a := range assignments {
		if _, ok := seen[a.RoleID]; ok {
			continue
		}
		seen[a.RoleID] = struct{}{}
		ids = append(ids, a.RoleID)
	}

	cur, err := db.Collection(collectionRoles).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	var roles []*domain.Role
	if err := cur.All(ctx, &roles); err != nil {
		return err
	}
	byID := make(map[int64]*domain.Role, len(roles))
	for _, r := range roles {
		byID[r.ID] = r
	}
	for _, a := range assignments {
		a.Role = byID[a.RoleID]
	}
	return nil
}

func hydrateInfluencers(ctx context.Context, db *mongo.Database, includes []string, items []*domain.Influencer) error {
	if !hasInclude(includes, "profiles") {
		return nil
	}

	ids := make([]int64, 0, len(items))
	byID := make(map[int64]*domain.Influencer, len(items))
	for _, inf := range items {
		inf.Profiles = nil
		ids = append(ids, inf.ID)
		byID[inf.ID] = inf
	}

	cur, err := db.Collection(collectionProfiles).Find(ctx, bson.M{"influencer_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	var profiles []*domain.SocialProfile
	if err := cur.All(ctx, &profiles); err != nil {
		return err
	}
	for _, p := range profiles {
		if inf, ok := byID[p.InfluencerID]; ok {
			inf.Profiles = append(inf.Profiles, p)
		}
	}
	return nil
}

func hydrateBeats(ctx context.Context, db *mongo.Database, includes []string, items []*domain.Beat) error {
	if hasInclude(includes, "influencer") {
		seen := make(map[int64]struct{}, len(items))
		ids := make([]int64, 0, len(items))
		for _, b := range items {
			if _, ok := seen[b.InfluencerID]; ok {
				continue
			}
			seen[b.InfluencerID] = struct{}{}
			ids = append(ids, b.InfluencerID)
		}
		cur, err := db.Collection(collectionInfluencers).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return err
		}
		var influencers []*domain.Influencer
		if err := cur.All(ctx, &influencers); err != nil {
			return err
		}
		byID := make(map[int64]*domain.Influencer, len(influencers))
		for _, inf := range influencers {
			byID[inf.ID] = inf
		}
		for _, b := range items {
			b.Influencer = byID[b.InfluencerID]
		}
	}

	if hasInclude(includes, "brand") {
		seen := make(map[int64]struct{}, len(items))
		ids := make([]int64, 0, len(items))
		for _, b := range items {
			if _, ok := seen[b.BrandID]; ok {
				continue
			}
			seen[b.BrandID] = struct{}{}
			ids = append(ids, b.BrandID)
		}
		cur, err := db.Collection(collectionBrands).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return err
		}
		var brands []*domain.Brand
		if err := cur.All(ctx, &brands); err != nil {
			return err
		}
		byID := make(map[int64]*domain.Brand, len(brands))
		for _, br := range brands {
			byID[br.ID] = br
		}
		for _, b := range items {
			b.Brand = byID[b.BrandID]
		}
	}
	return nil
}
