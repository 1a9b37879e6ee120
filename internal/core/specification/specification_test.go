package specification

import (
	"errors"
	"testing"
	"time"
)

type creator struct {
	ID        int64     `bson:"_id"`
	Handle    string    `bson:"handle"`
	Followers int64     `bson:"followers"`
	Verified  bool      `bson:"verified"`
	CreatedAt time.Time `bson:"created_at"`
}

func sampleCreators() []*creator {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*creator{
		{ID: 1, Handle: "amira.codes", Followers: 1200, Verified: true, CreatedAt: base},
		{ID: 2, Handle: "Bilal_Vlogs", Followers: 50000, Verified: false, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Handle: "carmen", Followers: 300, Verified: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 4, Handle: "dina.daily", Followers: 980000, Verified: true, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func TestQuery_Matches_Operators(t *testing.T) {
	items := sampleCreators()

	cases := []struct {
		name string
		q    *Query[*creator]
		want []int64
	}{
		{"eq", New[*creator]().WhereEq("handle", "carmen"), []int64{3}},
		{"ne", New[*creator]().WhereNe("verified", true), []int64{2}},
		{"gt", New[*creator]().WhereGt("followers", int64(1200)), []int64{2, 4}},
		{"gte", New[*creator]().WhereGte("followers", int64(1200)), []int64{1, 2, 4}},
		{"lt", New[*creator]().WhereLt("followers", 1200), []int64{3}},
		{"lte", New[*creator]().WhereLte("followers", 1200), []int64{1, 3}},
		{"in", New[*creator]().WhereIn("_id", int64(1), int64(4)), []int64{1, 4}},
		{"between", New[*creator]().WhereBetween("followers", 300, 50000), []int64{1, 2, 3}},
		{"contains is case-insensitive", New[*creator]().WhereContains("handle", "VLOGS"), []int64{2}},
		{"prefix", New[*creator]().WhereHasPrefix("handle", "dina"), []int64{4}},
		{"suffix", New[*creator]().WhereHasSuffix("handle", ".codes"), []int64{1}},
		{"and of predicates", New[*creator]().WhereEq("verified", true).WhereGt("followers", 1000), []int64{1, 4}},
		{"search ors fields", New[*creator]().SearchFor("DAILY", "handle"), []int64{4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.q.Apply(items)
			if err != nil {
				t.Fatalf("Apply returned error: %v", err)
			}
			ids := make([]int64, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			if len(ids) != len(tc.want) {
				t.Fatalf("expected ids %v, got %v", tc.want, ids)
			}
			for i := range ids {
				if ids[i] != tc.want[i] {
					t.Fatalf("expected ids %v, got %v", tc.want, ids)
				}
			}
		})
	}
}

func TestQuery_Apply_SortAndPaginate(t *testing.T) {
	items := sampleCreators()

	got, err := New[*creator]().OrderByDesc("followers").Paginate(1, 2).Apply(items)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 4 || got[1].ID != 2 {
		t.Fatalf("unexpected first page: %+v", got)
	}

	got, err = New[*creator]().OrderByDesc("followers").Paginate(2, 2).Apply(items)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected second page: %+v", got)
	}

	// A window past the data yields an empty page, not an error.
	got, err = New[*creator]().Paginate(9, 2).Apply(items)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty page, got %+v", got)
	}
}

func TestQuery_Apply_SortByTime(t *testing.T) {
	items := sampleCreators()

	got, err := New[*creator]().OrderByDesc("created_at").Apply(items)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if got[0].ID != 4 || got[len(got)-1].ID != 1 {
		t.Fatalf("unexpected time ordering: %+v", got)
	}
}

func TestPagination_Window_Invalid(t *testing.T) {
	cases := []struct {
		name string
		q    *Query[*creator]
	}{
		{"page zero", New[*creator]().Paginate(0, 10)},
		{"limit zero", New[*creator]().Paginate(1, 0)},
		{"negative page", New[*creator]().Paginate(-1, 10)},
		{"negative skip", New[*creator]().SkipTake(-1, 10)},
		{"negative take", New[*creator]().SkipTake(0, -5)},
		{"take zero", New[*creator]().SkipTake(0, 0)},
		{"take zero with skip", New[*creator]().SkipTake(3, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.q.Apply(sampleCreators()); !errors.Is(err, ErrInvalidPagination) {
				t.Fatalf("expected ErrInvalidPagination, got %v", err)
			}
		})
	}
}

func TestPagination_Window_SkipTake(t *testing.T) {
	got, err := New[*creator]().OrderBy("_id").SkipTake(1, 2).Apply(sampleCreators())
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("unexpected window: %+v", got)
	}
}

func TestQuery_Clone_Independent(t *testing.T) {
	q := New[*creator]().WhereEq("verified", true).OrderBy("handle").Paginate(1, 10)
	c := q.Clone()
	c.WhereGt("followers", 1000).Paginate(2, 5)

	if len(q.Predicates()) != 1 {
		t.Fatalf("clone mutation leaked into original predicates: %d", len(q.Predicates()))
	}
	if q.Window().Page != 1 || q.Window().Limit != 10 {
		t.Fatalf("clone mutation leaked into original window: %+v", q.Window())
	}
	if len(c.Predicates()) != 2 {
		t.Fatalf("expected 2 predicates on clone, got %d", len(c.Predicates()))
	}
}

func TestQuery_SearchFor_EmptyTermIgnored(t *testing.T) {
	q := New[*creator]().SearchFor("", "handle")
	if q.SearchClause() != nil {
		t.Fatalf("empty term should leave search unset")
	}

	got, err := q.Apply(sampleCreators())
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected all items, got %d", len(got))
	}
}
