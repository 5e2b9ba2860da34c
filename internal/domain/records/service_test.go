package records

import (
	"context"
	"errors"
	"sort"
	"testing"

	"clinical-records-api/internal/platform/apperr"
	"clinical-records-api/internal/platform/pagination"
	"clinical-records-api/internal/platform/topk"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type row struct {
	ID   int
	Drug *string
}

type testRepo struct {
	rows      []row
	err       error
	pageCalls int
	topCalls  int
}

func newTestRepo(n int) *testRepo {
	r := &testRepo{}
	for i := n; i >= 1; i-- {
		r.rows = append(r.rows, row{ID: i})
	}
	return r
}

func (r *testRepo) List(ctx context.Context) ([]row, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int) (row, bool, error) {
	if r.err != nil {
		return row{}, false, r.err
	}
	for _, x := range r.rows {
		if x.ID == id {
			return x, true, nil
		}
	}
	return row{}, false, nil
}

func (r *testRepo) ListPage(ctx context.Context, p pagination.Page) ([]row, int, error) {
	r.pageCalls++
	if r.err != nil {
		return nil, 0, r.err
	}
	sorted := append([]row(nil), r.rows...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	start := p.Offset()
	if start >= len(sorted) {
		return nil, len(sorted), nil
	}
	end := start + p.Limit()
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end], len(sorted), nil
}

func (r *testRepo) TopBy(ctx context.Context, q topk.Query) ([]topk.Entry, error) {
	r.topCalls++
	if r.err != nil {
		return nil, r.err
	}
	vals := make([]*string, 0, len(r.rows))
	for _, x := range r.rows {
		vals = append(vals, x.Drug)
	}
	return topk.Rank(vals, q.Limit), nil
}

func newTestService(repo *testRepo) *Service[row, int] {
	return NewService[row, int](repo, Descriptor{Name: "row", Groupable: topk.Fields{"drug"}, DefaultField: "drug"})
}

func TestListPage_FullAndPartialPages(t *testing.T) {
	svc := newTestService(newTestRepo(19))

	for page := 1; page <= 3; page++ {
		res, err := svc.ListPage(context.Background(), page)
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", page, err)
		}
		if len(res.Items) > pagination.DefaultPageSize {
			t.Fatalf("page %d: %d items exceeds page size", page, len(res.Items))
		}
		if page < res.Meta.TotalPages && len(res.Items) != pagination.DefaultPageSize {
			t.Fatalf("page %d: expected full page, got %d", page, len(res.Items))
		}
		if res.Meta.TotalPages != 3 || res.Meta.TotalCount != 19 {
			t.Fatalf("page %d: unexpected meta %+v", page, res.Meta)
		}
	}

	last, _ := svc.ListPage(context.Background(), 3)
	if len(last.Items) != 1 || last.Items[0].ID != 19 {
		t.Fatalf("expected only id 19 on last page, got %+v", last.Items)
	}
}

func TestListPage_BeyondEndIsEmptyNotError(t *testing.T) {
	svc := newTestService(newTestRepo(19))

	res, err := svc.ListPage(context.Background(), 1000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", res.Items)
	}
	if res.Meta.Page != 1000000 || res.Meta.TotalPages != 3 || res.Meta.TotalCount != 19 {
		t.Fatalf("unexpected meta %+v", res.Meta)
	}
}

func TestListPage_InvalidPageNeverHitsRepo(t *testing.T) {
	repo := newTestRepo(5)
	svc := newTestService(repo)

	_, err := svc.ListPage(context.Background(), 0)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.pageCalls != 0 {
		t.Fatalf("repo must not be called for invalid page")
	}
}

func TestGet_NotFoundIsNotError(t *testing.T) {
	svc := newTestService(newTestRepo(3))

	_, found, err := svc.Get(context.Background(), 42)
	if err != nil || found {
		t.Fatalf("expected (found=false, err=nil), got (%v, %v)", found, err)
	}

	got, found, err := svc.Get(context.Background(), 2)
	if err != nil || !found || got.ID != 2 {
		t.Fatalf("expected id 2, got (%+v, %v, %v)", got, found, err)
	}
}

func TestMostUsed_ValidatesBeforeQuery(t *testing.T) {
	repo := newTestRepo(0)
	svc := newTestService(repo)

	if _, _, err := svc.MostUsed(context.Background(), "subject_id", 3); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for non allow-listed field, got %v", err)
	}
	if _, _, err := svc.MostUsed(context.Background(), "drug", 0); apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for limit 0, got %v", err)
	}
	if repo.topCalls != 0 {
		t.Fatalf("repo must not be called on invalid input")
	}
}

func TestMostUsed_DefaultFieldAndTies(t *testing.T) {
	repo := &testRepo{}
	add := func(v string, n int) {
		for i := 0; i < n; i++ {
			v := v
			repo.rows = append(repo.rows, row{ID: len(repo.rows) + 1, Drug: &v})
		}
	}
	add("D", 1)
	add("C", 3)
	add("A", 5)
	add("B", 5)

	entries, q, err := newTestService(repo).MostUsed(context.Background(), "", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Field != "drug" || len(entries) != 3 {
		t.Fatalf("unexpected result field=%s entries=%d", q.Field, len(entries))
	}
	if *entries[2].Value != "C" || entries[0].Count != 5 || entries[1].Count != 5 {
		t.Fatalf("unexpected ranking %+v", entries)
	}
}

func TestStorageErrorsPropagate(t *testing.T) {
	repo := newTestRepo(3)
	repo.err = apperr.Query("rows.list", errors.New("connection reset"))
	svc := newTestService(repo)

	if _, err := svc.List(context.Background()); apperr.KindOf(err) != apperr.KindQuery {
		t.Fatalf("expected query error, got %v", err)
	}
	if _, err := svc.ListPage(context.Background(), 1); apperr.KindOf(err) != apperr.KindQuery {
		t.Fatalf("expected query error, got %v", err)
	}
}
