package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/Masterminds/squirrel"
)

var testConfig = Config{
	Fields: []string{"id", "title", "year"},
	Columns: map[string]string{
		"id":    "id",
		"title": "title",
		"year":  "year",
	},
	SearchColumns: []string{"title"},
	DefaultSort:   "-id",
}

func TestBuildDefaults(t *testing.T) {
	b := New("courses", url.Values{}, testConfig).
		Filter().Search().Sort().Paginate().Fields()

	sql, args, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if !strings.Contains(sql, `id AS "id"`) || !strings.Contains(sql, `title AS "title"`) {
		t.Errorf("expected full projection, got %q", sql)
	}
	if !strings.Contains(sql, "ORDER BY id DESC") {
		t.Errorf("expected default sort, got %q", sql)
	}
	if !strings.Contains(sql, "LIMIT 10") || !strings.Contains(sql, "OFFSET 0") {
		t.Errorf("expected default pagination, got %q", sql)
	}
}

func TestFilterSkipsReservedAndUnknown(t *testing.T) {
	values := url.Values{}
	values.Set("year", "2025")
	values.Set("searchTerm", "algo")
	values.Set("page", "3")
	values.Set("bogus", "x")

	b := New("courses", values, testConfig).Filter()
	sql, args, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !strings.Contains(sql, "year = $1") {
		t.Errorf("expected year filter, got %q", sql)
	}
	if strings.Contains(sql, "searchTerm") || strings.Contains(sql, "bogus") || strings.Contains(sql, "page") {
		t.Errorf("reserved or unknown parameter leaked into SQL: %q", sql)
	}
	if len(args) != 1 || args[0] != "2025" {
		t.Errorf("unexpected args %v", args)
	}
}

func TestSearchBuildsILikeOverSearchColumns(t *testing.T) {
	values := url.Values{}
	values.Set("searchTerm", "data")

	sql, args, err := New("courses", values, testConfig).Search().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !strings.Contains(sql, "title ILIKE $1") {
		t.Errorf("expected ILIKE condition, got %q", sql)
	}
	if len(args) != 1 || args[0] != "%data%" {
		t.Errorf("expected wrapped term, got %v", args)
	}
}

func TestPaginationOffset(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("limit", "20")

	sql, _, err := New("courses", values, testConfig).Paginate().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !strings.Contains(sql, "LIMIT 20") || !strings.Contains(sql, "OFFSET 40") {
		t.Errorf("expected skip = (page-1)*limit, got %q", sql)
	}
}

func TestPaginationCapsLimit(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "5000")

	sql, _, err := New("courses", values, testConfig).Paginate().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !strings.Contains(sql, "LIMIT 10") {
		t.Errorf("out-of-range limit should fall back to default, got %q", sql)
	}
}

func TestFieldsProjection(t *testing.T) {
	values := url.Values{}
	values.Set("fields", "title,year,unknown")

	sql, _, err := New("courses", values, testConfig).Fields().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if strings.Contains(sql, `id AS "id"`) {
		t.Errorf("unselected field projected: %q", sql)
	}
	if !strings.Contains(sql, `title AS "title"`) || !strings.Contains(sql, `year AS "year"`) {
		t.Errorf("requested fields missing: %q", sql)
	}
	if strings.Contains(sql, "unknown") {
		t.Errorf("unknown field leaked into SQL: %q", sql)
	}
}

func TestSortParsesCommaListAndDirection(t *testing.T) {
	values := url.Values{}
	values.Set("sort", "year,-title,nope")

	sql, _, err := New("courses", values, testConfig).Sort().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !strings.Contains(sql, "ORDER BY year ASC, title DESC") {
		t.Errorf("unexpected order clause: %q", sql)
	}
	if strings.Contains(sql, "nope") {
		t.Errorf("unknown sort field leaked into SQL: %q", sql)
	}
}

func TestBuildCountSharesFiltersOnly(t *testing.T) {
	values := url.Values{}
	values.Set("year", "2025")
	values.Set("page", "4")
	values.Set("sort", "-title")

	b := New("courses", values, testConfig).
		Where(squirrel.Eq{"is_deleted": false}).
		Filter().Search().Sort().Paginate()

	sql, args, err := b.BuildCount()
	if err != nil {
		t.Fatalf("BuildCount() error: %v", err)
	}
	if !strings.HasPrefix(sql, "SELECT COUNT(*)") {
		t.Errorf("expected count query, got %q", sql)
	}
	if strings.Contains(sql, "ORDER BY") || strings.Contains(sql, "LIMIT") {
		t.Errorf("count query must not sort or paginate: %q", sql)
	}
	if !strings.Contains(sql, "is_deleted = $1") || !strings.Contains(sql, "year = $2") {
		t.Errorf("count query missing conditions: %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("unexpected args %v", args)
	}
}

func TestMeta(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("limit", "10")

	meta := New("courses", values, testConfig).Paginate().Meta(25)
	if meta.Page != 2 || meta.Limit != 10 || meta.Total != 25 || meta.TotalPage != 3 {
		t.Errorf("unexpected meta %+v", meta)
	}

	empty := New("courses", url.Values{}, testConfig).Meta(0)
	if empty.TotalPage != 0 {
		t.Errorf("expected zero totalPage for empty result, got %d", empty.TotalPage)
	}
}

func TestNewDoesNotMutateCallerValues(t *testing.T) {
	values := url.Values{}
	values.Set("page", "1")

	New("courses", values, testConfig).Filter().Search().Sort().Paginate().Fields().Build()

	if len(values) != 1 || values.Get("page") != "1" {
		t.Errorf("caller values mutated: %v", values)
	}
}
