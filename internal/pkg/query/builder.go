// Package query turns arbitrary list-endpoint query parameters
// (searchTerm, sort, page, limit, fields, plus free-form equality filters)
// into composed SQL. Stage methods are chainable and only record intent;
// Build applies the stages in a fixed order regardless of call order.
package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Reserved parameter names that are never treated as equality filters.
const (
	ParamSearchTerm = "searchTerm"
	ParamSort       = "sort"
	ParamPage       = "page"
	ParamLimit      = "limit"
	ParamFields     = "fields"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	DefaultPage  = 1
)

// Config declares, per entity, which API fields exist and how they map to
// SQL. Columns doubles as the allowlist for filtering, sorting and
// projection: parameters naming anything else are ignored rather than
// interpolated into SQL.
type Config struct {
	// Fields lists API field names in stable projection order.
	Fields []string
	// Columns maps an API field name to its SQL column.
	Columns map[string]string
	// SearchColumns are matched case-insensitively against searchTerm.
	SearchColumns []string
	// DefaultSort is an API field name, optionally "-" prefixed.
	DefaultSort string
	// DefaultLimit overrides DefaultLimit when > 0.
	DefaultLimit int
}

// Meta describes the page of results a built query will return.
type Meta struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"totalPage"`
}

// Builder composes a list query over one table.
type Builder struct {
	table  string
	cfg    Config
	params url.Values
	base   []squirrel.Sqlizer

	useFilter   bool
	useSearch   bool
	useSort     bool
	usePaginate bool
	useFields   bool
}

// New creates a builder for table. The caller's values are copied and
// never mutated.
func New(table string, values url.Values, cfg Config) *Builder {
	params := make(url.Values, len(values))
	for k, v := range values {
		params[k] = append([]string(nil), v...)
	}
	return &Builder{table: table, cfg: cfg, params: params}
}

// Where adds a fixed condition applied regardless of request parameters,
// to both the list and the count query.
func (b *Builder) Where(cond squirrel.Sqlizer) *Builder {
	b.base = append(b.base, cond)
	return b
}

// Filter enables the equality-filter stage.
func (b *Builder) Filter() *Builder {
	b.useFilter = true
	return b
}

// Search enables the searchTerm stage.
func (b *Builder) Search() *Builder {
	b.useSearch = true
	return b
}

// Sort enables the sort stage.
func (b *Builder) Sort() *Builder {
	b.useSort = true
	return b
}

// Paginate enables the page/limit stage.
func (b *Builder) Paginate() *Builder {
	b.usePaginate = true
	return b
}

// Fields enables the projection stage.
func (b *Builder) Fields() *Builder {
	b.useFields = true
	return b
}

// Build returns the composed, still-unexecuted list query.
func (b *Builder) Build() (string, []interface{}, error) {
	sel := squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Select(b.projection()...).
		From(b.table)

	sel = b.applyConditions(sel)

	if b.useSort {
		for _, clause := range b.orderClauses() {
			sel = sel.OrderBy(clause)
		}
	}

	if b.usePaginate {
		page, limit := b.pageLimit()
		sel = sel.Offset(uint64((page - 1) * limit)).Limit(uint64(limit))
	}

	return sel.ToSql()
}

// BuildCount returns the count query sharing the filter and search stages
// but not sort, pagination or projection.
func (b *Builder) BuildCount() (string, []interface{}, error) {
	sel := squirrel.StatementBuilder.
		PlaceholderFormat(squirrel.Dollar).
		Select("COUNT(*)").
		From(b.table)
	return b.applyConditions(sel).ToSql()
}

// Meta computes pagination metadata from a total obtained via BuildCount.
func (b *Builder) Meta(total int64) Meta {
	page, limit := b.pageLimit()
	totalPage := 0
	if total > 0 {
		totalPage = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Meta{Page: page, Limit: limit, Total: total, TotalPage: totalPage}
}

func (b *Builder) applyConditions(sel squirrel.SelectBuilder) squirrel.SelectBuilder {
	for _, cond := range b.base {
		sel = sel.Where(cond)
	}
	if b.useFilter {
		for _, cond := range b.filterConditions() {
			sel = sel.Where(cond)
		}
	}
	if b.useSearch {
		if cond := b.searchCondition(); cond != nil {
			sel = sel.Where(cond)
		}
	}
	return sel
}

// filterConditions builds equality conditions from every non-reserved
// parameter naming a known field.
func (b *Builder) filterConditions() []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	for _, field := range b.cfg.Fields {
		if isReserved(field) {
			continue
		}
		if !b.params.Has(field) {
			continue
		}
		column, ok := b.cfg.Columns[field]
		if !ok {
			continue
		}
		conds = append(conds, squirrel.Eq{column: b.params.Get(field)})
	}
	return conds
}

func (b *Builder) searchCondition() squirrel.Sqlizer {
	term := strings.TrimSpace(b.params.Get(ParamSearchTerm))
	if term == "" || len(b.cfg.SearchColumns) == 0 {
		return nil
	}
	or := squirrel.Or{}
	for _, column := range b.cfg.SearchColumns {
		or = append(or, squirrel.ILike{column: "%" + term + "%"})
	}
	return or
}

// orderClauses parses the comma-separated sort parameter; "-" prefixes
// mean descending. Unknown fields are skipped. Falls back to DefaultSort.
func (b *Builder) orderClauses() []string {
	spec := b.params.Get(ParamSort)
	if strings.TrimSpace(spec) == "" {
		spec = b.cfg.DefaultSort
	}

	var clauses []string
	for _, part := range strings.Split(spec, ",") {
		field := strings.TrimSpace(part)
		if field == "" {
			continue
		}
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}
		column, ok := b.cfg.Columns[field]
		if !ok {
			continue
		}
		clauses = append(clauses, column+" "+dir)
	}
	return clauses
}

func (b *Builder) pageLimit() (page, limit int) {
	limit = b.cfg.DefaultLimit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if v, err := strconv.Atoi(b.params.Get(ParamLimit)); err == nil && v > 0 && v <= MaxLimit {
		limit = v
	}

	page = DefaultPage
	if v, err := strconv.Atoi(b.params.Get(ParamPage)); err == nil && v > 0 {
		page = v
	}
	return page, limit
}

// projection resolves the fields parameter to aliased select expressions;
// when absent or empty it selects every configured field.
func (b *Builder) projection() []string {
	selected := b.cfg.Fields
	if b.useFields {
		if raw := strings.TrimSpace(b.params.Get(ParamFields)); raw != "" {
			requested := make(map[string]bool)
			for _, f := range strings.Split(raw, ",") {
				requested[strings.TrimSpace(f)] = true
			}
			var narrowed []string
			for _, field := range b.cfg.Fields {
				if requested[field] {
					narrowed = append(narrowed, field)
				}
			}
			if len(narrowed) > 0 {
				selected = narrowed
			}
		}
	}

	cols := make([]string, 0, len(selected))
	for _, field := range selected {
		cols = append(cols, b.cfg.Columns[field]+` AS "`+field+`"`)
	}
	return cols
}

func isReserved(name string) bool {
	switch name {
	case ParamSearchTerm, ParamSort, ParamPage, ParamLimit, ParamFields:
		return true
	}
	return false
}
