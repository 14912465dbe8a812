package database

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// =====================================================
// PAGINATION
// =====================================================

const (
	DefaultLimit = 100
	MinLimit     = 1
	MaxLimit     = 500
)

// Page is an offset/limit window clamped to the allowed bounds.
type Page struct {
	Limit  uint64
	Offset uint64
}

// NewPage clamps limit to [MinLimit, MaxLimit] and offset to >= 0.
// A zero limit means the default.
func NewPage(limit, offset int) Page {
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit < MinLimit:
		limit = MinLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: uint64(limit), Offset: uint64(offset)}
}

// Apply appends LIMIT and OFFSET to b.
func (p Page) Apply(b sq.SelectBuilder) sq.SelectBuilder {
	return b.Limit(p.Limit).Offset(p.Offset)
}

// =====================================================
// PARTIAL UPDATE
// =====================================================

type setClause struct {
	column string
	value  any
}

// Patch collects the columns of a partial UPDATE in the order they were set.
// Column names must come from constants, never from input.
type Patch struct {
	table   string
	clauses []setClause
}

func NewPatch(table string) *Patch {
	return &Patch{table: table}
}

// Set records column = value unconditionally.
func (p *Patch) Set(column string, value any) *Patch {
	p.clauses = append(p.clauses, setClause{column: column, value: value})
	return p
}

// SetIf records column only when v is non-nil. A pointer to the zero value
// (for example "") is still recorded.
func SetIf[T any](p *Patch, column string, v *T) *Patch {
	if v == nil {
		return p
	}
	return p.Set(column, *v)
}

func (p *Patch) Empty() bool {
	return len(p.clauses) == 0
}

func (p *Patch) Len() int {
	return len(p.clauses)
}

// Columns lists the recorded columns in order.
func (p *Patch) Columns() []string {
	cols := make([]string, 0, len(p.clauses))
	for _, c := range p.clauses {
		cols = append(cols, c.column)
	}
	return cols
}

// Update builds UPDATE table SET ... WHERE pred.
func (p *Patch) Update(pred any) sq.UpdateBuilder {
	b := Builder.Update(p.table)
	for _, c := range p.clauses {
		b = b.Set(c.column, c.value)
	}
	return b.Where(pred)
}

// =====================================================
// PATTERN MATCHING
// =====================================================

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern wraps term for a substring ILIKE match, escaping LIKE
// wildcards so they match literally.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
