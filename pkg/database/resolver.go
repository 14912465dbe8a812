package database

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Lookup names a natural-key table and its columns.
type Lookup struct {
	Table    string
	KeyField string
	IDField  string
}

// Lookups allowed to go through GetOrCreate.
var (
	Directors = Lookup{Table: "directors", KeyField: "name", IDField: "id"}
	Genres    = Lookup{Table: "genres", KeyField: "name", IDField: "id"}
)

var allowedLookups = map[Lookup]struct{}{
	Directors: {},
	Genres:    {},
}

// Resolver converts natural keys into surrogate ids, inserting when absent.
type Resolver struct {
	exec Executor
}

func NewResolver(exec Executor) *Resolver {
	return &Resolver{exec: exec}
}

// GetOrCreate returns the id of the row whose key field equals value,
// inserting a new row if none exists.
//
// SELECT and INSERT run as two separate statements. Two concurrent callers
// can both miss the SELECT; the unique constraint on the key column then
// makes the second INSERT fail with a constraint violation, which is
// returned as is.
func (r *Resolver) GetOrCreate(ctx context.Context, lookup Lookup, value string) (int64, error) {
	if _, ok := allowedLookups[lookup]; !ok {
		return 0, fmt.Errorf("%w: %s.%s", ErrLookupNotAllowed, lookup.Table, lookup.KeyField)
	}

	selectStmt := Builder.
		Select(lookup.IDField).
		From(lookup.Table).
		Where(sq.Eq{lookup.KeyField: value})

	res, err := r.exec.Execute(ctx, selectStmt, ModeOne)
	if err != nil {
		return 0, err
	}
	if rec := res.One(); rec != nil {
		return Int64(rec, lookup.IDField)
	}

	insertStmt := Builder.
		Insert(lookup.Table).
		Columns(lookup.KeyField).
		Values(value).
		Suffix("RETURNING " + lookup.IDField)

	res, err = r.exec.Execute(ctx, insertStmt, ModeOne)
	if err != nil {
		return 0, err
	}
	rec := res.One()
	if rec == nil {
		return 0, fmt.Errorf("insert into %s returned no id", lookup.Table)
	}
	return Int64(rec, lookup.IDField)
}

// Int64 reads an integer column from rec.
func Int64(rec Record, column string) (int64, error) {
	switch v := rec[column].(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("column %q: unexpected type %T", column, rec[column])
	}
}
