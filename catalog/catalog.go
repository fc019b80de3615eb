// Package catalog loads persisted function definitions into a function
// cache.
//
// The definition store is a Postgres table with one row per function
// (id, name, body). The catalog does not know how to execute a body; the
// host supplies a Compiler that turns a definition into a callable, and the
// loader inserts the resulting entries into the cache, which fires any
// subscriptions pending on the new names.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/cloudcmds/funcbox"
	"github.com/cloudcmds/funcbox/errz"
	"github.com/cloudcmds/funcbox/object"
)

// DefaultTable is the table the loader reads when no other is configured.
const DefaultTable = "funcbox_functions"

// Definition is one persisted function definition.
type Definition struct {
	ID   uint32
	Name string
	Body string
}

// Compiler turns a definition's body into a callable function object.
type Compiler func(def Definition) (object.Callable, error)

// Querier is the subset of a pgx connection the loader needs. Both
// *pgx.Conn and pgxpool.Pool satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithTable overrides the table the loader reads definitions from.
func WithTable(table string) Option {
	return func(l *Loader) {
		l.table = table
	}
}

// WithLogger provides a logger for the loader. By default the loader does
// not log.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Loader) {
		l.log = logger
	}
}

// Loader reads function definitions from Postgres and populates a cache.
type Loader struct {
	db      Querier
	compile Compiler
	table   string
	log     zerolog.Logger
}

// NewLoader creates a loader reading from db and compiling bodies with
// compile.
func NewLoader(db Querier, compile Compiler, opts ...Option) *Loader {
	l := &Loader{
		db:      db,
		compile: compile,
		table:   DefaultTable,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load reads every definition from the table, ordered by id, and inserts
// the compiled entries into cache. Returns the number of functions loaded.
func (l *Loader) Load(ctx context.Context, cache *funcbox.Cache) (int, error) {
	query := fmt.Sprintf("SELECT id, name, body FROM %s ORDER BY id", l.table)
	rows, err := l.db.Query(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("catalog query failed: %w", err)
	}
	defer rows.Close()

	var defs []Definition
	for rows.Next() {
		var def Definition
		if err := rows.Scan(&def.ID, &def.Name, &def.Body); err != nil {
			return 0, fmt.Errorf("catalog row scan failed: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("catalog read failed: %w", err)
	}
	return l.Populate(cache, defs)
}

// Populate compiles the given definitions and inserts them into cache, in
// order. Returns the number of functions inserted. A definition that fails
// to compile or collides with a cached id or name stops the load.
func (l *Loader) Populate(cache *funcbox.Cache, defs []Definition) (int, error) {
	count := 0
	for _, def := range defs {
		fn, err := l.compile(def)
		if err != nil {
			return count, errz.Wrap(errz.ErrValue, err,
				fmt.Sprintf("cannot compile function %q (id %d)", def.Name, def.ID))
		}
		if err := cache.Insert(funcbox.NewEntry(def.ID, def.Name, fn)); err != nil {
			return count, err
		}
		l.log.Debug().Uint32("id", def.ID).Str("name", def.Name).
			Msg("function loaded from catalog")
		count++
	}
	return count, nil
}
