// Command funcbox inspects a function catalog: it loads every definition
// from a Postgres catalog table into a fresh cache, which surfaces duplicate
// ids or names as contract violations, and prints the loaded functions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/cloudcmds/funcbox"
	"github.com/cloudcmds/funcbox/catalog"
	"github.com/cloudcmds/funcbox/codec"
	"github.com/cloudcmds/funcbox/object"
)

func main() {
	var (
		dsn         = flag.String("dsn", os.Getenv("FUNCBOX_DSN"), "Postgres connection string")
		table       = flag.String("table", catalog.DefaultTable, "Catalog table to read")
		jsonOut     = flag.Bool("json", false, "Print the function list as JSON")
		escapeSlash = flag.Bool("escape-slash", false, "Escape forward slashes in JSON output")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
	)
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}
	codec.SetJSONEscapeForwardSlash(*escapeSlash)

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if *dsn == "" {
		fatal("no catalog: provide -dsn or set FUNCBOX_DSN")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, *dsn)
	if err != nil {
		fatal("connect failed: %s", err)
	}
	defer conn.Close(ctx)

	cache := funcbox.New(funcbox.WithLogger(logger))
	defer cache.Close()

	loader := catalog.NewLoader(conn, stubCompiler,
		catalog.WithTable(*table), catalog.WithLogger(logger))
	count, err := loader.Load(ctx, cache)
	if err != nil {
		fatal("catalog check failed after %d functions: %s", count, err)
	}

	if *jsonOut {
		printJSON(ctx, cache)
	} else {
		printTable(cache, count)
	}
}

// stubCompiler wraps a definition body without executing it; the inspection
// tool has no execution engine.
func stubCompiler(def catalog.Definition) (object.Callable, error) {
	return object.NewBuiltin(def.Name, func(ctx context.Context, args ...object.Object) (object.Object, error) {
		return nil, fmt.Errorf("%s: function bodies are not executable in funcbox inspect", def.Name)
	}), nil
}

func printTable(cache *funcbox.Cache, count int) {
	header := color.New(color.Bold)
	header.Printf("%-8s %s\n", "ID", "NAME")
	for _, entry := range cache.Entries() {
		line := fmt.Sprintf("%-8d %s", entry.ID(), entry.Name())
		if kind, pinned := cache.IsPinned(entry); pinned {
			line += color.YellowString("  [pinned by %s]", kind)
		}
		fmt.Println(line)
	}
	color.Green("%d functions OK", count)
}

func printJSON(ctx context.Context, cache *funcbox.Cache) {
	items := make([]object.Object, 0, cache.Size())
	for _, entry := range cache.Entries() {
		items = append(items, object.NewMap(map[string]object.Object{
			"id":   object.NewInt(int64(entry.ID())),
			"name": object.NewString(entry.Name()),
		}))
	}
	out, err := codec.Encode(ctx, object.NewList(items), "json")
	if err != nil {
		fatal("encode failed: %s", err)
	}
	s, err := object.AsString(out)
	if err != nil {
		fatal("encode failed: %s", err)
	}
	fmt.Println(s)
}

func fatal(format string, args ...interface{}) {
	color.Red(format, args...)
	os.Exit(1)
}
