// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/searchkit"
	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/notebooks"
	"github.com/poiesic/searchkit/storage/badger"
	"github.com/poiesic/searchkit/tasks"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "searchkit",
		Usage: "Full-text search over task and notebook collections",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB database directory",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML file with per-provider index settings",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search a provider's collection",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "provider",
						Aliases: []string{"p"},
						Usage:   "Provider to query (tasks, notebooks); empty means the default",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Page size",
						Value: core.DefaultLimit,
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Result offset",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort as field:direction, e.g. dueDate:asc",
					},
					&cli.StringSliceFlag{
						Name:  "filter",
						Usage: "Filter as field:operator:value, e.g. status:equals:pending",
					},
				},
			},
			{
				Name:      "suggest",
				Usage:     "Suggest indexed tokens for a prefix across all providers",
				ArgsUsage: "PREFIX",
				Action:    suggestCommand,
			},
			{
				Name:   "stats",
				Usage:  "Show per-provider index statistics",
				Action: statsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

// buildEngine opens the database and registers both providers, applying any
// per-provider overrides from the YAML config file.
func buildEngine(c *cli.Context) (*searchkit.Engine, func(), error) {
	overrides, err := loadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return nil, nil, err
	}

	taskRepo := badger.NewTaskRepository(backend)
	notebookRepo := badger.NewNotebookRepository(backend)

	taskProvider, err := tasks.NewProvider(taskRepo,
		tasks.WithIndexConfig(overrides.apply("tasks", tasks.DefaultIndexConfig())))
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	notebookProvider, err := notebooks.NewProvider(notebookRepo,
		notebooks.WithIndexConfig(overrides.apply("notebooks", notebooks.DefaultIndexConfig())))
	if err != nil {
		backend.Close()
		return nil, nil, err
	}

	engine, err := searchkit.NewEngine()
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	if _, err := engine.Register(taskProvider); err != nil {
		backend.Close()
		return nil, nil, err
	}
	if _, err := engine.Register(notebookProvider); err != nil {
		engine.Close()
		backend.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := engine.Close(); err != nil {
			slog.Error("error closing engine", "err", err)
		}
		if err := backend.Close(); err != nil {
			slog.Error("error closing backend storage", "err", err)
		}
	}
	return engine, cleanup, nil
}

func searchCommand(c *cli.Context) error {
	engine, cleanup, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	query := core.Query{
		Text:   strings.Join(c.Args().Slice(), " "),
		Limit:  c.Int("limit"),
		Offset: c.Int("offset"),
	}

	if spec := c.String("sort"); spec != "" {
		sort, err := parseSort(spec)
		if err != nil {
			return err
		}
		query.Sort = sort
	}

	for _, spec := range c.StringSlice("filter") {
		filter, err := parseFilter(spec)
		if err != nil {
			return err
		}
		query.Filters = append(query.Filters, filter)
	}

	envelope, err := engine.Search(c.Context, c.String("provider"), query)
	if err != nil {
		return err
	}

	fmt.Printf("%d results (page %d of %d, took %s)\n",
		envelope.TotalCount, envelope.CurrentPage, envelope.TotalPages, envelope.Took)
	for i, item := range envelope.Items {
		fmt.Printf("%d: [%.3f] %s\n", envelope.Query.Offset+i+1, item.Score, item.Snippet)
		for _, highlight := range item.Highlights {
			for _, fragment := range highlight.Fragments {
				fmt.Printf("     %s: %s\n", highlight.Field, fragment)
			}
		}
	}
	return nil
}

func suggestCommand(c *cli.Context) error {
	engine, cleanup, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	suggestions, err := engine.Suggest(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	for _, suggestion := range suggestions {
		fmt.Println(suggestion)
	}
	return nil
}

func statsCommand(c *cli.Context) error {
	engine, cleanup, err := buildEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := engine.Refresh(c.Context); err != nil {
		return err
	}
	for name, stats := range engine.Stats() {
		fmt.Printf("%s: %d documents, indexed %s\n", name, stats.Documents, stats.LastIndexed.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func parseSort(spec string) (*core.SortSpec, error) {
	field, direction, _ := strings.Cut(spec, ":")
	if field == "" {
		return nil, fmt.Errorf("invalid sort %q: expected field:direction", spec)
	}
	sort := &core.SortSpec{Field: field, Direction: core.SortAscending}
	switch direction {
	case "", "asc":
	case "desc":
		sort.Direction = core.SortDescending
	default:
		return nil, fmt.Errorf("invalid sort direction %q", direction)
	}
	return sort, nil
}

func parseFilter(spec string) (core.Filter, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) != 3 {
		return core.Filter{}, fmt.Errorf("invalid filter %q: expected field:operator:value", spec)
	}
	field := parts[0]
	operator := parts[1]
	negate := strings.HasPrefix(operator, "!")
	operator = strings.TrimPrefix(operator, "!")
	return core.Filter{
		Field:    field,
		Operator: core.FilterOperator(operator),
		Value:    parts[2],
		Enabled:  true,
		Negate:   negate,
	}, nil
}
