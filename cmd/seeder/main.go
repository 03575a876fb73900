package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/poiesic/searchkit/core"
	"github.com/poiesic/searchkit/storage/badger"
)

var sampleTasks = []*core.Task{
	{Title: "Write unit tests", Description: "Cover the scorer and highlighter packages", Status: core.TaskStatusPending, Priority: core.TaskPriorityHigh, Tags: []string{"testing", "quality"}},
	{Title: "Write integration tests", Description: "Exercise the full query pipeline end to end", Status: core.TaskStatusPending, Priority: core.TaskPriorityMedium, Tags: []string{"testing"}},
	{Title: "Fix pagination off-by-one", Description: "hasMore is wrong on the last page", Status: core.TaskStatusInProgress, Priority: core.TaskPriorityUrgent, Tags: []string{"bug"}},
	{Title: "Review storage layer", Description: "Check the badger repositories for leaked iterators", Status: core.TaskStatusPending, Priority: core.TaskPriorityMedium, Tags: []string{"review", "storage"}},
	{Title: "Update onboarding docs", Description: "The quick-start still references the old CLI flags", Status: core.TaskStatusCompleted, Priority: core.TaskPriorityLow, Tags: []string{"docs"}},
	{Title: "Profile index rebuild", Description: "Rebuild time grows faster than the collection", Status: core.TaskStatusPending, Priority: core.TaskPriorityHigh, Tags: []string{"performance"}},
	{Title: "Tune fuzzy threshold", Description: "Too many near-miss matches on short terms", Status: core.TaskStatusPending, Priority: core.TaskPriorityLow, Tags: []string{"relevance"}},
	{Title: "Archive stale notebooks", Description: "Anything untouched for a year", Status: core.TaskStatusArchived, Priority: core.TaskPriorityLow, Tags: []string{"cleanup"}},
}

var sampleNotebooks = []*core.Notebook{
	{Name: "Engineering journal", Description: "Daily notes on design decisions and debugging sessions", Tags: []string{"work"}, Pinned: true, NoteCount: 142},
	{Name: "Reading list", Description: "Papers and posts worth a second pass", Tags: []string{"reading"}, NoteCount: 37},
	{Name: "Recipes", Description: "Weeknight cooking, mostly one-pot", Tags: []string{"home"}, NoteCount: 24},
	{Name: "Meeting notes", Description: "Running log of planning and retro meetings", Tags: []string{"work", "meetings"}, NoteCount: 88},
	{Name: "Garden log", Description: "What was planted where, and when", Tags: []string{"home", "outdoors"}, NoteCount: 12},
}

func main() {
	dbPath := flag.String("db", "./searchkit_db", "path to BadgerDB database directory")
	flag.Parse()

	backend, err := badger.OpenBackend(*dbPath, false)
	if err != nil {
		slog.Error("error opening backend", "err", err)
		os.Exit(1)
	}
	defer backend.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	taskRepo := badger.NewTaskRepository(backend)
	for i, task := range sampleTasks {
		// Stagger timestamps so recency and due-soon boosts differ.
		task.CreatedAt = now.Add(-time.Duration(i*36) * time.Hour)
		task.UpdatedAt = task.CreatedAt
		if i%3 == 0 {
			task.DueDate = now.Add(time.Duration(i+1) * 24 * time.Hour)
		}
	}
	if _, err := taskRepo.AddTasks(ctx, sampleTasks...); err != nil {
		slog.Error("error seeding tasks", "err", err)
		os.Exit(1)
	}

	notebookRepo := badger.NewNotebookRepository(backend)
	if _, err := notebookRepo.AddNotebooks(ctx, sampleNotebooks...); err != nil {
		slog.Error("error seeding notebooks", "err", err)
		os.Exit(1)
	}

	slog.Info("seeded database", "path", *dbPath, "tasks", len(sampleTasks), "notebooks", len(sampleNotebooks))
}
