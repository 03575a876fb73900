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


package core

import "fmt"

// ValidateQuery validates query parameters before execution.
//
// Validation rules:
//   - Limit must not be negative (0 means DefaultLimit)
//   - Offset must not be negative
//   - every enabled filter must use a recognized operator
//
// Regex filter patterns are NOT compiled here; a malformed pattern fails the
// query at evaluation time with ErrMalformedRegex.
func ValidateQuery(query *Query) error {
	if query == nil {
		return fmt.Errorf("%w: query is nil", ErrInvalidQuery)
	}
	if query.Limit < 0 {
		return fmt.Errorf("%w: limit cannot be negative", ErrInvalidQuery)
	}
	if query.Offset < 0 {
		return fmt.Errorf("%w: offset cannot be negative", ErrInvalidQuery)
	}
	for _, filter := range query.Filters {
		if !filter.Enabled {
			continue
		}
		if !IsValidOperator(filter.Operator) {
			return fmt.Errorf("%w: %q", ErrUnknownOperator, filter.Operator)
		}
	}
	return nil
}

// IsValidOperator reports whether op is a recognized filter operator.
func IsValidOperator(op FilterOperator) bool {
	switch op {
	case FilterContains, FilterEquals, FilterStartsWith, FilterEndsWith, FilterRegex:
		return true
	}
	return false
}

// ValidateTask validates a Task according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Status and Priority must be recognized values when set
//
// NOT validated (defaulted by the provider during projection):
//   - empty Status, Priority, Tags, DueDate
func ValidateTask(task *Task) error {
	if task == nil {
		return fmt.Errorf("%w: task is nil", ErrInvalidTask)
	}
	if task.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTask, ErrEmptyTitle)
	}
	if task.Status != "" && !isValidTaskStatus(task.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTask, task.Status)
	}
	if task.Priority != "" && !isValidTaskPriority(task.Priority) {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidTask, task.Priority)
	}
	return nil
}

// ValidateNotebook validates a Notebook according to domain rules.
func ValidateNotebook(notebook *Notebook) error {
	if notebook == nil {
		return fmt.Errorf("%w: notebook is nil", ErrInvalidNotebook)
	}
	if notebook.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNotebook, ErrEmptyName)
	}
	if notebook.NoteCount < 0 {
		return fmt.Errorf("%w: note count cannot be negative", ErrInvalidNotebook)
	}
	return nil
}

func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusArchived:
		return true
	}
	return false
}

func isValidTaskPriority(priority TaskPriority) bool {
	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}
