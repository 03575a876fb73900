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

import "errors"

var (
	// ErrIndexUnavailable indicates that enumeration of the source collection
	// failed during an index build. The previous index, if any, is retained.
	ErrIndexUnavailable = errors.New("index unavailable")

	// ErrProviderNotFound indicates routing to an unregistered provider name.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrDuplicateProvider indicates a provider name registered twice.
	ErrDuplicateProvider = errors.New("provider already registered")

	// ErrUnknownOperator indicates a filter with an unrecognized operator.
	ErrUnknownOperator = errors.New("unknown filter operator")

	// ErrMalformedRegex indicates a regex filter whose pattern does not compile.
	ErrMalformedRegex = errors.New("malformed regex filter")

	// ErrInvalidQuery indicates invalid query parameters.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidTask indicates a Task failed validation.
	ErrInvalidTask = errors.New("invalid task")

	// ErrInvalidNotebook indicates a Notebook failed validation.
	ErrInvalidNotebook = errors.New("invalid notebook")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")
)
