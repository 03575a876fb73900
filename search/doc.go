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


// Package search implements relevance scoring, highlighting, and the query
// pipeline over a provider's document index.
//
// The Searcher type runs a single query through a fixed sequence of stages:
//   - Text search: tokenize, score every document, keep positive scores,
//     highlight, and map back to the original records; or filter-only
//     enumeration when the query has no text
//   - Structured filters applied in list order as a logical AND
//   - Optional stable sort by a resolved field value
//   - Pagination with totalCount, totalPages, currentPage, and hasMore
//
// Scoring combines exact substring hits, per-field weighted hits, an
// edit-distance fuzzy contribution, and the document's static boost.
package search
