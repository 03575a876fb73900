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


// Package index provides text normalization and the in-memory document index.
//
// The Tokenizer performs case folding, punctuation stripping, and stop-word
// removal. The Index is an immutable snapshot built from a provider's source
// collection; rebuilding produces a fresh snapshot that the owner swaps
// atomically.
package index
