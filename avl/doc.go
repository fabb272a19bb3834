// Copyright 2025 Naren Yellavula
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

// Package avl implements a generic, in-memory AVL tree mapping unique,
// ordered keys to values.
//
// Every insert walks down to a new leaf recording the visited ancestors on
// an explicit stack, then climbs back up re-deriving heights and rotating
// wherever the left and right subtree heights differ by more than one. The
// climb stops as soon as an ancestor's height is unchanged.
//
// Deletion is not supported. A Tree is not safe for concurrent use: if
// several goroutines share one, and at least one of them inserts or
// clears, access must be synchronized externally.
package avl
