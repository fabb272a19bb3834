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

package main

import (
	"github.com/willf/bloom"
)

// keyFilter remembers every key inserted into a session's tree. A miss is
// definite, a hit still has to be confirmed against the tree.
type keyFilter struct {
	bloom *bloom.BloomFilter
}

func newKeyFilter(expectedKeys uint, falsePositiveRate float64) *keyFilter {
	return &keyFilter{bloom: bloom.NewWithEstimates(expectedKeys, falsePositiveRate)}
}

func (f *keyFilter) Add(key string) {
	f.bloom.Add([]byte(key))
}

func (f *keyFilter) MayContain(key string) bool {
	return f.bloom.Test([]byte(key))
}

func (f *keyFilter) Reset() {
	f.bloom.ClearAll()
}
