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
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/exp/constraints"
)

// NewDistanceCache creates a cache for memoised distance answers. Entries
// expire after ttl and are swept every cleanup.
func NewDistanceCache(ttl, cleanup time.Duration) *cache.Cache {
	return cache.New(ttl, cleanup)
}

func CacheDistance(c *cache.Cache, key string, distance int) {
	c.Set(key, distance, cache.DefaultExpiration)
}

func GetDistance(c *cache.Cache, key string) (int, bool) {
	val, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	return val.(int), true
}

// distanceCacheKey orders the pair so (a, b) and (b, a) share an entry.
// %#v quotes strings, which keeps "a b"+"c" apart from "a"+"b c".
func distanceCacheKey[K constraints.Ordered](a, b K) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%#v|%#v", a, b)
}
