// Copyright 2025 ColQuery, Inc.
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

package aggregate

import "github.com/dgryski/go-farm"

// GroupKeyMapper assigns dense int group ids to encoded group keys, in
// first-seen order. Upstream group-by evaluation encodes each row's group
// key to bytes; the aggregate core only ever sees the dense ids. A mapper
// belongs to one execution context and is not safe for concurrent use.
type GroupKeyMapper struct {
	ids  map[string]int
	keys [][]byte
}

// NewGroupKeyMapper creates an empty mapper.
func NewGroupKeyMapper() *GroupKeyMapper {
	return &GroupKeyMapper{ids: make(map[string]int)}
}

// ID returns the dense id of key, assigning the next id on first sight.
func (m *GroupKeyMapper) ID(key []byte) int {
	if id, ok := m.ids[string(key)]; ok {
		return id
	}
	id := len(m.keys)
	m.ids[string(key)] = id
	m.keys = append(m.keys, append([]byte(nil), key...))
	return id
}

// Key returns the encoded key of a previously assigned id.
func (m *GroupKeyMapper) Key(id int) []byte {
	return m.keys[id]
}

// Len returns the number of distinct keys seen.
func (m *GroupKeyMapper) Len() int {
	return len(m.keys)
}

// Shard routes an encoded group key to one of n shards. Used to spread
// group-local work over workers; a hash collision only affects placement,
// never correctness.
func Shard(key []byte, n int) int {
	return int(farm.Fingerprint64(key) % uint64(n))
}
