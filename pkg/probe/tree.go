/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package probe

import "sort"

// FindNodesWithKey walks an arbitrarily nested tree of maps and slices and
// returns every map that contains key, in depth-first pre-order. Map children
// are visited in sorted key order so results are deterministic.
func FindNodesWithKey(tree any, key string) []map[string]any {
	var out []map[string]any

	walkTree(tree, key, &out)

	return out
}

func walkTree(node any, key string, out *[]map[string]any) {
	switch n := node.(type) {
	case map[string]any:
		if _, ok := n[key]; ok {
			*out = append(*out, n)
		}

		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			walkTree(n[k], key, out)
		}
	case []any:
		for _, child := range n {
			walkTree(child, key, out)
		}
	}
}
