/*
 * Copyright (c) 2026, Mtaa DAO (https://www.mtaadao.africa).
 *
 * Mtaa DAO licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package engine

import (
	"strings"
)

// EvaluationContext carries the event snapshot a rule set is evaluated
// against. It is ephemeral; only its redacted form reaches the execution
// history.
type EvaluationContext struct {
	DaoId     string                 `json:"dao_id"`
	Category  string                 `json:"category"`
	Timestamp int64                  `json:"timestamp"`
	ActorId   string                 `json:"actor_id"`
	Data      map[string]interface{} `json:"data"`
}

// ResolveField walks a dot-path (e.g. "member.contribution_total") through
// the context data. The second return is false when any path segment is
// absent or a non-map value is traversed into.
func (ctx EvaluationContext) ResolveField(path string) (interface{}, bool) {

	if path == "" || ctx.Data == nil {
		return nil, false
	}

	var current interface{} = ctx.Data
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
