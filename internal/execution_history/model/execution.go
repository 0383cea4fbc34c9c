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

package model

// ActionResult records the outcome of one delegated action.
type ActionResult struct {
	Type      string                 `json:"type" bson:"type"`
	Succeeded bool                   `json:"succeeded" bson:"succeeded"`
	Reason    string                 `json:"reason,omitempty" bson:"reason,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty" bson:"payload,omitempty"`
}

// RuleExecution is one append-only audit record. Per-rule records carry the
// rule id, a matched/not_matched/error result and the per-action results of
// the rule's executed actions; the per-evaluation summary record has an empty
// rule id, result "summary" and the final decision.
type RuleExecution struct {
	ExecutionId   string                 `json:"execution_id" bson:"execution_id"`
	RuleId        string                 `json:"rule_id,omitempty" bson:"rule_id,omitempty"`
	DaoId         string                 `json:"dao_id" bson:"dao_id"`
	Category      string                 `json:"category" bson:"category"`
	ExecutedAt    int64                  `json:"executed_at" bson:"executed_at"`
	Context       map[string]interface{} `json:"context,omitempty" bson:"context,omitempty"`
	Result        string                 `json:"result" bson:"result"`
	Reason        string                 `json:"reason,omitempty" bson:"reason,omitempty"`
	Decision      string                 `json:"decision,omitempty" bson:"decision,omitempty"`
	ActionResults []ActionResult         `json:"action_results,omitempty" bson:"action_results,omitempty"`
}
