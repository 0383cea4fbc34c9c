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

// Condition is a single predicate over the evaluation context. Field is a
// dot-path into the context data (e.g. "member.contribution_total").
type Condition struct {
	Field    string      `json:"field" bson:"field"`
	Operator string      `json:"operator" bson:"operator"`
	Value    interface{} `json:"value" bson:"value"`
}

// Action describes one effect a matching rule requests. Payload parameters
// are specific to the action type (e.g. apply_fee carries amount and fee_type).
type Action struct {
	Type    string                 `json:"type" bson:"type"`
	Payload map[string]interface{} `json:"payload,omitempty" bson:"payload,omitempty"`
}

// RuleConfig couples the ordered condition list with the ordered action list.
// An empty condition list always matches. Action order is the execution order.
type RuleConfig struct {
	Conditions []Condition `json:"conditions" bson:"conditions"`
	Actions    []Action    `json:"actions" bson:"actions"`
}

// DaoRule is a rule instance owned by a DAO, either instantiated from a
// template (TemplateId set) or fully custom (TemplateId empty).
type DaoRule struct {
	RuleId      string     `json:"rule_id,omitempty"`
	DaoId       string     `json:"dao_id,omitempty"`
	TemplateId  string     `json:"template_id,omitempty"`
	Category    string     `json:"category"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Enabled     bool       `json:"enabled"`
	Config      RuleConfig `json:"config"`
	CreatedAt   int64      `json:"created_at,omitempty"`
	UpdatedAt   int64      `json:"updated_at,omitempty"`
}

// DeepCopy returns a copy of the config that shares no mutable state with the
// receiver. Instances derived from templates must never alias catalog
// internals.
func (c RuleConfig) DeepCopy() RuleConfig {
	out := RuleConfig{
		Conditions: make([]Condition, len(c.Conditions)),
		Actions:    make([]Action, len(c.Actions)),
	}
	for i, cond := range c.Conditions {
		out.Conditions[i] = Condition{
			Field:    cond.Field,
			Operator: cond.Operator,
			Value:    deepCopyValue(cond.Value),
		}
	}
	for i, act := range c.Actions {
		copied := Action{Type: act.Type}
		if act.Payload != nil {
			payload := make(map[string]interface{}, len(act.Payload))
			for k, v := range act.Payload {
				payload[k] = deepCopyValue(v)
			}
			copied.Payload = payload
		}
		out.Actions[i] = copied
	}
	return out
}

// deepCopyValue copies the JSON-shaped value graph (scalars, lists, maps).
func deepCopyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = deepCopyValue(item)
		}
		return out
	default:
		return val
	}
}
