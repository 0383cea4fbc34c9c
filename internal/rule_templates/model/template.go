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

import (
	rulemodel "github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
)

// RuleTemplate is a reusable rule blueprint from the built-in catalog. A
// condition value of nil marks a placeholder the DAO must fill in when
// instantiating the template.
type RuleTemplate struct {
	TemplateId  string               `json:"template_id"`
	Category    string               `json:"category"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Icon        string               `json:"icon"`
	Config      rulemodel.RuleConfig `json:"config"`
}
