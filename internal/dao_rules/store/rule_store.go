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

package store

import (
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
)

// RuleStore is the persistence contract for DAO rule instances. The engine
// and the rule service depend on this interface only, so backends can be
// swapped (Postgres in deployments, in-memory in tests).
type RuleStore interface {
	// AddRule persists a new rule. The rule id must already be assigned.
	AddRule(rule model.DaoRule) error

	// GetRule returns the rule with the given id, or nil when absent.
	GetRule(ruleId string) (*model.DaoRule, error)

	// UpdateRule replaces the stored rule's mutable fields. The config is
	// replaced whole; partial merges are not supported.
	UpdateRule(rule model.DaoRule) error

	// SetRuleEnabled toggles a rule without touching its config.
	SetRuleEnabled(ruleId string, enabled bool) error

	// DeleteRule removes the rule. Execution history is not touched.
	DeleteRule(ruleId string) error

	// DeleteRulesForDao removes every rule owned by the DAO.
	DeleteRulesForDao(daoId string) error

	// ListRules returns all rules for the DAO, optionally filtered by
	// category (empty string means all), ordered by created_at ascending.
	ListRules(daoId, category string) ([]model.DaoRule, error)

	// ListEnabledRules returns the enabled rules for the DAO and category,
	// ordered by created_at ascending then rule id. Each call observes a
	// consistent snapshot: a concurrent toggle either fully includes or
	// fully excludes a rule.
	ListEnabledRules(daoId, category string) ([]model.DaoRule, error)
}
