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
	"sort"
	"sync"
	"time"

	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
)

// MemoryRuleStore is an in-memory RuleStore used in tests and single-node
// setups without a database. A single RWMutex guards the map, so every read
// observes a consistent snapshot of each rule.
type MemoryRuleStore struct {
	mu    sync.RWMutex
	rules map[string]model.DaoRule
}

// NewMemoryRuleStore returns an empty in-memory store.
func NewMemoryRuleStore() *MemoryRuleStore {

	return &MemoryRuleStore{rules: make(map[string]model.DaoRule)}
}

// AddRule stores a copy of the rule.
func (s *MemoryRuleStore) AddRule(rule model.DaoRule) error {

	s.mu.Lock()
	defer s.mu.Unlock()
	rule.Config = rule.Config.DeepCopy()
	s.rules[rule.RuleId] = rule
	return nil
}

// GetRule returns a copy of the rule, or nil when absent.
func (s *MemoryRuleStore) GetRule(ruleId string) (*model.DaoRule, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()
	rule, ok := s.rules[ruleId]
	if !ok {
		return nil, nil
	}
	rule.Config = rule.Config.DeepCopy()
	return &rule, nil
}

// UpdateRule replaces the stored rule's mutable fields.
func (s *MemoryRuleStore) UpdateRule(rule model.DaoRule) error {

	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.rules[rule.RuleId]
	if !ok {
		return nil
	}
	existing.Category = rule.Category
	existing.Name = rule.Name
	existing.Description = rule.Description
	existing.Enabled = rule.Enabled
	existing.Config = rule.Config.DeepCopy()
	existing.UpdatedAt = time.Now().UTC().Unix()
	s.rules[rule.RuleId] = existing
	return nil
}

// SetRuleEnabled toggles a rule.
func (s *MemoryRuleStore) SetRuleEnabled(ruleId string, enabled bool) error {

	s.mu.Lock()
	defer s.mu.Unlock()
	rule, ok := s.rules[ruleId]
	if !ok {
		return nil
	}
	rule.Enabled = enabled
	rule.UpdatedAt = time.Now().UTC().Unix()
	s.rules[ruleId] = rule
	return nil
}

// DeleteRule removes the rule.
func (s *MemoryRuleStore) DeleteRule(ruleId string) error {

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rules, ruleId)
	return nil
}

// DeleteRulesForDao removes every rule owned by the DAO.
func (s *MemoryRuleStore) DeleteRulesForDao(daoId string) error {

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, rule := range s.rules {
		if rule.DaoId == daoId {
			delete(s.rules, id)
		}
	}
	return nil
}

// ListRules returns the DAO's rules, optionally filtered by category,
// ordered by created_at then rule id.
func (s *MemoryRuleStore) ListRules(daoId, category string) ([]model.DaoRule, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.DaoRule{}
	for _, rule := range s.rules {
		if rule.DaoId != daoId {
			continue
		}
		if category != "" && rule.Category != category {
			continue
		}
		rule.Config = rule.Config.DeepCopy()
		out = append(out, rule)
	}
	sortRules(out)
	return out, nil
}

// ListEnabledRules returns the enabled rules of the DAO for the category in
// evaluation order.
func (s *MemoryRuleStore) ListEnabledRules(daoId, category string) ([]model.DaoRule, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.DaoRule{}
	for _, rule := range s.rules {
		if rule.DaoId != daoId || rule.Category != category || !rule.Enabled {
			continue
		}
		rule.Config = rule.Config.DeepCopy()
		out = append(out, rule)
	}
	sortRules(out)
	return out, nil
}

func sortRules(rules []model.DaoRule) {

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].CreatedAt != rules[j].CreatedAt {
			return rules[i].CreatedAt < rules[j].CreatedAt
		}
		return rules[i].RuleId < rules[j].RuleId
	})
}
