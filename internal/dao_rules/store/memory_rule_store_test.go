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
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func storedRule(ruleId, daoId, category string, createdAt int64, enabled bool) model.DaoRule {
	return model.DaoRule{
		RuleId:    ruleId,
		DaoId:     daoId,
		Category:  category,
		Name:      "rule " + ruleId,
		Enabled:   enabled,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		Config: model.RuleConfig{
			Conditions: []model.Condition{
				{Field: "amount", Operator: "gt", Value: float64(100)},
			},
			Actions: []model.Action{{Type: "reject"}},
		},
	}
}

func TestMemoryRuleStore_GetRuleAbsentReturnsNil(t *testing.T) {
	store := NewMemoryRuleStore()
	rule, err := store.GetRule("missing")
	require.NoError(t, err)
	assert.Nil(t, rule)
}

func TestMemoryRuleStore_ListOrderedByCreatedAt(t *testing.T) {
	store := NewMemoryRuleStore()
	require.NoError(t, store.AddRule(storedRule("r-b", "dao-1", "withdrawal", 300, true)))
	require.NoError(t, store.AddRule(storedRule("r-a", "dao-1", "withdrawal", 100, true)))
	require.NoError(t, store.AddRule(storedRule("r-c", "dao-1", "withdrawal", 200, true)))

	rules, err := store.ListRules("dao-1", "")
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, "r-a", rules[0].RuleId)
	assert.Equal(t, "r-c", rules[1].RuleId)
	assert.Equal(t, "r-b", rules[2].RuleId)
}

func TestMemoryRuleStore_ListTiesBreakOnRuleId(t *testing.T) {
	store := NewMemoryRuleStore()
	require.NoError(t, store.AddRule(storedRule("r-z", "dao-1", "withdrawal", 100, true)))
	require.NoError(t, store.AddRule(storedRule("r-a", "dao-1", "withdrawal", 100, true)))

	rules, err := store.ListRules("dao-1", "")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "r-a", rules[0].RuleId)
}

func TestMemoryRuleStore_ListEnabledFilters(t *testing.T) {
	store := NewMemoryRuleStore()
	require.NoError(t, store.AddRule(storedRule("on", "dao-1", "withdrawal", 100, true)))
	require.NoError(t, store.AddRule(storedRule("off", "dao-1", "withdrawal", 200, false)))
	require.NoError(t, store.AddRule(storedRule("other-cat", "dao-1", "entry", 300, true)))
	require.NoError(t, store.AddRule(storedRule("other-dao", "dao-2", "withdrawal", 400, true)))

	rules, err := store.ListEnabledRules("dao-1", "withdrawal")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "on", rules[0].RuleId)
}

func TestMemoryRuleStore_ListRulesCategoryFilter(t *testing.T) {
	store := NewMemoryRuleStore()
	require.NoError(t, store.AddRule(storedRule("w1", "dao-1", "withdrawal", 100, true)))
	require.NoError(t, store.AddRule(storedRule("e1", "dao-1", "entry", 200, true)))

	rules, err := store.ListRules("dao-1", "entry")
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "e1", rules[0].RuleId)
}

func TestMemoryRuleStore_ReadsAreSnapshots(t *testing.T) {
	store := NewMemoryRuleStore()
	require.NoError(t, store.AddRule(storedRule("r1", "dao-1", "withdrawal", 100, true)))

	fetched, err := store.GetRule("r1")
	require.NoError(t, err)
	fetched.Config.Conditions[0].Value = float64(999999)

	fresh, err := store.GetRule("r1")
	require.NoError(t, err)
	assert.Equal(t, float64(100), fresh.Config.Conditions[0].Value)
}

func TestMemoryRuleStore_UpdatePreservesImmutableFields(t *testing.T) {
	store := NewMemoryRuleStore()
	original := storedRule("r1", "dao-1", "withdrawal", 100, true)
	require.NoError(t, store.AddRule(original))

	changed := original
	changed.DaoId = "dao-evil"
	changed.Name = "renamed"
	changed.Config = model.RuleConfig{Actions: []model.Action{{Type: "notify"}}}
	require.NoError(t, store.UpdateRule(changed))

	stored, err := store.GetRule("r1")
	require.NoError(t, err)
	assert.Equal(t, "dao-1", stored.DaoId)
	assert.Equal(t, int64(100), stored.CreatedAt)
	assert.Equal(t, "renamed", stored.Name)
	require.Len(t, stored.Config.Actions, 1)
	assert.Equal(t, "notify", stored.Config.Actions[0].Type)
}

func TestMemoryRuleStore_DeleteRulesForDao(t *testing.T) {
	store := NewMemoryRuleStore()
	require.NoError(t, store.AddRule(storedRule("r1", "dao-1", "withdrawal", 100, true)))
	require.NoError(t, store.AddRule(storedRule("r2", "dao-1", "entry", 200, true)))
	require.NoError(t, store.AddRule(storedRule("kept", "dao-2", "withdrawal", 300, true)))

	require.NoError(t, store.DeleteRulesForDao("dao-1"))

	gone, err := store.ListRules("dao-1", "")
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := store.GetRule("kept")
	require.NoError(t, err)
	require.NotNil(t, kept)
}
