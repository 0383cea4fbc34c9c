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

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/service"
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/store"
)

func TestRule_CreateUpdateToggleDelete(t *testing.T) {
	svc := service.GetRuleService(store.NewPostgresRuleStore())

	// Step 1: Create a rule from scratch.
	created, err := svc.AddRule("dao-int-1", "user-1", model.DaoRule{
		Category: "withdrawal",
		Name:     "Maximum Per Cycle",
		Enabled:  true,
		Config: model.RuleConfig{
			Conditions: []model.Condition{
				{Field: "amount", Operator: "gt", Value: float64(5000)},
			},
			Actions: []model.Action{{Type: "reject", Payload: map[string]interface{}{
				"reason": "Exceeds maximum withdrawal limit",
			}}},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.RuleId)
	assert.Equal(t, "dao-int-1", created.DaoId)

	// Step 2: Round-trip through jsonb keeps the config intact.
	fetched, err := svc.GetRule("dao-int-1", created.RuleId)
	require.NoError(t, err)
	require.Len(t, fetched.Config.Conditions, 1)
	assert.Equal(t, float64(5000), fetched.Config.Conditions[0].Value)
	assert.Equal(t, "Exceeds maximum withdrawal limit", fetched.Config.Actions[0].Payload["reason"])

	// Step 3: Full config replace.
	updated := *fetched
	updated.Config = model.RuleConfig{
		Conditions: []model.Condition{
			{Field: "amount", Operator: "gt", Value: float64(10000)},
		},
		Actions: []model.Action{{Type: "require_approval"}},
	}
	result, err := svc.UpdateRule("dao-int-1", "user-1", updated)
	require.NoError(t, err)
	assert.Equal(t, float64(10000), result.Config.Conditions[0].Value)
	assert.Equal(t, "require_approval", result.Config.Actions[0].Type)

	// Step 4: Toggle off.
	toggled, err := svc.SetRuleEnabled("dao-int-1", "user-1", created.RuleId, false)
	require.NoError(t, err)
	assert.False(t, toggled.Enabled)

	// Step 5: Delete and verify.
	require.NoError(t, svc.DeleteRule("dao-int-1", "user-1", created.RuleId))
	_, err = svc.GetRule("dao-int-1", created.RuleId)
	require.Error(t, err)
}

func TestRule_FromTemplateAgainstPostgres(t *testing.T) {
	svc := service.GetRuleService(store.NewPostgresRuleStore())

	created, err := svc.AddRule("dao-int-2", "user-1", model.DaoRule{
		TemplateId: "fixed-withdrawal-day",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fixed Withdrawal Day", created.Name)
	assert.Equal(t, "withdrawal", created.Category)

	fetched, err := svc.GetRule("dao-int-2", created.RuleId)
	require.NoError(t, err)
	assert.Equal(t, "fixed-withdrawal-day", fetched.TemplateId)
	require.Len(t, fetched.Config.Conditions, 1)
	assert.Equal(t, "dayOfWeek", fetched.Config.Conditions[0].Field)

	require.NoError(t, svc.DeleteDaoRules("dao-int-2", "user-1"))
}

func TestRule_ListEnabledOrdering(t *testing.T) {
	ruleStore := store.NewPostgresRuleStore()
	svc := service.GetRuleService(ruleStore)

	first, err := svc.AddRule("dao-int-3", "user-1", model.DaoRule{
		Category: "withdrawal",
		Name:     "first",
		Enabled:  true,
		Config: model.RuleConfig{
			Actions: []model.Action{{Type: "notify"}},
		},
	})
	require.NoError(t, err)
	second, err := svc.AddRule("dao-int-3", "user-1", model.DaoRule{
		Category: "withdrawal",
		Name:     "second",
		Enabled:  true,
		Config: model.RuleConfig{
			Actions: []model.Action{{Type: "notify"}},
		},
	})
	require.NoError(t, err)
	disabled, err := svc.AddRule("dao-int-3", "user-1", model.DaoRule{
		Category: "withdrawal",
		Name:     "disabled",
		Enabled:  false,
		Config: model.RuleConfig{
			Actions: []model.Action{{Type: "notify"}},
		},
	})
	require.NoError(t, err)

	enabled, err := ruleStore.ListEnabledRules("dao-int-3", "withdrawal")
	require.NoError(t, err)
	require.Len(t, enabled, 2)
	for _, rule := range enabled {
		assert.NotEqual(t, disabled.RuleId, rule.RuleId)
	}
	listed := []string{enabled[0].RuleId, enabled[1].RuleId}
	assert.ElementsMatch(t, []string{first.RuleId, second.RuleId}, listed)

	// Created in the same second or not, the (created_at, rule_id) order is
	// total, so repeated listings agree.
	again, err := ruleStore.ListEnabledRules("dao-int-3", "withdrawal")
	require.NoError(t, err)
	require.Len(t, again, 2)
	assert.Equal(t, enabled[0].RuleId, again[0].RuleId)
	assert.Equal(t, enabled[1].RuleId, again[1].RuleId)

	require.NoError(t, svc.DeleteDaoRules("dao-int-3", "user-1"))
}
