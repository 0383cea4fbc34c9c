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
	rulemodel "github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	ruleservice "github.com/mtaadao/dao-rule-engine/internal/dao_rules/service"
	rulestore "github.com/mtaadao/dao-rule-engine/internal/dao_rules/store"
	evaluationservice "github.com/mtaadao/dao-rule-engine/internal/evaluation/service"
	historystore "github.com/mtaadao/dao-rule-engine/internal/execution_history/store"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
)

// TestEvaluation_EndToEnd creates a rule, evaluates a matching event against
// Postgres and verifies the per-rule and summary records landed in history.
func TestEvaluation_EndToEnd(t *testing.T) {
	ruleSvc := ruleservice.GetRuleService(rulestore.NewPostgresRuleStore())

	created, err := ruleSvc.AddRule("dao-eval-1", "user-1", rulemodel.DaoRule{
		Category: constants.CategoryWithdrawal,
		Name:     "Maximum Per Cycle",
		Enabled:  true,
		Config: rulemodel.RuleConfig{
			Conditions: []rulemodel.Condition{
				{Field: "amount", Operator: "gt", Value: float64(1000)},
			},
			Actions: []rulemodel.Action{{Type: "reject", Payload: map[string]interface{}{
				"reason": "Exceeds maximum withdrawal limit",
			}}},
		},
	})
	require.NoError(t, err)
	defer func() {
		_ = ruleSvc.DeleteDaoRules("dao-eval-1", "user-1")
	}()

	evalSvc := evaluationservice.GetEvaluationService(nil)
	decision, err := evalSvc.Evaluate("dao-eval-1", constants.CategoryWithdrawal,
		evaluationContext(map[string]interface{}{
			"amount":  float64(1500),
			"api_key": "sk-integration-secret",
		}))
	require.NoError(t, err)
	assert.Equal(t, constants.DecisionReject, decision.Outcome)
	assert.Equal(t, "Exceeds maximum withdrawal limit", decision.Reason)

	// Per-rule record with its action results and redacted context.
	executionStore := historystore.NewPostgresExecutionStore()
	ruleRecords, err := executionStore.ListExecutionsForRule(created.RuleId, 0, 0)
	require.NoError(t, err)
	require.Len(t, ruleRecords, 1)
	assert.Equal(t, constants.ResultMatched, ruleRecords[0].Result)
	require.Len(t, ruleRecords[0].ActionResults, 1)
	assert.Equal(t, "reject", ruleRecords[0].ActionResults[0].Type)
	assert.True(t, ruleRecords[0].ActionResults[0].Succeeded)
	assert.Equal(t, float64(1500), ruleRecords[0].Context["amount"])

	// Summary record with redacted context.
	daoRecords, err := executionStore.ListExecutionsForDao("dao-eval-1", "", 0, 0)
	require.NoError(t, err)
	require.Len(t, daoRecords, 2)

	summaries := 0
	for _, record := range daoRecords {
		if record.Result != constants.ResultSummary {
			continue
		}
		summaries++
		assert.Equal(t, constants.DecisionReject, record.Decision)
		redacted, ok := record.Context["api_key"].(string)
		require.True(t, ok)
		assert.NotContains(t, redacted, "sk-integration-secret")
	}
	assert.Equal(t, 1, summaries)
}

func TestEvaluation_NoRulesIsNotApplicable(t *testing.T) {
	evalSvc := evaluationservice.GetEvaluationService(nil)
	decision, err := evalSvc.Evaluate("dao-eval-empty", constants.CategoryGovernance,
		evaluationContext(map[string]interface{}{"hoursSinceLastProposal": float64(48)}))
	require.NoError(t, err)
	assert.Equal(t, constants.DecisionNotApplicable, decision.Outcome)
}
