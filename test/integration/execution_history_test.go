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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mtaadao/dao-rule-engine/internal/evaluation/engine"
	historymodel "github.com/mtaadao/dao-rule-engine/internal/execution_history/model"
	historystore "github.com/mtaadao/dao-rule-engine/internal/execution_history/store"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
)

func evaluationContext(data map[string]interface{}) engine.EvaluationContext {
	return engine.EvaluationContext{ActorId: "user-1", Data: data}
}

func executionRecord(executionId, daoId, ruleId string, executedAt int64) historymodel.RuleExecution {
	return historymodel.RuleExecution{
		ExecutionId: executionId,
		RuleId:      ruleId,
		DaoId:       daoId,
		Category:    constants.CategoryWithdrawal,
		ExecutedAt:  executedAt,
		Result:      constants.ResultMatched,
		Reason:      "matched",
	}
}

func TestExecutionHistory_BatchAppendAndOrdering(t *testing.T) {
	store := historystore.NewPostgresExecutionStore()

	batch := []historymodel.RuleExecution{
		executionRecord("x-hist-3", "dao-hist-1", "r1", 3000),
		executionRecord("x-hist-1", "dao-hist-1", "r1", 1000),
		executionRecord("x-hist-2", "dao-hist-1", "r2", 2000),
	}
	require.NoError(t, store.AppendExecutions(batch))

	records, err := store.ListExecutionsForDao("dao-hist-1", "", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "x-hist-1", records[0].ExecutionId)
	assert.Equal(t, "x-hist-2", records[1].ExecutionId)
	assert.Equal(t, "x-hist-3", records[2].ExecutionId)
}

func TestExecutionHistory_SinceAndLimit(t *testing.T) {
	store := historystore.NewPostgresExecutionStore()

	var batch []historymodel.RuleExecution
	for i := 1; i <= 5; i++ {
		batch = append(batch, executionRecord(
			fmt.Sprintf("x-since-%d", i), "dao-hist-2", "r1", int64(i*1000)))
	}
	require.NoError(t, store.AppendExecutions(batch))

	since, err := store.ListExecutionsForDao("dao-hist-2", "", 3000, 0)
	require.NoError(t, err)
	require.Len(t, since, 3)
	assert.Equal(t, "x-since-3", since[0].ExecutionId)

	limited, err := store.ListExecutionsForDao("dao-hist-2", "", 0, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "x-since-1", limited[0].ExecutionId)
}

func TestExecutionHistory_RuleScopedListing(t *testing.T) {
	store := historystore.NewPostgresExecutionStore()

	require.NoError(t, store.AppendExecutions([]historymodel.RuleExecution{
		executionRecord("x-rule-1", "dao-hist-3", "r-target", 1000),
		executionRecord("x-rule-2", "dao-hist-3", "r-other", 2000),
		executionRecord("x-rule-3", "dao-hist-3", "r-target", 3000),
	}))

	records, err := store.ListExecutionsForRule("r-target", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "x-rule-1", records[0].ExecutionId)
	assert.Equal(t, "x-rule-3", records[1].ExecutionId)
}

func TestExecutionHistory_ContextRoundTrip(t *testing.T) {
	store := historystore.NewPostgresExecutionStore()

	record := executionRecord("x-ctx-1", "dao-hist-4", "", 1000)
	record.RuleId = ""
	record.Result = constants.ResultSummary
	record.Decision = constants.DecisionReject
	record.Context = map[string]interface{}{
		"amount": float64(1500),
		"member": map[string]interface{}{"status": "pending"},
	}
	require.NoError(t, store.AppendExecutions([]historymodel.RuleExecution{record}))

	records, err := store.ListExecutionsForDao("dao-hist-4", "", 0, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, float64(1500), records[0].Context["amount"])
	member, ok := records[0].Context["member"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pending", member["status"])
}
