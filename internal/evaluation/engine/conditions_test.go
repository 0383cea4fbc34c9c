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

func contextWith(data map[string]interface{}) EvaluationContext {
	return EvaluationContext{DaoId: "dao-1", Category: "withdrawal", Data: data}
}

func TestEvaluateConditions_EmptyListAlwaysMatches(t *testing.T) {
	matched, _, err := EvaluateConditions(nil, contextWith(map[string]interface{}{"amount": 10}))
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestEvaluateConditions_MissingFieldFailsClosed(t *testing.T) {
	conditions := []model.Condition{{Field: "amount", Operator: "gt", Value: float64(100)}}
	matched, detail, err := EvaluateConditions(conditions, contextWith(map[string]interface{}{}))
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Contains(t, detail, "amount")
}

func TestEvaluateConditions_DotPathResolution(t *testing.T) {
	conditions := []model.Condition{
		{Field: "member.contribution_total", Operator: "gte", Value: float64(500)},
	}
	ctx := contextWith(map[string]interface{}{
		"member": map[string]interface{}{"contribution_total": float64(750)},
	})
	matched, _, err := EvaluateConditions(conditions, ctx)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestEvaluateConditions_NumericComparisons(t *testing.T) {
	ctx := contextWith(map[string]interface{}{"amount": float64(1500)})

	tests := []struct {
		operator string
		value    interface{}
		matched  bool
	}{
		{"gt", float64(1000), true},
		{"gt", float64(1500), false},
		{"gte", float64(1500), true},
		{"lt", float64(2000), true},
		{"lte", float64(1499), false},
	}
	for _, tc := range tests {
		conditions := []model.Condition{{Field: "amount", Operator: tc.operator, Value: tc.value}}
		matched, _, err := EvaluateConditions(conditions, ctx)
		require.NoError(t, err)
		assert.Equal(t, tc.matched, matched, "operator %s value %v", tc.operator, tc.value)
	}
}

func TestEvaluateConditions_NumericOperatorNonCoercibleIsFalse(t *testing.T) {
	conditions := []model.Condition{{Field: "amount", Operator: "gt", Value: float64(10)}}
	ctx := contextWith(map[string]interface{}{"amount": "not-a-number"})
	matched, _, err := EvaluateConditions(conditions, ctx)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestEvaluateConditions_EqualsCoercesNumericTypes(t *testing.T) {
	// JSON decoding yields float64 but contexts built in Go may carry int.
	conditions := []model.Condition{{Field: "dayOfWeek", Operator: "eq", Value: float64(5)}}
	ctx := contextWith(map[string]interface{}{"dayOfWeek": 5})
	matched, _, err := EvaluateConditions(conditions, ctx)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestEvaluateConditions_InAndNotIn(t *testing.T) {
	allowed := []interface{}{"member", "elder"}
	ctx := contextWith(map[string]interface{}{"role": "elder"})

	matched, _, err := EvaluateConditions(
		[]model.Condition{{Field: "role", Operator: "in", Value: allowed}}, ctx)
	require.NoError(t, err)
	assert.True(t, matched)

	matched, _, err = EvaluateConditions(
		[]model.Condition{{Field: "role", Operator: "not_in", Value: allowed}}, ctx)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestEvaluateConditions_Contains(t *testing.T) {
	ctx := contextWith(map[string]interface{}{
		"note": "late payment recorded",
		"tags": []interface{}{"late", "penalty"},
	})

	matched, _, err := EvaluateConditions(
		[]model.Condition{{Field: "note", Operator: "contains", Value: "late"}}, ctx)
	require.NoError(t, err)
	assert.True(t, matched)

	matched, _, err = EvaluateConditions(
		[]model.Condition{{Field: "tags", Operator: "contains", Value: "penalty"}}, ctx)
	require.NoError(t, err)
	assert.True(t, matched)

	// Context value that is neither string nor list is false, not an error.
	matched, _, err = EvaluateConditions(
		[]model.Condition{{Field: "tags", Operator: "contains", Value: "other"}}, ctx)
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestEvaluateConditions_AllMustHold(t *testing.T) {
	conditions := []model.Condition{
		{Field: "amount", Operator: "gt", Value: float64(100)},
		{Field: "role", Operator: "eq", Value: "member"},
	}
	ctx := contextWith(map[string]interface{}{"amount": float64(500), "role": "elder"})
	matched, detail, err := EvaluateConditions(conditions, ctx)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Contains(t, detail, "role")
}

func TestEvaluateConditions_UnknownOperatorErrors(t *testing.T) {
	conditions := []model.Condition{{Field: "amount", Operator: "regex", Value: ".*"}}
	_, _, err := EvaluateConditions(conditions, contextWith(map[string]interface{}{"amount": 1}))
	require.Error(t, err)
}
