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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
)

// recordingSink captures delegated effects and can fail selected types.
type recordingSink struct {
	calls    []string
	failures map[string]error
}

func newRecordingSink() *recordingSink {
	return &recordingSink{failures: map[string]error{}}
}

func (rs *recordingSink) call(name string) error {
	rs.calls = append(rs.calls, name)
	return rs.failures[name]
}

func (rs *recordingSink) Approve(ctx EvaluationContext, payload map[string]interface{}) error {
	return rs.call("approve")
}
func (rs *recordingSink) Reject(ctx EvaluationContext, payload map[string]interface{}) error {
	return rs.call("reject")
}
func (rs *recordingSink) RequireApproval(ctx EvaluationContext, payload map[string]interface{}) error {
	return rs.call("require_approval")
}
func (rs *recordingSink) ApplyFee(ctx EvaluationContext, payload map[string]interface{}) error {
	return rs.call("apply_fee")
}
func (rs *recordingSink) ApplyInterest(ctx EvaluationContext, payload map[string]interface{}) error {
	return rs.call("apply_interest")
}
func (rs *recordingSink) Distribute(ctx EvaluationContext, payload map[string]interface{}) error {
	return rs.call("distribute")
}
func (rs *recordingSink) Notify(ctx EvaluationContext, payload map[string]interface{}) error {
	return rs.call("notify")
}
func (rs *recordingSink) SetThreshold(ctx EvaluationContext, payload map[string]interface{}) error {
	return rs.call("set_threshold")
}

func TestExecuteActions_DeclaredOrder(t *testing.T) {
	sink := newRecordingSink()
	actions := []model.Action{
		{Type: "apply_fee"},
		{Type: "notify"},
		{Type: "set_threshold"},
	}

	results := ExecuteActions(actions, EvaluationContext{}, sink)

	require.Len(t, results, 3)
	assert.Equal(t, []string{"apply_fee", "notify", "set_threshold"}, sink.calls)
	for _, result := range results {
		assert.True(t, result.Succeeded)
	}
}

func TestExecuteActions_TerminalShortCircuits(t *testing.T) {
	sink := newRecordingSink()
	actions := []model.Action{
		{Type: "apply_fee"},
		{Type: "reject"},
		{Type: "notify"},
	}

	results := ExecuteActions(actions, EvaluationContext{}, sink)

	// The fee ordered before the reject still applies; the notify after it
	// does not.
	require.Len(t, results, 2)
	assert.Equal(t, []string{"apply_fee", "reject"}, sink.calls)
}

func TestExecuteActions_FailureDoesNotStopLaterActions(t *testing.T) {
	sink := newRecordingSink()
	sink.failures["notify"] = errors.New("smtp unreachable")
	actions := []model.Action{
		{Type: "notify"},
		{Type: "apply_fee"},
	}

	results := ExecuteActions(actions, EvaluationContext{}, sink)

	require.Len(t, results, 2)
	assert.False(t, results[0].Succeeded)
	assert.Contains(t, results[0].Reason, "smtp unreachable")
	assert.True(t, results[1].Succeeded)
}

func TestExecuteActions_PayloadEchoedInResult(t *testing.T) {
	sink := newRecordingSink()
	payload := map[string]interface{}{"amount": float64(5), "feeType": "percentage"}
	results := ExecuteActions([]model.Action{{Type: "apply_fee", Payload: payload}},
		EvaluationContext{}, sink)

	require.Len(t, results, 1)
	assert.Equal(t, payload, results[0].Payload)
}
