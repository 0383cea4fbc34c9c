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
	"fmt"

	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	historymodel "github.com/mtaadao/dao-rule-engine/internal/execution_history/model"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
)

// ExecuteActions delegates the rule's actions to the sink strictly in
// declared order and records each action's outcome independently. A failing
// action is recorded and does not stop later actions; a notify failure must
// not block a fee. Terminal actions (approve, reject) short-circuit the
// remaining actions of the same rule once executed.
func ExecuteActions(actions []model.Action, ctx EvaluationContext, sink EffectSink) []historymodel.ActionResult {

	results := make([]historymodel.ActionResult, 0, len(actions))
	for _, action := range actions {
		result := historymodel.ActionResult{Type: action.Type, Payload: action.Payload}

		if err := delegate(action, ctx, sink); err != nil {
			result.Reason = err.Error()
		} else {
			result.Succeeded = true
		}
		results = append(results, result)

		if constants.TerminalActionTypes[action.Type] {
			break
		}
	}
	return results
}

func delegate(action model.Action, ctx EvaluationContext, sink EffectSink) error {

	switch action.Type {
	case constants.ActionApprove:
		return sink.Approve(ctx, action.Payload)
	case constants.ActionReject:
		return sink.Reject(ctx, action.Payload)
	case constants.ActionRequireApproval:
		return sink.RequireApproval(ctx, action.Payload)
	case constants.ActionApplyFee:
		return sink.ApplyFee(ctx, action.Payload)
	case constants.ActionApplyInterest:
		return sink.ApplyInterest(ctx, action.Payload)
	case constants.ActionDistribute:
		return sink.Distribute(ctx, action.Payload)
	case constants.ActionNotify:
		return sink.Notify(ctx, action.Payload)
	case constants.ActionSetThreshold:
		return sink.SetThreshold(ctx, action.Payload)
	default:
		return fmt.Errorf("unknown action type: %s", action.Type)
	}
}
