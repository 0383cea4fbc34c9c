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

// RuleOutcome pairs one matched rule with the results of executing its
// actions.
type RuleOutcome struct {
	Rule    model.DaoRule
	Results []historymodel.ActionResult
}

// ResolveDecision combines the executed rules into one decision,
// most-restrictive-wins: reject beats require_approval beats approve. Only
// actions that succeeded at the sink count; a reject whose effect failed
// contributes nothing to the decision. With no succeeded decision action the
// category has no governing rule and the decision is not_applicable, leaving
// the caller's default policy in charge. Outcomes are expected in createdAt
// order, making the reported deciding rule deterministic.
//
// Pure function; no I/O.
func ResolveDecision(executed []RuleOutcome) (string, string) {

	for _, class := range []string{constants.ActionReject, constants.ActionRequireApproval, constants.ActionApprove} {
		for _, outcome := range executed {
			if result, ok := succeededAction(outcome.Results, class); ok {
				return decisionForAction(class), decisionReason(outcome.Rule, result)
			}
		}
	}
	return constants.DecisionNotApplicable, "No governing rule matched."
}

func succeededAction(results []historymodel.ActionResult, actionType string) (historymodel.ActionResult, bool) {

	for _, result := range results {
		if result.Type == actionType && result.Succeeded {
			return result, true
		}
	}
	return historymodel.ActionResult{}, false
}

func decisionForAction(actionType string) string {

	switch actionType {
	case constants.ActionReject:
		return constants.DecisionReject
	case constants.ActionRequireApproval:
		return constants.DecisionRequireApproval
	default:
		return constants.DecisionApprove
	}
}

// decisionReason prefers the reason the rule author wrote into the action
// payload over a generic message.
func decisionReason(rule model.DaoRule, result historymodel.ActionResult) string {

	if result.Payload != nil {
		if reason, ok := result.Payload["reason"].(string); ok && reason != "" {
			return reason
		}
	}
	return fmt.Sprintf("Decided by rule: %s", rule.Name)
}
