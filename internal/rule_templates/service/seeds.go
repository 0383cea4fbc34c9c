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

package service

import (
	rulemodel "github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	"github.com/mtaadao/dao-rule-engine/internal/rule_templates/model"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
)

// builtInTemplates is the catalog shipped with the engine. A nil condition
// value is a placeholder the DAO fills in at instantiation time.
func builtInTemplates() []model.RuleTemplate {

	return []model.RuleTemplate{
		{
			TemplateId:  "minimum-contribution",
			Category:    constants.CategoryEntry,
			Name:        "Minimum Contribution",
			Description: "Require minimum contribution to join",
			Icon:        "coins",
			Config: rulemodel.RuleConfig{
				Conditions: []rulemodel.Condition{
					{Field: "initialContribution", Operator: constants.OperatorLessThan, Value: nil},
				},
				Actions: []rulemodel.Action{
					{Type: constants.ActionReject, Payload: map[string]interface{}{
						"reason": "Insufficient initial contribution",
					}},
				},
			},
		},
		{
			TemplateId:  "elder-approval-required",
			Category:    constants.CategoryEntry,
			Name:        "Elder Approval Required",
			Description: "New members require elder approval",
			Icon:        "shield-check",
			Config: rulemodel.RuleConfig{
				Conditions: []rulemodel.Condition{
					{Field: "memberStatus", Operator: constants.OperatorEquals, Value: "pending"},
				},
				Actions: []rulemodel.Action{
					{Type: constants.ActionRequireApproval, Payload: map[string]interface{}{
						"approverRole": "elder",
						"deadline":     float64(3),
					}},
				},
			},
		},
		{
			TemplateId:  "fixed-withdrawal-day",
			Category:    constants.CategoryWithdrawal,
			Name:        "Fixed Withdrawal Day",
			Description: "Only allow withdrawals on specific day(s)",
			Icon:        "calendar",
			Config: rulemodel.RuleConfig{
				Conditions: []rulemodel.Condition{
					{Field: "dayOfWeek", Operator: constants.OperatorNotEquals, Value: float64(5)},
				},
				Actions: []rulemodel.Action{
					{Type: constants.ActionReject, Payload: map[string]interface{}{
						"reason": "Withdrawals only on Friday",
					}},
				},
			},
		},
		{
			TemplateId:  "maximum-per-cycle",
			Category:    constants.CategoryWithdrawal,
			Name:        "Maximum Per Cycle",
			Description: "Limit withdrawal amount per cycle",
			Icon:        "gauge",
			Config: rulemodel.RuleConfig{
				Conditions: []rulemodel.Condition{
					{Field: "withdrawalAmount", Operator: constants.OperatorGreaterThan, Value: nil},
				},
				Actions: []rulemodel.Action{
					{Type: constants.ActionReject, Payload: map[string]interface{}{
						"reason": "Exceeds maximum withdrawal limit",
					}},
				},
			},
		},
		{
			TemplateId:  "waiting-period",
			Category:    constants.CategoryWithdrawal,
			Name:        "Waiting Period",
			Description: "Require waiting period before first withdrawal",
			Icon:        "hourglass",
			Config: rulemodel.RuleConfig{
				Conditions: []rulemodel.Condition{
					{Field: "daysSinceMemberJoin", Operator: constants.OperatorLessThan, Value: nil},
				},
				Actions: []rulemodel.Action{
					{Type: constants.ActionReject, Payload: map[string]interface{}{
						"reason": "Must wait before first withdrawal",
					}},
				},
			},
		},
		{
			TemplateId:  "skip-missing-members",
			Category:    constants.CategoryRotation,
			Name:        "Skip Missing Members",
			Description: "Skip members who missed contributions",
			Icon:        "user-x",
			Config: rulemodel.RuleConfig{
				Conditions: []rulemodel.Condition{
					{Field: "missedContributionCount", Operator: constants.OperatorGreaterEqual, Value: float64(1)},
				},
				Actions: []rulemodel.Action{
					{Type: constants.ActionNotify, Payload: map[string]interface{}{
						"message": "Skipping rotation due to missed contributions",
					}},
				},
			},
		},
		{
			TemplateId:  "late-contribution-penalty",
			Category:    constants.CategoryFinancial,
			Name:        "Late Contribution Penalty",
			Description: "Apply penalty for late contributions",
			Icon:        "alert-triangle",
			Config: rulemodel.RuleConfig{
				Conditions: []rulemodel.Condition{
					{Field: "daysLate", Operator: constants.OperatorGreaterThan, Value: float64(0)},
				},
				Actions: []rulemodel.Action{
					{Type: constants.ActionApplyFee, Payload: map[string]interface{}{
						"feeType": "percentage",
						"amount":  float64(5),
						"reason":  "Late contribution penalty",
					}},
				},
			},
		},
		{
			TemplateId:  "interest-accrual",
			Category:    constants.CategoryFinancial,
			Name:        "Interest Accrual",
			Description: "Accrue interest on member holdings",
			Icon:        "trending-up",
			Config: rulemodel.RuleConfig{
				Conditions: []rulemodel.Condition{
					{Field: "holdingPeriodDays", Operator: constants.OperatorGreaterEqual, Value: float64(30)},
				},
				Actions: []rulemodel.Action{
					{Type: constants.ActionApplyInterest, Payload: map[string]interface{}{
						"interestRate": float64(2),
						"frequency":    "monthly",
					}},
				},
			},
		},
		{
			TemplateId:  "proposal-cool-down",
			Category:    constants.CategoryGovernance,
			Name:        "Proposal Cool-down",
			Description: "Require cool-down between proposals",
			Icon:        "timer",
			Config: rulemodel.RuleConfig{
				Conditions: []rulemodel.Condition{
					{Field: "hoursSinceLastProposal", Operator: constants.OperatorLessThan, Value: float64(24)},
				},
				Actions: []rulemodel.Action{
					{Type: constants.ActionReject, Payload: map[string]interface{}{
						"reason": "Must wait 24 hours between proposals",
					}},
				},
			},
		},
	}
}
