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

package constants

const ApiBasePath = "/api/v1"
const RulesApiPath = "rules"
const TemplatesApiPath = "rule-templates"
const ExecutionsApiPath = "executions"
const CategoryQueryParam = "category"
const SinceQueryParam = "since"

// Rule categories define which event family a rule governs.
const (
	CategoryEntry      = "entry"
	CategoryWithdrawal = "withdrawal"
	CategoryRotation   = "rotation"
	CategoryFinancial  = "financial"
	CategoryGovernance = "governance"
)

var AllowedCategories = map[string]bool{
	CategoryEntry:      true,
	CategoryWithdrawal: true,
	CategoryRotation:   true,
	CategoryFinancial:  true,
	CategoryGovernance: true,
}

// Condition operators. The vocabulary is closed; unknown operators are
// rejected at rule write time.
const (
	OperatorEquals       = "eq"
	OperatorNotEquals    = "neq"
	OperatorGreaterThan  = "gt"
	OperatorGreaterEqual = "gte"
	OperatorLessThan     = "lt"
	OperatorLessEqual    = "lte"
	OperatorIn           = "in"
	OperatorNotIn        = "not_in"
	OperatorContains     = "contains"
)

var AllowedConditionOperators = map[string]bool{
	OperatorEquals:       true,
	OperatorNotEquals:    true,
	OperatorGreaterThan:  true,
	OperatorGreaterEqual: true,
	OperatorLessThan:     true,
	OperatorLessEqual:    true,
	OperatorIn:           true,
	OperatorNotIn:        true,
	OperatorContains:     true,
}

// Operators whose condition value must coerce to a number.
var NumericConditionOperators = map[string]bool{
	OperatorGreaterThan:  true,
	OperatorGreaterEqual: true,
	OperatorLessThan:     true,
	OperatorLessEqual:    true,
}

// Operators whose condition value must be a list.
var ListConditionOperators = map[string]bool{
	OperatorIn:    true,
	OperatorNotIn: true,
}

// Action types. approve and reject are terminal: once executed, the
// remaining actions of the same rule are skipped.
const (
	ActionApprove         = "approve"
	ActionReject          = "reject"
	ActionRequireApproval = "require_approval"
	ActionApplyFee        = "apply_fee"
	ActionApplyInterest   = "apply_interest"
	ActionDistribute      = "distribute"
	ActionNotify          = "notify"
	ActionSetThreshold    = "set_threshold"
)

var AllowedActionTypes = map[string]bool{
	ActionApprove:         true,
	ActionReject:          true,
	ActionRequireApproval: true,
	ActionApplyFee:        true,
	ActionApplyInterest:   true,
	ActionDistribute:      true,
	ActionNotify:          true,
	ActionSetThreshold:    true,
}

var TerminalActionTypes = map[string]bool{
	ActionApprove: true,
	ActionReject:  true,
}

// Combined decision outcomes.
const (
	DecisionApprove         = "approve"
	DecisionReject          = "reject"
	DecisionRequireApproval = "require_approval"
	DecisionNotApplicable   = "not_applicable"
)

// Per-rule execution results.
const (
	ResultMatched    = "matched"
	ResultNotMatched = "not_matched"
	ResultError      = "error"
	ResultSummary    = "summary"
)

// History backends.
const (
	HistoryBackendPostgres = "postgres"
	HistoryBackendMongo    = "mongo"
)

type contextKey string

const ActorContextKey contextKey = "actor"
