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
	"strings"

	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	"github.com/mtaadao/dao-rule-engine/internal/system/utils"
)

// EvaluateConditions applies all conditions of one rule against the context.
// Conditions combine with logical AND; an empty list always matches. A
// missing context field makes the condition false, never an error, so one
// absent field cannot crash an evaluation. The returned detail names the
// first condition that did not hold.
//
// The only error case is an operator outside the known vocabulary, which the
// rule store rejects at write time; seeing one here means the stored rule
// predates a vocabulary change.
func EvaluateConditions(conditions []model.Condition, ctx EvaluationContext) (bool, string, error) {

	for _, condition := range conditions {
		contextValue, found := ctx.ResolveField(condition.Field)
		if !found {
			return false, fmt.Sprintf("field %q not present in context", condition.Field), nil
		}

		matched, err := evaluateCondition(condition, contextValue)
		if err != nil {
			return false, "", err
		}
		if !matched {
			return false, fmt.Sprintf("condition on field %q (%s) not satisfied",
				condition.Field, condition.Operator), nil
		}
	}
	return true, "", nil
}

func evaluateCondition(condition model.Condition, contextValue interface{}) (bool, error) {

	switch condition.Operator {
	case constants.OperatorEquals:
		return utils.LooseEquals(contextValue, condition.Value), nil
	case constants.OperatorNotEquals:
		return !utils.LooseEquals(contextValue, condition.Value), nil
	case constants.OperatorGreaterThan, constants.OperatorGreaterEqual,
		constants.OperatorLessThan, constants.OperatorLessEqual:
		return compareNumbers(condition.Operator, contextValue, condition.Value), nil
	case constants.OperatorIn:
		return listContains(condition.Value, contextValue), nil
	case constants.OperatorNotIn:
		return !listContains(condition.Value, contextValue), nil
	case constants.OperatorContains:
		return valueContains(contextValue, condition.Value), nil
	default:
		return false, fmt.Errorf("unknown condition operator: %s", condition.Operator)
	}
}

// compareNumbers is false when either side does not coerce to a number; the
// numeric operators are total over arbitrary value types that way.
func compareNumbers(operator string, contextValue, conditionValue interface{}) bool {

	left, ok := utils.CoerceToNumber(contextValue)
	if !ok {
		return false
	}
	right, ok := utils.CoerceToNumber(conditionValue)
	if !ok {
		return false
	}

	switch operator {
	case constants.OperatorGreaterThan:
		return left > right
	case constants.OperatorGreaterEqual:
		return left >= right
	case constants.OperatorLessThan:
		return left < right
	case constants.OperatorLessEqual:
		return left <= right
	}
	return false
}

func listContains(listValue, item interface{}) bool {

	list, ok := listValue.([]interface{})
	if !ok {
		return false
	}
	for _, candidate := range list {
		if utils.LooseEquals(candidate, item) {
			return true
		}
	}
	return false
}

// valueContains handles the contains operator: substring match when the
// context value is a string, membership when it is a list.
func valueContains(contextValue, conditionValue interface{}) bool {

	switch holder := contextValue.(type) {
	case string:
		needle, ok := utils.CoerceToString(conditionValue)
		if !ok {
			return false
		}
		return strings.Contains(holder, needle)
	case []interface{}:
		return listContains(contextValue, conditionValue)
	default:
		return false
	}
}
