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
	"fmt"
	"net/http"
	"time"

	rulestore "github.com/mtaadao/dao-rule-engine/internal/dao_rules/store"
	"github.com/mtaadao/dao-rule-engine/internal/evaluation/engine"
	historyprovider "github.com/mtaadao/dao-rule-engine/internal/execution_history/provider"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
)

// EvaluationServiceInterface runs rule evaluations for DAO events.
type EvaluationServiceInterface interface {
	Evaluate(daoId, category string, ctx engine.EvaluationContext) (*engine.Decision, error)
}

// EvaluationService is the default implementation of the EvaluationServiceInterface.
type EvaluationService struct {
	sink engine.EffectSink
}

// GetEvaluationService creates the evaluation service with the given effect
// sink. A nil sink falls back to the audit-only LoggingSink.
func GetEvaluationService(sink engine.EffectSink) EvaluationServiceInterface {

	if sink == nil {
		sink = engine.NewLoggingSink()
	}
	return &EvaluationService{sink: sink}
}

// Evaluate validates the request and delegates to the engine. Each call runs
// synchronously within the caller's request; a withdrawal attempt blocks on
// its decision.
func (es *EvaluationService) Evaluate(daoId, category string,
	ctx engine.EvaluationContext) (*engine.Decision, error) {

	if daoId == "" {
		return nil, evaluationRequestError("A dao id is required for evaluation.")
	}
	if !constants.AllowedCategories[category] {
		return nil, evaluationRequestError(fmt.Sprintf("Unknown rule category: %s", category))
	}

	ctx.DaoId = daoId
	ctx.Category = category
	if ctx.Timestamp == 0 {
		ctx.Timestamp = time.Now().UTC().Unix()
	}

	historyService, err := historyprovider.NewExecutionProvider().GetExecutionService()
	if err != nil {
		return nil, err
	}

	ruleEngine := engine.New(rulestore.NewPostgresRuleStore(), historyService, es.sink)
	return ruleEngine.Evaluate(daoId, category, ctx)
}

func evaluationRequestError(description string) error {

	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.INVALID_EVALUATION_REQUEST.Code,
		Message:     errors2.INVALID_EVALUATION_REQUEST.Message,
		Description: description,
	}, http.StatusBadRequest)
}
