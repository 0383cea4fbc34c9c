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
	"time"

	"github.com/google/uuid"
	rulemodel "github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	rulestore "github.com/mtaadao/dao-rule-engine/internal/dao_rules/store"
	historymodel "github.com/mtaadao/dao-rule-engine/internal/execution_history/model"
	historyservice "github.com/mtaadao/dao-rule-engine/internal/execution_history/service"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
)

// Decision is the combined outcome of one evaluation call. The execution ids
// reference the per-rule history records written for this call.
type Decision struct {
	Outcome          string   `json:"outcome"`
	Reason           string   `json:"reason"`
	RuleExecutionIds []string `json:"rule_execution_ids"`
}

// Engine evaluates a DAO's enabled rules against an event context. All
// collaborators arrive through the constructor; the engine owns no state of
// its own and a single instance is safe for concurrent use.
type Engine struct {
	ruleStore rulestore.RuleStore
	history   historyservice.ExecutionServiceInterface
	sink      EffectSink
}

// New wires an engine from its collaborators.
func New(ruleStore rulestore.RuleStore, history historyservice.ExecutionServiceInterface, sink EffectSink) *Engine {

	return &Engine{ruleStore: ruleStore, history: history, sink: sink}
}

// Evaluate runs every enabled rule of the DAO and category against the
// context and resolves the combined decision.
//
// A rule store failure aborts the call fail-closed; the caller must treat
// the error as "no decision, not approved". Per-rule evaluation errors are
// recorded and skipped so a single misconfigured rule cannot block decisions
// governed by the others. A history write failure after the decision is
// resolved is logged but does not void the decision.
func (e *Engine) Evaluate(daoId, category string, ctx EvaluationContext) (*Decision, error) {

	logger := log.GetLogger()

	rules, err := e.ruleStore.ListEnabledRules(daoId, category)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to load enabled rules for dao: %s, category: %s", daoId, category)
		logger.Error(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.STORE_UNAVAILABLE.Code,
			Message:     errors2.STORE_UNAVAILABLE.Message,
			Description: errors2.STORE_UNAVAILABLE.Description,
		}, err)
	}

	executedAt := time.Now().UTC().UnixMilli()
	redactedContext := historymodel.RedactContext(ctx.Data)
	matched := []rulemodel.DaoRule{}
	records := make([]historymodel.RuleExecution, 0, len(rules)+1)
	executionIds := make([]string, 0, len(rules))

	for _, rule := range rules {
		record := historymodel.RuleExecution{
			ExecutionId: uuid.New().String(),
			RuleId:      rule.RuleId,
			DaoId:       daoId,
			Category:    category,
			ExecutedAt:  executedAt,
			Context:     redactedContext,
		}

		ok, detail, evalErr := EvaluateConditions(rule.Config.Conditions, ctx)
		switch {
		case evalErr != nil:
			record.Result = constants.ResultError
			record.Reason = evalErr.Error()
			logger.Warn(fmt.Sprintf("Rule: %s failed to evaluate; skipping.", rule.RuleId),
				log.Error(evalErr))
		case ok:
			record.Result = constants.ResultMatched
			matched = append(matched, rule)
		default:
			record.Result = constants.ResultNotMatched
			record.Reason = detail
		}

		records = append(records, record)
		executionIds = append(executionIds, record.ExecutionId)
	}

	// Matched rules arrive in createdAt order from the store, so side
	// effects of same-class rules apply oldest rule first. The decision is
	// resolved afterwards from what actually succeeded at the sink: a
	// terminal effect that failed must not decide the outcome.
	executed := make([]RuleOutcome, 0, len(matched))
	for _, rule := range matched {
		actionResults := ExecuteActions(rule.Config.Actions, ctx, e.sink)
		executed = append(executed, RuleOutcome{Rule: rule, Results: actionResults})
		for i := range records {
			if records[i].RuleId != rule.RuleId {
				continue
			}
			records[i].ActionResults = actionResults
			if failureNote := summarizeFailures(actionResults); failureNote != "" {
				records[i].Reason = failureNote
			}
			break
		}
	}

	outcome, reason := ResolveDecision(executed)

	records = append(records, historymodel.RuleExecution{
		ExecutionId: uuid.New().String(),
		DaoId:       daoId,
		Category:    category,
		ExecutedAt:  executedAt,
		Context:     redactedContext,
		Result:      constants.ResultSummary,
		Reason:      reason,
		Decision:    outcome,
	})

	if err := e.history.AppendExecutions(records); err != nil {
		logger.Error("Failed to append execution history for evaluation.", log.Error(err),
			log.String("dao_id", daoId), log.String("category", category))
	}

	logger.Audit(log.AuditEvent{
		InitiatorID:   ctx.ActorId,
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      daoId,
		TargetType:    log.TargetTypeDao,
		ActionID:      log.ActionEvaluateRules,
		Data: map[string]interface{}{
			"category": category,
			"outcome":  outcome,
			"rules":    len(rules),
		},
	})

	return &Decision{Outcome: outcome, Reason: reason, RuleExecutionIds: executionIds}, nil
}

func summarizeFailures(results []historymodel.ActionResult) string {

	failed := 0
	firstReason := ""
	for _, result := range results {
		if !result.Succeeded {
			failed++
			if firstReason == "" {
				firstReason = result.Reason
			}
		}
	}
	if failed == 0 {
		return ""
	}
	return fmt.Sprintf("%d action(s) failed: %s", failed, firstReason)
}
