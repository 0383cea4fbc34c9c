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

package services

import (
	"context"
	"net/http"
	"strings"

	rulehandler "github.com/mtaadao/dao-rule-engine/internal/dao_rules/handler"
	evaluationhandler "github.com/mtaadao/dao-rule-engine/internal/evaluation/handler"
	executionhandler "github.com/mtaadao/dao-rule-engine/internal/execution_history/handler"
	"github.com/mtaadao/dao-rule-engine/internal/system/authn"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	"github.com/mtaadao/dao-rule-engine/internal/system/utils"
)

// DaoRulesService routes every DAO-scoped endpoint: rule lifecycle,
// evaluation and the DAO's execution history.
type DaoRulesService struct {
	ruleHandler       *rulehandler.RuleHandler
	evaluationHandler *evaluationhandler.EvaluationHandler
	executionHandler  *executionhandler.ExecutionHandler
}

func NewDaoRulesService() *DaoRulesService {
	return &DaoRulesService{
		ruleHandler:       rulehandler.NewRuleHandler(),
		evaluationHandler: evaluationhandler.NewEvaluationHandler(),
		executionHandler:  executionhandler.NewExecutionHandler(),
	}
}

// Route handles all /daos/{dao_id}/... endpoints.
func (s *DaoRulesService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimPrefix(r.URL.Path, constants.ApiBasePath)
	path = strings.TrimSuffix(path, "/")
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	// Expected shapes: daos/{dao_id}/rules[/{rule_id}[/enabled]],
	// daos/{dao_id}/evaluate, daos/{dao_id}/executions
	if len(segments) < 3 || segments[0] != "daos" || segments[1] == "" {
		http.NotFound(w, r)
		return
	}
	daoId := segments[1]
	resource := segments[2]
	method := r.Method

	actorId, err := authn.ValidateRequest(r, daoId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	r = r.WithContext(context.WithValue(r.Context(), constants.ActorContextKey, actorId))

	switch {
	case resource == constants.RulesApiPath && len(segments) == 3:
		switch method {
		case http.MethodPost:
			s.ruleHandler.CreateRule(w, r, daoId)
		case http.MethodGet:
			s.ruleHandler.GetRules(w, r, daoId)
		case http.MethodDelete:
			s.ruleHandler.DeleteDaoRules(w, r, daoId)
		default:
			http.NotFound(w, r)
		}

	case resource == constants.RulesApiPath && len(segments) == 4:
		ruleId := segments[3]
		switch method {
		case http.MethodGet:
			s.ruleHandler.GetRule(w, r, daoId, ruleId)
		case http.MethodPut:
			s.ruleHandler.UpdateRule(w, r, daoId, ruleId)
		case http.MethodPatch:
			s.ruleHandler.SetRuleEnabled(w, r, daoId, ruleId)
		case http.MethodDelete:
			s.ruleHandler.DeleteRule(w, r, daoId, ruleId)
		default:
			http.NotFound(w, r)
		}

	case resource == constants.RulesApiPath && len(segments) == 5 && segments[4] == "enabled" &&
		method == http.MethodPatch:
		s.ruleHandler.SetRuleEnabled(w, r, daoId, segments[3])

	case resource == "evaluate" && len(segments) == 3 && method == http.MethodPost:
		s.evaluationHandler.Evaluate(w, r, daoId)

	case resource == constants.ExecutionsApiPath && len(segments) == 3 && method == http.MethodGet:
		s.executionHandler.GetDaoExecutions(w, r, daoId)

	default:
		http.NotFound(w, r)
	}
}
