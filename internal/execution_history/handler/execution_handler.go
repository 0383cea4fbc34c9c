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

package handler

import (
	"net/http"
	"strconv"

	"github.com/mtaadao/dao-rule-engine/internal/execution_history/provider"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	"github.com/mtaadao/dao-rule-engine/internal/system/utils"
)

const limitQueryParam = "limit"

type ExecutionHandler struct{}

func NewExecutionHandler() *ExecutionHandler {

	return &ExecutionHandler{}
}

// GetDaoExecutions handles GET /daos/:dao_id/executions
func (eh *ExecutionHandler) GetDaoExecutions(w http.ResponseWriter, r *http.Request, daoId string) {

	category := r.URL.Query().Get(constants.CategoryQueryParam)
	since := parseInt64Query(r, constants.SinceQueryParam)
	limit := int(parseInt64Query(r, limitQueryParam))

	executionService, err := provider.NewExecutionProvider().GetExecutionService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	records, err := executionService.GetDaoExecutions(daoId, category, since, limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, records)
}

// GetRuleExecutions handles GET /rules/:rule_id/executions
func (eh *ExecutionHandler) GetRuleExecutions(w http.ResponseWriter, r *http.Request, ruleId string) {

	since := parseInt64Query(r, constants.SinceQueryParam)
	limit := int(parseInt64Query(r, limitQueryParam))

	executionService, err := provider.NewExecutionProvider().GetExecutionService()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	records, err := executionService.GetRuleExecutions(ruleId, since, limit)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, records)
}

func parseInt64Query(r *http.Request, name string) int64 {

	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
