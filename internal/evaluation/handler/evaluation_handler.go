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
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mtaadao/dao-rule-engine/internal/evaluation/engine"
	"github.com/mtaadao/dao-rule-engine/internal/evaluation/provider"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
	"github.com/mtaadao/dao-rule-engine/internal/system/utils"
)

type EvaluationHandler struct{}

func NewEvaluationHandler() *EvaluationHandler {

	return &EvaluationHandler{}
}

type evaluationRequest struct {
	Category  string                 `json:"category"`
	Timestamp int64                  `json:"timestamp,omitempty"`
	Context   map[string]interface{} `json:"context"`
}

// Evaluate handles POST /daos/:dao_id/evaluate
func (eh *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request, daoId string) {

	var request evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "evaluation"),
		}, http.StatusBadRequest))
		return
	}

	actorId, _ := r.Context().Value(constants.ActorContextKey).(string)
	evalCtx := engine.EvaluationContext{
		Timestamp: request.Timestamp,
		ActorId:   actorId,
		Data:      request.Context,
	}

	evaluationService := provider.NewEvaluationProvider().GetEvaluationService()
	decision, err := evaluationService.Evaluate(daoId, request.Category, evalCtx)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Evaluation for dao: %s, category: %s resolved to: %s", daoId,
		request.Category, decision.Outcome))
	utils.WriteJSONResponse(w, http.StatusOK, decision)
}
