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
	"net/http"
	"strings"

	executionhandler "github.com/mtaadao/dao-rule-engine/internal/execution_history/handler"
	"github.com/mtaadao/dao-rule-engine/internal/system/authn"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	"github.com/mtaadao/dao-rule-engine/internal/system/utils"
)

// RuleExecutionsService routes the per-rule execution history endpoint.
type RuleExecutionsService struct {
	executionHandler *executionhandler.ExecutionHandler
}

func NewRuleExecutionsService() *RuleExecutionsService {
	return &RuleExecutionsService{
		executionHandler: executionhandler.NewExecutionHandler(),
	}
}

// Route handles GET /rules/{rule_id}/executions.
func (s *RuleExecutionsService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimPrefix(r.URL.Path, constants.ApiBasePath)
	path = strings.TrimSuffix(path, "/")
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")

	if len(segments) != 3 || segments[0] != "rules" || segments[1] == "" ||
		segments[2] != constants.ExecutionsApiPath || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	if _, err := authn.ValidateRequest(r, ""); err != nil {
		utils.HandleError(w, err)
		return
	}

	s.executionHandler.GetRuleExecutions(w, r, segments[1])
}
