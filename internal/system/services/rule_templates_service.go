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

	templatehandler "github.com/mtaadao/dao-rule-engine/internal/rule_templates/handler"
	"github.com/mtaadao/dao-rule-engine/internal/system/authn"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	"github.com/mtaadao/dao-rule-engine/internal/system/utils"
)

// RuleTemplatesService routes the read-only template catalog endpoints.
type RuleTemplatesService struct {
	templateHandler *templatehandler.TemplateHandler
}

func NewRuleTemplatesService() *RuleTemplatesService {
	return &RuleTemplatesService{
		templateHandler: templatehandler.NewTemplateHandler(),
	}
}

// Route handles all /rule-templates endpoints.
func (s *RuleTemplatesService) Route(w http.ResponseWriter, r *http.Request) {

	path := strings.TrimPrefix(r.URL.Path, constants.ApiBasePath)
	path = strings.TrimSuffix(path, "/")
	method := r.Method

	// The catalog is not DAO-scoped; any authenticated caller may read it.
	if _, err := authn.ValidateRequest(r, ""); err != nil {
		utils.HandleError(w, err)
		return
	}

	switch {
	case method == http.MethodGet && path == "/"+constants.TemplatesApiPath:
		s.templateHandler.ListTemplates(w, r)

	case method == http.MethodGet && strings.HasPrefix(path, "/"+constants.TemplatesApiPath+"/"):
		s.templateHandler.GetTemplate(w, r)

	default:
		http.NotFound(w, r)
	}
}
