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
	"strings"

	"github.com/mtaadao/dao-rule-engine/internal/rule_templates/provider"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
	"github.com/mtaadao/dao-rule-engine/internal/system/utils"
)

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {

	return &TemplateHandler{}
}

// ListTemplates handles GET /rule-templates
func (th *TemplateHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {

	category := r.URL.Query().Get(constants.CategoryQueryParam)

	templateProvider := provider.NewTemplateProvider()
	templateService := templateProvider.GetTemplateService()
	templates, err := templateService.ListTemplates(category)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	logger := log.GetLogger()
	logger.Info("Rule templates retrieved successfully")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(templates)
}

// GetTemplate handles GET /rule-templates/:template_id
func (th *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {

	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 3 {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}
	templateId := pathParts[len(pathParts)-1]

	templateProvider := provider.NewTemplateProvider()
	templateService := templateProvider.GetTemplateService()
	template, err := templateService.GetTemplate(templateId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Rule template: %s retrieved successfully", templateId))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(template)
}
