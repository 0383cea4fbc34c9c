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

	rulemodel "github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	"github.com/mtaadao/dao-rule-engine/internal/rule_templates/model"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
)

// TemplateServiceInterface serves the built-in rule template catalog.
type TemplateServiceInterface interface {
	ListTemplates(category string) ([]model.RuleTemplate, error)
	GetTemplate(templateId string) (*model.RuleTemplate, error)
	InstantiateDefault(templateId string) (rulemodel.RuleConfig, error)
}

// TemplateService is a read-only view over the seeded catalog. The catalog
// is immutable after process start, so no locking is needed.
type TemplateService struct {
	byId  map[string]model.RuleTemplate
	order []string
}

// GetTemplateService creates the catalog service with the built-in seeds.
func GetTemplateService() TemplateServiceInterface {

	svc := &TemplateService{byId: make(map[string]model.RuleTemplate)}
	for _, tmpl := range builtInTemplates() {
		svc.byId[tmpl.TemplateId] = tmpl
		svc.order = append(svc.order, tmpl.TemplateId)
	}
	return svc
}

// ListTemplates returns the catalog, optionally narrowed to one category.
// Returned templates carry deep-copied configs so callers can mutate them.
func (ts *TemplateService) ListTemplates(category string) ([]model.RuleTemplate, error) {

	if category != "" && !constants.AllowedCategories[category] {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_CATEGORY.Code,
			Message:     errors2.INVALID_CATEGORY.Message,
			Description: fmt.Sprintf("Unknown rule category: %s", category),
		}, http.StatusBadRequest)
	}

	templates := []model.RuleTemplate{}
	for _, id := range ts.order {
		tmpl := ts.byId[id]
		if category != "" && tmpl.Category != category {
			continue
		}
		tmpl.Config = tmpl.Config.DeepCopy()
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// GetTemplate returns the template with the given id. Callers receive a deep
// copy; catalog internals are never aliased.
func (ts *TemplateService) GetTemplate(templateId string) (*model.RuleTemplate, error) {

	tmpl, ok := ts.byId[templateId]
	if !ok {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.TEMPLATE_NOT_FOUND.Code,
			Message:     errors2.TEMPLATE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No rule template found for id: %s", templateId),
		}, http.StatusNotFound)
	}
	tmpl.Config = tmpl.Config.DeepCopy()
	return &tmpl, nil
}

// InstantiateDefault returns a deep copy of the template's default config for
// a new rule instance.
func (ts *TemplateService) InstantiateDefault(templateId string) (rulemodel.RuleConfig, error) {

	tmpl, err := ts.GetTemplate(templateId)
	if err != nil {
		return rulemodel.RuleConfig{}, err
	}
	return tmpl.Config, nil
}
