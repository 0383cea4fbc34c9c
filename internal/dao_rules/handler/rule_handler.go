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

	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/provider"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
	"github.com/mtaadao/dao-rule-engine/internal/system/utils"
)

type RuleHandler struct{}

func NewRuleHandler() *RuleHandler {

	return &RuleHandler{}
}

// CreateRule handles POST /daos/:dao_id/rules
func (rh *RuleHandler) CreateRule(w http.ResponseWriter, r *http.Request, daoId string) {

	var rule model.DaoRule
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&rule); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "rule"),
		}, http.StatusBadRequest))
		return
	}

	ruleService := provider.NewRuleProvider().GetRuleService()
	created, err := ruleService.AddRule(daoId, actorFromRequest(r), rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Rule: %s for dao: %s created successfully", created.RuleId, daoId))
	utils.WriteJSONResponse(w, http.StatusCreated, created)
}

// GetRules handles GET /daos/:dao_id/rules
func (rh *RuleHandler) GetRules(w http.ResponseWriter, r *http.Request, daoId string) {

	category := r.URL.Query().Get(constants.CategoryQueryParam)

	ruleService := provider.NewRuleProvider().GetRuleService()
	rules, err := ruleService.GetRules(daoId, category)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, rules)
}

// GetRule handles GET /daos/:dao_id/rules/:rule_id
func (rh *RuleHandler) GetRule(w http.ResponseWriter, r *http.Request, daoId, ruleId string) {

	ruleService := provider.NewRuleProvider().GetRuleService()
	rule, err := ruleService.GetRule(daoId, ruleId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, rule)
}

// UpdateRule handles PUT /daos/:dao_id/rules/:rule_id
func (rh *RuleHandler) UpdateRule(w http.ResponseWriter, r *http.Request, daoId, ruleId string) {

	var rule model.DaoRule
	if err := json.NewDecoder(r.Body).Decode(&rule); err != nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "rule"),
		}, http.StatusBadRequest))
		return
	}
	rule.RuleId = ruleId

	ruleService := provider.NewRuleProvider().GetRuleService()
	updated, err := ruleService.UpdateRule(daoId, actorFromRequest(r), rule)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Rule: %s updated successfully.", ruleId))
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// SetRuleEnabled handles PATCH /daos/:dao_id/rules/:rule_id
func (rh *RuleHandler) SetRuleEnabled(w http.ResponseWriter, r *http.Request, daoId, ruleId string) {

	var body struct {
		Enabled *bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Enabled == nil {
		utils.HandleError(w, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Request body must carry a boolean 'enabled' field.",
		}, http.StatusBadRequest))
		return
	}

	ruleService := provider.NewRuleProvider().GetRuleService()
	updated, err := ruleService.SetRuleEnabled(daoId, actorFromRequest(r), ruleId, *body.Enabled)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Rule: %s enabled set to: %t.", ruleId, *body.Enabled))
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteRule handles DELETE /daos/:dao_id/rules/:rule_id
func (rh *RuleHandler) DeleteRule(w http.ResponseWriter, r *http.Request, daoId, ruleId string) {

	ruleService := provider.NewRuleProvider().GetRuleService()
	if err := ruleService.DeleteRule(daoId, actorFromRequest(r), ruleId); err != nil {
		utils.HandleError(w, err)
		return
	}
	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Rule: %s deleted successfully.", ruleId))
	w.WriteHeader(http.StatusNoContent)
}

// DeleteDaoRules handles DELETE /daos/:dao_id/rules
func (rh *RuleHandler) DeleteDaoRules(w http.ResponseWriter, r *http.Request, daoId string) {

	ruleService := provider.NewRuleProvider().GetRuleService()
	if err := ruleService.DeleteDaoRules(daoId, actorFromRequest(r)); err != nil {
		utils.HandleError(w, err)
		return
	}
	logger := log.GetLogger()
	logger.Info(fmt.Sprintf("Rules of dao: %s deleted successfully.", daoId))
	w.WriteHeader(http.StatusNoContent)
}

func actorFromRequest(r *http.Request) string {

	if actor, ok := r.Context().Value(constants.ActorContextKey).(string); ok {
		return actor
	}
	return ""
}
