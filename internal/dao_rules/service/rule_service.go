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

	"github.com/google/uuid"
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/store"
	templateprovider "github.com/mtaadao/dao-rule-engine/internal/rule_templates/provider"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
	"github.com/mtaadao/dao-rule-engine/internal/system/utils"
)

// RuleServiceInterface manages the lifecycle of DAO rule instances.
type RuleServiceInterface interface {
	AddRule(daoId, actorId string, rule model.DaoRule) (*model.DaoRule, error)
	GetRule(daoId, ruleId string) (*model.DaoRule, error)
	GetRules(daoId, category string) ([]model.DaoRule, error)
	UpdateRule(daoId, actorId string, rule model.DaoRule) (*model.DaoRule, error)
	SetRuleEnabled(daoId, actorId, ruleId string, enabled bool) (*model.DaoRule, error)
	DeleteRule(daoId, actorId, ruleId string) error
	DeleteDaoRules(daoId, actorId string) error
}

// RuleService is the default implementation of the RuleServiceInterface.
type RuleService struct {
	ruleStore store.RuleStore
}

// GetRuleService creates the rule service backed by the given store.
func GetRuleService(ruleStore store.RuleStore) RuleServiceInterface {

	return &RuleService{ruleStore: ruleStore}
}

// AddRule validates and persists a new rule for the DAO. When the rule names
// a template_id the rule is instantiated from the catalog: name, description,
// category and config default from the template and any request config
// replaces the template config wholesale.
func (rs *RuleService) AddRule(daoId, actorId string, rule model.DaoRule) (*model.DaoRule, error) {

	logger := log.GetLogger()

	if rule.TemplateId != "" {
		templateService := templateprovider.NewTemplateProvider().GetTemplateService()
		template, err := templateService.GetTemplate(rule.TemplateId)
		if err != nil {
			return nil, err
		}
		if rule.Name == "" {
			rule.Name = template.Name
		}
		if rule.Description == "" {
			rule.Description = template.Description
		}
		if rule.Category == "" {
			rule.Category = template.Category
		}
		if len(rule.Config.Conditions) == 0 && len(rule.Config.Actions) == 0 {
			rule.Config, err = templateService.InstantiateDefault(rule.TemplateId)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := validateRule(&rule); err != nil {
		return nil, err
	}

	timestamp := time.Now().UTC().Unix()
	rule.RuleId = uuid.New().String()
	rule.DaoId = daoId
	rule.CreatedAt = timestamp
	rule.UpdatedAt = timestamp

	if err := rs.ruleStore.AddRule(rule); err != nil {
		return nil, err
	}

	logger.Audit(log.AuditEvent{
		InitiatorID:   actorId,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      rule.RuleId,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionAddRule,
		Data:          map[string]string{"dao_id": daoId, "category": rule.Category},
	})
	return &rule, nil
}

// GetRule fetches one rule, scoped to the DAO that owns it.
func (rs *RuleService) GetRule(daoId, ruleId string) (*model.DaoRule, error) {

	rule, err := rs.ruleStore.GetRule(ruleId)
	if err != nil {
		return nil, err
	}
	if rule == nil || rule.DaoId != daoId {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.RULE_NOT_FOUND.Code,
			Message:     errors2.RULE_NOT_FOUND.Message,
			Description: fmt.Sprintf("No rule found for dao: %s with rule id: %s", daoId, ruleId),
		}, http.StatusNotFound)
	}
	return rule, nil
}

// GetRules fetches the DAO's rules, optionally narrowed to one category.
func (rs *RuleService) GetRules(daoId, category string) ([]model.DaoRule, error) {

	if category != "" && !constants.AllowedCategories[category] {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_CATEGORY.Code,
			Message:     errors2.INVALID_CATEGORY.Message,
			Description: fmt.Sprintf("Unknown rule category: %s", category),
		}, http.StatusBadRequest)
	}
	return rs.ruleStore.ListRules(daoId, category)
}

// UpdateRule replaces the mutable fields of an existing rule. The config is
// replaced whole; there are no partial config merges.
func (rs *RuleService) UpdateRule(daoId, actorId string, rule model.DaoRule) (*model.DaoRule, error) {

	logger := log.GetLogger()

	existing, err := rs.GetRule(daoId, rule.RuleId)
	if err != nil {
		return nil, err
	}

	if err := validateRule(&rule); err != nil {
		return nil, err
	}

	rule.DaoId = existing.DaoId
	rule.TemplateId = existing.TemplateId
	rule.CreatedAt = existing.CreatedAt
	if err := rs.ruleStore.UpdateRule(rule); err != nil {
		return nil, err
	}

	updated, err := rs.GetRule(daoId, rule.RuleId)
	if err != nil {
		return nil, err
	}

	logger.Audit(log.AuditEvent{
		InitiatorID:   actorId,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      rule.RuleId,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionUpdateRule,
		Data:          map[string]string{"dao_id": daoId},
	})
	return updated, nil
}

// SetRuleEnabled toggles a rule on or off without touching its config.
func (rs *RuleService) SetRuleEnabled(daoId, actorId, ruleId string, enabled bool) (*model.DaoRule, error) {

	logger := log.GetLogger()

	if _, err := rs.GetRule(daoId, ruleId); err != nil {
		return nil, err
	}
	if err := rs.ruleStore.SetRuleEnabled(ruleId, enabled); err != nil {
		return nil, err
	}
	updated, err := rs.GetRule(daoId, ruleId)
	if err != nil {
		return nil, err
	}

	logger.Audit(log.AuditEvent{
		InitiatorID:   actorId,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      ruleId,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionSetRuleEnabled,
		Data:          map[string]interface{}{"dao_id": daoId, "enabled": enabled},
	})
	return updated, nil
}

// DeleteRule removes one rule. Execution history rows are retained.
func (rs *RuleService) DeleteRule(daoId, actorId, ruleId string) error {

	logger := log.GetLogger()

	if _, err := rs.GetRule(daoId, ruleId); err != nil {
		return err
	}
	if err := rs.ruleStore.DeleteRule(ruleId); err != nil {
		return err
	}

	logger.Audit(log.AuditEvent{
		InitiatorID:   actorId,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      ruleId,
		TargetType:    log.TargetTypeRule,
		ActionID:      log.ActionDeleteRule,
		Data:          map[string]string{"dao_id": daoId},
	})
	return nil
}

// DeleteDaoRules removes every rule owned by the DAO, used when a DAO is
// dissolved.
func (rs *RuleService) DeleteDaoRules(daoId, actorId string) error {

	logger := log.GetLogger()

	if err := rs.ruleStore.DeleteRulesForDao(daoId); err != nil {
		return err
	}

	logger.Audit(log.AuditEvent{
		InitiatorID:   actorId,
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      daoId,
		TargetType:    log.TargetTypeDao,
		ActionID:      log.ActionDeleteDaoRules,
	})
	return nil
}

// validateRule enforces the closed rule vocabulary at write time so the
// evaluator never sees an unknown operator or action type.
func validateRule(rule *model.DaoRule) error {

	if rule.Name == "" {
		return ruleValidationError("Rule name is required.")
	}
	if rule.Category == "" {
		return ruleValidationError("Rule category is required.")
	}
	if !constants.AllowedCategories[rule.Category] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_CATEGORY.Code,
			Message:     errors2.INVALID_CATEGORY.Message,
			Description: fmt.Sprintf("Unknown rule category: %s", rule.Category),
		}, http.StatusBadRequest)
	}
	if len(rule.Config.Actions) == 0 {
		return ruleValidationError("A rule requires at least one action.")
	}

	for i, cond := range rule.Config.Conditions {
		if cond.Field == "" {
			return conditionError(fmt.Sprintf("Condition %d is missing a field.", i))
		}
		if !constants.AllowedConditionOperators[cond.Operator] {
			return conditionError(fmt.Sprintf("Condition %d has unknown operator: %s", i, cond.Operator))
		}
		if cond.Value == nil {
			return conditionError(fmt.Sprintf("Condition %d has no value. Template placeholders must be "+
				"filled before saving.", i))
		}
		if constants.NumericConditionOperators[cond.Operator] {
			if _, ok := utils.CoerceToNumber(cond.Value); !ok {
				return conditionError(fmt.Sprintf("Condition %d requires a numeric value for operator: %s",
					i, cond.Operator))
			}
		}
		if constants.ListConditionOperators[cond.Operator] {
			if _, ok := cond.Value.([]interface{}); !ok {
				return conditionError(fmt.Sprintf("Condition %d requires a list value for operator: %s",
					i, cond.Operator))
			}
		}
	}

	for i, action := range rule.Config.Actions {
		if !constants.AllowedActionTypes[action.Type] {
			return errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.INVALID_ACTION.Code,
				Message:     errors2.INVALID_ACTION.Message,
				Description: fmt.Sprintf("Action %d has unknown type: %s", i, action.Type),
			}, http.StatusBadRequest)
		}
	}
	return nil
}

func ruleValidationError(description string) error {

	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.RULE_VALIDATION.Code,
		Message:     errors2.RULE_VALIDATION.Message,
		Description: description,
	}, http.StatusBadRequest)
}

func conditionError(description string) error {

	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.INVALID_CONDITION.Code,
		Message:     errors2.INVALID_CONDITION.Message,
		Description: description,
	}, http.StatusBadRequest)
}
