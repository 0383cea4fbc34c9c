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

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/model"
	"github.com/mtaadao/dao-rule-engine/internal/system/database/provider"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
)

// PostgresRuleStore persists DAO rules in the dao_rules table. The rule
// config is stored as a single jsonb document since conditions and actions
// are always read and replaced as a unit.
type PostgresRuleStore struct{}

// NewPostgresRuleStore returns a store backed by the configured datasource.
func NewPostgresRuleStore() *PostgresRuleStore {

	return &PostgresRuleStore{}
}

// AddRule adds a new DAO rule.
func (s *PostgresRuleStore) AddRule(rule model.DaoRule) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for adding rule: %s for dao: %s", rule.Name, rule.DaoId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_RULE.Code,
			Message:     errors2.ADD_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	configJSON, err := json.Marshal(rule.Config)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to serialize config for rule: %s for dao: %s", rule.Name, rule.DaoId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: errorMsg,
		}, err)
	}

	query := `INSERT INTO dao_rules
		(rule_id, dao_id, template_id, category, name, description, enabled, config, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	_, err = dbClient.Exec(query,
		rule.RuleId, rule.DaoId, rule.TemplateId, rule.Category, rule.Name, rule.Description, rule.Enabled,
		configJSON, rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed on inserting rule: %s for dao: %s", rule.Name, rule.DaoId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_RULE.Code,
			Message:     errors2.ADD_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Rule: %s for dao: %s added successfully.", rule.RuleId, rule.DaoId))
	return nil
}

// GetRule fetches a specific DAO rule by its ID. Returns nil when no rule
// exists for the id.
func (s *PostgresRuleStore) GetRule(ruleId string) (*model.DaoRule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for fetching rule with rule id: %s.", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_RULES.Code,
			Message:     errors2.FETCH_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT rule_id, dao_id, template_id, category, name, description, enabled, config,
		created_at, updated_at FROM dao_rules WHERE rule_id = $1`

	results, err := dbClient.ExecuteQuery(query, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to fetch rule with rule id: %s.", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_RULES.Code,
			Message:     errors2.FETCH_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		logger.Debug(fmt.Sprintf("No rule found for rule id: %s", ruleId))
		return nil, nil
	}

	rule, err := buildRuleFromRow(results[0])
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// UpdateRule replaces an existing DAO rule. The updated_at timestamp is
// refreshed here so callers cannot forget it.
func (s *PostgresRuleStore) UpdateRule(rule model.DaoRule) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for updating rule with rule id: %s.", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_RULE.Code,
			Message:     errors2.UPDATE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	configJSON, err := json.Marshal(rule.Config)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to serialize config for rule with rule id: %s.", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.MARSHAL_JSON.Code,
			Message:     errors2.MARSHAL_JSON.Message,
			Description: errorMsg,
		}, err)
	}

	timestamp := time.Now().UTC().Unix()

	query := `UPDATE dao_rules SET
		category=$1, name=$2, description=$3, enabled=$4, config=$5, updated_at=$6
		WHERE rule_id=$7`

	_, err = dbClient.Exec(query,
		rule.Category, rule.Name, rule.Description, rule.Enabled, configJSON, timestamp, rule.RuleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to update rule with rule id: %s.", rule.RuleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_RULE.Code,
			Message:     errors2.UPDATE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Rule: %s updated successfully.", rule.RuleId))
	return nil
}

// SetRuleEnabled toggles a rule on or off without touching its config.
func (s *PostgresRuleStore) SetRuleEnabled(ruleId string, enabled bool) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for toggling rule with rule id: %s.", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_RULE.Code,
			Message:     errors2.UPDATE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	timestamp := time.Now().UTC().Unix()

	_, err = dbClient.Exec(`UPDATE dao_rules SET enabled=$1, updated_at=$2 WHERE rule_id=$3`,
		enabled, timestamp, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to toggle rule with rule id: %s.", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_RULE.Code,
			Message:     errors2.UPDATE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Rule: %s enabled set to: %t.", ruleId, enabled))
	return nil
}

// DeleteRule deletes a DAO rule by its ID. Execution history rows for the
// rule are retained.
func (s *PostgresRuleStore) DeleteRule(ruleId string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting rule with rule id: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_RULE.Code,
			Message:     errors2.DELETE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	_, err = dbClient.Exec(`DELETE FROM dao_rules WHERE rule_id = $1`, ruleId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete rule: %s", ruleId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_RULE.Code,
			Message:     errors2.DELETE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Rule: %s deleted successfully.", ruleId))
	return nil
}

// DeleteRulesForDao deletes every rule owned by the DAO.
func (s *PostgresRuleStore) DeleteRulesForDao(daoId string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get database client for deleting rules of dao: %s", daoId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_RULE.Code,
			Message:     errors2.DELETE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	_, err = dbClient.Exec(`DELETE FROM dao_rules WHERE dao_id = $1`, daoId)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to delete rules of dao: %s", daoId)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_RULE.Code,
			Message:     errors2.DELETE_RULE.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Rules of dao: %s deleted successfully.", daoId))
	return nil
}

// ListRules fetches all rules of the DAO, optionally narrowed to a category.
func (s *PostgresRuleStore) ListRules(daoId, category string) ([]model.DaoRule, error) {

	query := `SELECT rule_id, dao_id, template_id, category, name, description, enabled, config,
		created_at, updated_at FROM dao_rules WHERE dao_id = $1 ORDER BY created_at ASC, rule_id ASC`
	args := []interface{}{daoId}
	if category != "" {
		query = `SELECT rule_id, dao_id, template_id, category, name, description, enabled, config,
		created_at, updated_at FROM dao_rules WHERE dao_id = $1 AND category = $2
		ORDER BY created_at ASC, rule_id ASC`
		args = append(args, category)
	}
	return s.queryRules(query, args...)
}

// ListEnabledRules fetches the enabled rules of the DAO for the category in
// deterministic evaluation order.
func (s *PostgresRuleStore) ListEnabledRules(daoId, category string) ([]model.DaoRule, error) {

	query := `SELECT rule_id, dao_id, template_id, category, name, description, enabled, config,
		created_at, updated_at FROM dao_rules WHERE dao_id = $1 AND category = $2 AND enabled = TRUE
		ORDER BY created_at ASC, rule_id ASC`
	return s.queryRules(query, daoId, category)
}

func (s *PostgresRuleStore) queryRules(query string, args ...interface{}) ([]model.DaoRule, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_RULES.Code,
			Message:     errors2.FETCH_RULES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to fetch rules."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_RULES.Code,
			Message:     errors2.FETCH_RULES.Message,
			Description: errorMsg,
		}, err)
	}

	rules := []model.DaoRule{}
	for _, row := range results {
		rule, err := buildRuleFromRow(row)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, nil
}

func buildRuleFromRow(row map[string]interface{}) (*model.DaoRule, error) {

	logger := log.GetLogger()
	var rule model.DaoRule

	rule.RuleId, _ = row["rule_id"].(string)
	rule.DaoId, _ = row["dao_id"].(string)
	rule.TemplateId, _ = row["template_id"].(string)
	rule.Category, _ = row["category"].(string)
	rule.Name, _ = row["name"].(string)
	rule.Description, _ = row["description"].(string)
	rule.Enabled, _ = row["enabled"].(bool)
	if createdAt, ok := row["created_at"].(int64); ok {
		rule.CreatedAt = createdAt
	}
	if updatedAt, ok := row["updated_at"].(int64); ok {
		rule.UpdatedAt = updatedAt
	}

	var rawConfig []byte
	switch v := row["config"].(type) {
	case []byte:
		rawConfig = v
	case string:
		rawConfig = []byte(v)
	}
	if len(rawConfig) > 0 {
		if err := json.Unmarshal(rawConfig, &rule.Config); err != nil {
			errorMsg := fmt.Sprintf("Failed to parse stored config for rule with rule id: %s.", rule.RuleId)
			logger.Debug(errorMsg, log.Error(err))
			return nil, errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.UNMARSHAL_JSON.Code,
				Message:     errors2.UNMARSHAL_JSON.Message,
				Description: errorMsg,
			}, err)
		}
	}
	return &rule, nil
}
