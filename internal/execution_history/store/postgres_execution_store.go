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
	"strconv"

	"github.com/mtaadao/dao-rule-engine/internal/execution_history/model"
	"github.com/mtaadao/dao-rule-engine/internal/system/database/provider"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
)

// PostgresExecutionStore persists execution records in the rule_executions
// table. The redacted context is stored as jsonb.
type PostgresExecutionStore struct{}

// NewPostgresExecutionStore returns a store backed by the configured datasource.
func NewPostgresExecutionStore() *PostgresExecutionStore {

	return &PostgresExecutionStore{}
}

// AppendExecutions inserts the records of one evaluation in a single
// transaction so history never carries a partial evaluation.
func (s *PostgresExecutionStore) AppendExecutions(records []model.RuleExecution) error {

	if len(records) == 0 {
		return nil
	}

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for appending execution records."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.APPEND_EXECUTION.Code,
			Message:     errors2.APPEND_EXECUTION.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := "Failed to begin transaction for appending execution records."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.APPEND_EXECUTION.Code,
			Message:     errors2.APPEND_EXECUTION.Message,
			Description: errorMsg,
		}, err)
	}

	query := `INSERT INTO rule_executions
		(execution_id, rule_id, dao_id, category, executed_at, context, result, reason, decision, action_results)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	for _, record := range records {
		contextJSON, err := json.Marshal(record.Context)
		if err != nil {
			_ = tx.Rollback()
			errorMsg := fmt.Sprintf("Failed to serialize context for execution record: %s", record.ExecutionId)
			logger.Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.MARSHAL_JSON.Code,
				Message:     errors2.MARSHAL_JSON.Message,
				Description: errorMsg,
			}, err)
		}
		actionResultsJSON, err := json.Marshal(record.ActionResults)
		if err != nil {
			_ = tx.Rollback()
			errorMsg := fmt.Sprintf("Failed to serialize action results for execution record: %s", record.ExecutionId)
			logger.Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.MARSHAL_JSON.Code,
				Message:     errors2.MARSHAL_JSON.Message,
				Description: errorMsg,
			}, err)
		}
		_, err = tx.Exec(query,
			record.ExecutionId, record.RuleId, record.DaoId, record.Category, record.ExecutedAt,
			contextJSON, record.Result, record.Reason, record.Decision, actionResultsJSON)
		if err != nil {
			rollbackErr := tx.Rollback()
			if rollbackErr != nil {
				errorMsg := "Failed to rollback transaction for appending execution records."
				logger.Debug(errorMsg, log.Error(rollbackErr))
				return errors2.NewServerError(errors2.ErrorMessage{
					Code:        errors2.APPEND_EXECUTION.Code,
					Message:     errors2.APPEND_EXECUTION.Message,
					Description: errorMsg,
				}, rollbackErr)
			}
			errorMsg := fmt.Sprintf("Failed on inserting execution record: %s", record.ExecutionId)
			logger.Debug(errorMsg, log.Error(err))
			return errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.APPEND_EXECUTION.Code,
				Message:     errors2.APPEND_EXECUTION.Message,
				Description: errorMsg,
			}, err)
		}
	}

	if err := tx.Commit(); err != nil {
		errorMsg := "Failed on committing transaction while appending execution records."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.APPEND_EXECUTION.Code,
			Message:     errors2.APPEND_EXECUTION.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Debug(fmt.Sprintf("Appended %d execution record(s).", len(records)))
	return nil
}

// ListExecutionsForDao fetches the DAO's execution records, oldest first.
func (s *PostgresExecutionStore) ListExecutionsForDao(daoId, category string, since int64,
	limit int) ([]model.RuleExecution, error) {

	query := `SELECT execution_id, rule_id, dao_id, category, executed_at, context, result, reason, decision, action_results
		FROM rule_executions WHERE dao_id = $1`
	args := []interface{}{daoId}
	argIndex := 2
	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, category)
		argIndex++
	}
	if since > 0 {
		query += fmt.Sprintf(" AND executed_at >= $%d", argIndex)
		args = append(args, since)
		argIndex++
	}
	query += " ORDER BY executed_at ASC, execution_id ASC"
	if limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}
	return s.queryExecutions(query, args...)
}

// ListExecutionsForRule fetches one rule's execution records, oldest first.
func (s *PostgresExecutionStore) ListExecutionsForRule(ruleId string, since int64,
	limit int) ([]model.RuleExecution, error) {

	query := `SELECT execution_id, rule_id, dao_id, category, executed_at, context, result, reason, decision, action_results
		FROM rule_executions WHERE rule_id = $1`
	args := []interface{}{ruleId}
	if since > 0 {
		query += " AND executed_at >= $2"
		args = append(args, since)
	}
	query += " ORDER BY executed_at ASC, execution_id ASC"
	if limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}
	return s.queryExecutions(query, args...)
}

func (s *PostgresExecutionStore) queryExecutions(query string, args ...interface{}) ([]model.RuleExecution, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get database client for fetching execution records."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_EXECUTIONS.Code,
			Message:     errors2.FETCH_EXECUTIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to fetch execution records."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_EXECUTIONS.Code,
			Message:     errors2.FETCH_EXECUTIONS.Message,
			Description: errorMsg,
		}, err)
	}

	records := []model.RuleExecution{}
	for _, row := range results {
		var record model.RuleExecution
		record.ExecutionId, _ = row["execution_id"].(string)
		record.RuleId, _ = row["rule_id"].(string)
		record.DaoId, _ = row["dao_id"].(string)
		record.Category, _ = row["category"].(string)
		record.Result, _ = row["result"].(string)
		record.Reason, _ = row["reason"].(string)
		record.Decision, _ = row["decision"].(string)
		if executedAt, ok := row["executed_at"].(int64); ok {
			record.ExecutedAt = executedAt
		}

		var rawContext []byte
		switch v := row["context"].(type) {
		case []byte:
			rawContext = v
		case string:
			rawContext = []byte(v)
		}
		if len(rawContext) > 0 {
			if err := json.Unmarshal(rawContext, &record.Context); err != nil {
				errorMsg := fmt.Sprintf("Failed to parse stored context for execution record: %s",
					record.ExecutionId)
				logger.Debug(errorMsg, log.Error(err))
				return nil, errors2.NewServerError(errors2.ErrorMessage{
					Code:        errors2.UNMARSHAL_JSON.Code,
					Message:     errors2.UNMARSHAL_JSON.Message,
					Description: errorMsg,
				}, err)
			}
		}

		var rawResults []byte
		switch v := row["action_results"].(type) {
		case []byte:
			rawResults = v
		case string:
			rawResults = []byte(v)
		}
		if len(rawResults) > 0 {
			if err := json.Unmarshal(rawResults, &record.ActionResults); err != nil {
				errorMsg := fmt.Sprintf("Failed to parse stored action results for execution record: %s",
					record.ExecutionId)
				logger.Debug(errorMsg, log.Error(err))
				return nil, errors2.NewServerError(errors2.ErrorMessage{
					Code:        errors2.UNMARSHAL_JSON.Code,
					Message:     errors2.UNMARSHAL_JSON.Message,
					Description: errorMsg,
				}, err)
			}
		}
		records = append(records, record)
	}
	return records, nil
}
