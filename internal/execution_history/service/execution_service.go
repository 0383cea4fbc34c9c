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
	"github.com/mtaadao/dao-rule-engine/internal/execution_history/model"
	"github.com/mtaadao/dao-rule-engine/internal/execution_history/store"
)

// ExecutionServiceInterface exposes the append-only execution history.
type ExecutionServiceInterface interface {
	AppendExecutions(records []model.RuleExecution) error
	GetDaoExecutions(daoId, category string, since int64, limit int) ([]model.RuleExecution, error)
	GetRuleExecutions(ruleId string, since int64, limit int) ([]model.RuleExecution, error)
}

// ExecutionService is the default implementation of the ExecutionServiceInterface.
type ExecutionService struct {
	executionStore store.ExecutionStore
}

// GetExecutionService creates the history service backed by the given store.
func GetExecutionService(executionStore store.ExecutionStore) ExecutionServiceInterface {

	return &ExecutionService{executionStore: executionStore}
}

// AppendExecutions stores the records produced by one evaluation.
func (es *ExecutionService) AppendExecutions(records []model.RuleExecution) error {

	return es.executionStore.AppendExecutions(records)
}

// GetDaoExecutions fetches the DAO's execution records, oldest first.
func (es *ExecutionService) GetDaoExecutions(daoId, category string, since int64,
	limit int) ([]model.RuleExecution, error) {

	return es.executionStore.ListExecutionsForDao(daoId, category, since, limit)
}

// GetRuleExecutions fetches one rule's execution records, oldest first.
func (es *ExecutionService) GetRuleExecutions(ruleId string, since int64,
	limit int) ([]model.RuleExecution, error) {

	return es.executionStore.ListExecutionsForRule(ruleId, since, limit)
}
