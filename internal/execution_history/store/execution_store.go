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
	"github.com/mtaadao/dao-rule-engine/internal/execution_history/model"
)

// ExecutionStore is the append-only persistence contract for rule execution
// records. There are no update or delete operations; history is immutable
// once written.
type ExecutionStore interface {
	// AppendExecutions persists the records produced by one evaluation.
	AppendExecutions(records []model.RuleExecution) error

	// ListExecutionsForDao returns records of the DAO, oldest first.
	// Category and since (unix millis) are optional filters; limit <= 0
	// means no limit.
	ListExecutionsForDao(daoId, category string, since int64, limit int) ([]model.RuleExecution, error)

	// ListExecutionsForRule returns records of one rule, oldest first.
	ListExecutionsForRule(ruleId string, since int64, limit int) ([]model.RuleExecution, error)
}
