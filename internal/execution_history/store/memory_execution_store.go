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
	"sort"
	"sync"

	"github.com/mtaadao/dao-rule-engine/internal/execution_history/model"
)

// MemoryExecutionStore is an in-memory ExecutionStore used in tests.
type MemoryExecutionStore struct {
	mu      sync.RWMutex
	records []model.RuleExecution
}

// NewMemoryExecutionStore returns an empty in-memory store.
func NewMemoryExecutionStore() *MemoryExecutionStore {

	return &MemoryExecutionStore{}
}

// AppendExecutions appends the records. The slice is copied so callers
// cannot mutate history afterwards.
func (s *MemoryExecutionStore) AppendExecutions(records []model.RuleExecution) error {

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return nil
}

// ListExecutionsForDao returns the DAO's records, oldest first.
func (s *MemoryExecutionStore) ListExecutionsForDao(daoId, category string, since int64,
	limit int) ([]model.RuleExecution, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.RuleExecution{}
	for _, record := range s.records {
		if record.DaoId != daoId {
			continue
		}
		if category != "" && record.Category != category {
			continue
		}
		if since > 0 && record.ExecutedAt < since {
			continue
		}
		out = append(out, record)
	}
	return sortAndLimit(out, limit), nil
}

// ListExecutionsForRule returns one rule's records, oldest first.
func (s *MemoryExecutionStore) ListExecutionsForRule(ruleId string, since int64,
	limit int) ([]model.RuleExecution, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.RuleExecution{}
	for _, record := range s.records {
		if record.RuleId != ruleId {
			continue
		}
		if since > 0 && record.ExecutedAt < since {
			continue
		}
		out = append(out, record)
	}
	return sortAndLimit(out, limit), nil
}

func sortAndLimit(records []model.RuleExecution, limit int) []model.RuleExecution {

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].ExecutedAt != records[j].ExecutedAt {
			return records[i].ExecutedAt < records[j].ExecutedAt
		}
		return records[i].ExecutionId < records[j].ExecutionId
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}
