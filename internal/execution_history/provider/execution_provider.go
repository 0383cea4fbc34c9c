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

package provider

import (
	"github.com/mtaadao/dao-rule-engine/internal/execution_history/service"
	"github.com/mtaadao/dao-rule-engine/internal/execution_history/store"
	"github.com/mtaadao/dao-rule-engine/internal/system/config"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
)

// ExecutionProviderInterface defines the interface for the execution history provider.
type ExecutionProviderInterface interface {
	GetExecutionService() (service.ExecutionServiceInterface, error)
}

// ExecutionProvider is the default implementation of the ExecutionProviderInterface.
type ExecutionProvider struct{}

// NewExecutionProvider creates a new instance of ExecutionProvider.
func NewExecutionProvider() ExecutionProviderInterface {

	return &ExecutionProvider{}
}

// GetExecutionService returns the history service for the configured backend.
// Postgres is the default; MongoDB is selected with history.backend: mongo.
func (ep *ExecutionProvider) GetExecutionService() (service.ExecutionServiceInterface, error) {

	historyConfig := config.GetEngineRuntime().Config.History
	if historyConfig.Backend == constants.HistoryBackendMongo {
		mongoStore, err := store.NewMongoExecutionStore()
		if err != nil {
			return nil, err
		}
		return service.GetExecutionService(mongoStore), nil
	}
	return service.GetExecutionService(store.NewPostgresExecutionStore()), nil
}
