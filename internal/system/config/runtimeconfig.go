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

package config

import "sync"

// EngineRuntime holds the runtime configuration for the rule engine server.
type EngineRuntime struct {
	EngineHome string `yaml:"engine_home"`
	Config     Config `yaml:"config"`
}

var (
	runtimeConfig *EngineRuntime
	once          sync.Once
)

// InitializeEngineRuntime initializes the EngineRuntime configuration.
func InitializeEngineRuntime(engineHome string, config *Config) error {

	once.Do(func() {
		runtimeConfig = &EngineRuntime{
			EngineHome: engineHome,
			Config:     *config,
		}
	})

	return nil
}

// GetEngineRuntime returns the EngineRuntime configuration.
func GetEngineRuntime() *EngineRuntime {

	if runtimeConfig == nil {
		panic("EngineRuntime is not initialized")
	}
	return runtimeConfig
}
