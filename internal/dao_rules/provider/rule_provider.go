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
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/service"
	"github.com/mtaadao/dao-rule-engine/internal/dao_rules/store"
)

// RuleProviderInterface defines the interface for the rule provider.
type RuleProviderInterface interface {
	GetRuleService() service.RuleServiceInterface
}

// RuleProvider is the default implementation of the RuleProviderInterface.
type RuleProvider struct{}

// NewRuleProvider creates a new instance of RuleProvider.
func NewRuleProvider() RuleProviderInterface {

	return &RuleProvider{}
}

// GetRuleService returns the rule service backed by the configured datasource.
func (rp *RuleProvider) GetRuleService() service.RuleServiceInterface {

	return service.GetRuleService(store.NewPostgresRuleStore())
}
