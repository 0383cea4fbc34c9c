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

package managers

import (
	"net/http"
	"strings"

	"github.com/mtaadao/dao-rule-engine/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	daoRulesService := services.NewDaoRulesService()
	templatesService := services.NewRuleTemplatesService()
	executionsService := services.NewRuleExecutionsService()

	// Single dispatcher for all services under the API base path.
	sm.mux.HandleFunc(apiBasePath+"/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, apiBasePath)
		path = strings.TrimSuffix(path, "/")

		switch {
		case strings.HasPrefix(path, "/daos"):
			daoRulesService.Route(w, r)
		case strings.HasPrefix(path, "/rule-templates"):
			templatesService.Route(w, r)
		case strings.HasPrefix(path, "/rules"):
			executionsService.Route(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	return nil
}
