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

package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/mtaadao/dao-rule-engine/internal/system/config"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	"github.com/mtaadao/dao-rule-engine/internal/system/database/provider"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
	"github.com/mtaadao/dao-rule-engine/internal/system/managers"
)

const configFile = "repository/conf/deployment.yaml"
const schemaFile = "dbscripts/postgres.sql"

func main() {
	engineHome := getEngineHome()

	envFiles, err := filepath.Glob("config/*.env")
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	engineConfig, err := config.LoadConfig(engineHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.InitializeEngineRuntime(engineHome, engineConfig); err != nil {
		stdlog.Fatalf("Failed to initialize engine runtime: %v", err)
	}

	if err := log.Init(engineConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	if engineConfig.DataSource.InitSchema {
		initDatabaseSchema(engineHome)
	}

	serverAddr := fmt.Sprintf("%s:%d", engineConfig.Addr.Host, engineConfig.Addr.Port)
	mux := enableCORS(initMultiplexer(), engineConfig.Auth.CORSAllowedOrigins)

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener.", log.Error(err))
	}
	logger.Info(fmt.Sprintf("DAO rule engine started on: %s", serverAddr))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests.", log.Error(err))
	}
}

// initDatabaseSchema applies the schema script against the configured
// datasource. Intended for fresh installations and containerized setups.
func initDatabaseSchema(engineHome string) {

	logger := log.GetLogger()
	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		logger.Fatal("Failed to get database client for schema initialization.", log.Error(err))
	}
	defer dbClient.Close()

	if err := dbClient.InitDatabase(engineHome, schemaFile); err != nil {
		logger.Fatal("Failed to initialize database schema.", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services.", log.Error(err))
	}
	return mux
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {

	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowed["*"] || allowed[origin]) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getEngineHome() string {

	projectHomeFlag := flag.String("engineHome", "", "Path to the rule engine home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		return *projectHomeFlag
	}
	dir, err := os.Getwd()
	if err != nil {
		stdlog.Fatalf("Failed to get current working directory: %v", err)
	}
	return dir
}
