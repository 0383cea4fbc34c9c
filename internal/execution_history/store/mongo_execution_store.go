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
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mtaadao/dao-rule-engine/internal/execution_history/model"
	"github.com/mtaadao/dao-rule-engine/internal/system/config"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
)

const executionsCollection = "rule_executions"

var (
	mongoClient     *mongo.Client
	mongoClientOnce sync.Once
	mongoClientErr  error
)

// MongoExecutionStore persists execution records in a MongoDB collection.
// Selected via the history.backend deployment setting for installations that
// keep audit trails separate from the relational store.
type MongoExecutionStore struct {
	collection *mongo.Collection
}

// NewMongoExecutionStore connects to the configured MongoDB deployment. The
// client is shared process-wide.
func NewMongoExecutionStore() (*MongoExecutionStore, error) {

	historyConfig := config.GetEngineRuntime().Config.History

	mongoClientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		mongoClient, mongoClientErr = mongo.Connect(ctx, options.Client().ApplyURI(historyConfig.MongoURI))
	})
	if mongoClientErr != nil {
		logger := log.GetLogger()
		errorMsg := "Failed to connect to the execution history MongoDB deployment."
		logger.Debug(errorMsg, log.Error(mongoClientErr))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.HISTORY_CLIENT_INIT.Code,
			Message:     errors2.HISTORY_CLIENT_INIT.Message,
			Description: errorMsg,
		}, mongoClientErr)
	}

	collection := mongoClient.Database(historyConfig.MongoDatabase).Collection(executionsCollection)
	return &MongoExecutionStore{collection: collection}, nil
}

// AppendExecutions inserts the records of one evaluation in bulk.
func (s *MongoExecutionStore) AppendExecutions(records []model.RuleExecution) error {

	if len(records) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(records))
	for _, record := range records {
		docs = append(docs, record)
	}

	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		logger := log.GetLogger()
		errorMsg := "Failed to insert execution records."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.APPEND_EXECUTION.Code,
			Message:     errors2.APPEND_EXECUTION.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// ListExecutionsForDao fetches the DAO's execution records, oldest first.
func (s *MongoExecutionStore) ListExecutionsForDao(daoId, category string, since int64,
	limit int) ([]model.RuleExecution, error) {

	filter := bson.M{"dao_id": daoId}
	if category != "" {
		filter["category"] = category
	}
	if since > 0 {
		filter["executed_at"] = bson.M{"$gte": since}
	}
	return s.findExecutions(filter, limit)
}

// ListExecutionsForRule fetches one rule's execution records, oldest first.
func (s *MongoExecutionStore) ListExecutionsForRule(ruleId string, since int64,
	limit int) ([]model.RuleExecution, error) {

	filter := bson.M{"rule_id": ruleId}
	if since > 0 {
		filter["executed_at"] = bson.M{"$gte": since}
	}
	return s.findExecutions(filter, limit)
}

func (s *MongoExecutionStore) findExecutions(filter bson.M, limit int) ([]model.RuleExecution, error) {

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "executed_at", Value: 1}, {Key: "execution_id", Value: 1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := s.collection.Find(ctx, filter, findOptions)
	if err != nil {
		logger := log.GetLogger()
		errorMsg := "Failed to fetch execution records."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_EXECUTIONS.Code,
			Message:     errors2.FETCH_EXECUTIONS.Message,
			Description: errorMsg,
		}, err)
	}
	defer cursor.Close(ctx)

	records := []model.RuleExecution{}
	if err := cursor.All(ctx, &records); err != nil {
		logger := log.GetLogger()
		errorMsg := "Failed to decode execution records."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_EXECUTIONS.Code,
			Message:     errors2.FETCH_EXECUTIONS.Message,
			Description: errorMsg,
		}, err)
	}
	return records, nil
}
