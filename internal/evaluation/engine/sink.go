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

package engine

import (
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
)

// EffectSink receives the side effects matched rules request. The engine
// itself never performs domain I/O; deployments plug their treasury,
// membership and notification integrations in behind this interface.
type EffectSink interface {
	Approve(ctx EvaluationContext, payload map[string]interface{}) error
	Reject(ctx EvaluationContext, payload map[string]interface{}) error
	RequireApproval(ctx EvaluationContext, payload map[string]interface{}) error
	ApplyFee(ctx EvaluationContext, payload map[string]interface{}) error
	ApplyInterest(ctx EvaluationContext, payload map[string]interface{}) error
	Distribute(ctx EvaluationContext, payload map[string]interface{}) error
	Notify(ctx EvaluationContext, payload map[string]interface{}) error
	SetThreshold(ctx EvaluationContext, payload map[string]interface{}) error
}

// LoggingSink is the default EffectSink. It records every delegated effect
// as an audit event and succeeds unconditionally, which makes a bare
// deployment observable without any domain integrations wired in.
type LoggingSink struct{}

// NewLoggingSink returns the audit-only sink.
func NewLoggingSink() *LoggingSink {

	return &LoggingSink{}
}

func (ls *LoggingSink) Approve(ctx EvaluationContext, payload map[string]interface{}) error {

	return ls.record(log.ActionEffectApprove, ctx, payload)
}

func (ls *LoggingSink) Reject(ctx EvaluationContext, payload map[string]interface{}) error {

	return ls.record(log.ActionEffectReject, ctx, payload)
}

func (ls *LoggingSink) RequireApproval(ctx EvaluationContext, payload map[string]interface{}) error {

	return ls.record(log.ActionEffectRequireApproval, ctx, payload)
}

func (ls *LoggingSink) ApplyFee(ctx EvaluationContext, payload map[string]interface{}) error {

	return ls.record(log.ActionEffectApplyFee, ctx, payload)
}

func (ls *LoggingSink) ApplyInterest(ctx EvaluationContext, payload map[string]interface{}) error {

	return ls.record(log.ActionEffectApplyInterest, ctx, payload)
}

func (ls *LoggingSink) Distribute(ctx EvaluationContext, payload map[string]interface{}) error {

	return ls.record(log.ActionEffectDistribute, ctx, payload)
}

func (ls *LoggingSink) Notify(ctx EvaluationContext, payload map[string]interface{}) error {

	return ls.record(log.ActionEffectNotify, ctx, payload)
}

func (ls *LoggingSink) SetThreshold(ctx EvaluationContext, payload map[string]interface{}) error {

	return ls.record(log.ActionEffectSetThreshold, ctx, payload)
}

func (ls *LoggingSink) record(actionId string, ctx EvaluationContext, payload map[string]interface{}) error {

	log.GetLogger().Audit(log.AuditEvent{
		InitiatorID:   ctx.ActorId,
		InitiatorType: log.InitiatorTypeSystem,
		TargetID:      ctx.DaoId,
		TargetType:    log.TargetTypeDao,
		ActionID:      actionId,
		Data:          payload,
	})
	return nil
}
