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

package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Context keys whose values must never be stored in plaintext.
var sensitiveKeys = map[string]bool{
	"password":    true,
	"token":       true,
	"secret":      true,
	"api_key":     true,
	"private_key": true,
}

// RedactContext returns a copy of the evaluation context with sensitive
// values replaced by a sha256 fingerprint. The fingerprint still allows
// matching records produced by the same credential without recovering it.
func RedactContext(context map[string]interface{}) map[string]interface{} {

	if context == nil {
		return nil
	}
	out := make(map[string]interface{}, len(context))
	for key, value := range context {
		out[key] = redactValue(key, value)
	}
	return out
}

func redactValue(key string, value interface{}) interface{} {

	if sensitiveKeys[strings.ToLower(key)] {
		return fingerprint(value)
	}
	switch v := value.(type) {
	case map[string]interface{}:
		nested := make(map[string]interface{}, len(v))
		for k, item := range v {
			nested[k] = redactValue(k, item)
		}
		return nested
	case []interface{}:
		list := make([]interface{}, len(v))
		for i, item := range v {
			list[i] = redactValue("", item)
		}
		return list
	default:
		return value
	}
}

func fingerprint(value interface{}) string {

	hash := sha256.Sum256([]byte(fmt.Sprintf("%v", value)))
	return "sha256:" + hex.EncodeToString(hash[:])
}
