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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactContext_SensitiveKeysFingerprinted(t *testing.T) {
	redacted := RedactContext(map[string]interface{}{
		"amount":  float64(1500),
		"api_key": "sk-very-secret",
		"Token":   "bearer-abc",
	})

	assert.Equal(t, float64(1500), redacted["amount"])
	for _, key := range []string{"api_key", "Token"} {
		value, ok := redacted[key].(string)
		require.True(t, ok, "key %s", key)
		assert.True(t, strings.HasPrefix(value, "sha256:"), "key %s", key)
		assert.NotContains(t, value, "secret")
		assert.NotContains(t, value, "bearer")
	}
}

func TestRedactContext_NestedMapsAndLists(t *testing.T) {
	redacted := RedactContext(map[string]interface{}{
		"member": map[string]interface{}{
			"name":     "Amina",
			"password": "hunter2",
		},
		"credentials": []interface{}{
			map[string]interface{}{"secret": "s3cr3t"},
		},
	})

	member := redacted["member"].(map[string]interface{})
	assert.Equal(t, "Amina", member["name"])
	assert.True(t, strings.HasPrefix(member["password"].(string), "sha256:"))

	item := redacted["credentials"].([]interface{})[0].(map[string]interface{})
	assert.True(t, strings.HasPrefix(item["secret"].(string), "sha256:"))
}

func TestRedactContext_SameCredentialSameFingerprint(t *testing.T) {
	first := RedactContext(map[string]interface{}{"token": "abc"})
	second := RedactContext(map[string]interface{}{"token": "abc"})
	third := RedactContext(map[string]interface{}{"token": "xyz"})

	assert.Equal(t, first["token"], second["token"])
	assert.NotEqual(t, first["token"], third["token"])
}

func TestRedactContext_DoesNotMutateInput(t *testing.T) {
	original := map[string]interface{}{"password": "hunter2"}
	_ = RedactContext(original)
	assert.Equal(t, "hunter2", original["password"])
}

func TestRedactContext_Nil(t *testing.T) {
	assert.Nil(t, RedactContext(nil))
}
