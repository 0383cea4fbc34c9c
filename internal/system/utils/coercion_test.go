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

package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceToNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected float64
		ok       bool
	}{
		{"float64", float64(12.5), 12.5, true},
		{"int", 42, 42, true},
		{"int64", int64(-7), -7, true},
		{"numeric string", "100.25", 100.25, true},
		{"json number", json.Number("3"), 3, true},
		{"non numeric string", "plenty", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
		{"list", []interface{}{1}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := CoerceToNumber(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, result)
			}
		})
	}
}

func TestCoerceToString(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
		ok       bool
	}{
		{"string", "hello", "hello", true},
		{"bool", true, "true", true},
		{"float64 integral", float64(5), "5", true},
		{"int", 12, "12", true},
		{"map not coerced", map[string]interface{}{}, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := CoerceToString(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, result)
			}
		})
	}
}

func TestLooseEquals(t *testing.T) {
	assert.True(t, LooseEquals(float64(5), 5))
	assert.True(t, LooseEquals("5", float64(5)))
	assert.True(t, LooseEquals("pending", "pending"))
	assert.False(t, LooseEquals("pending", "active"))
	assert.False(t, LooseEquals(float64(5), "pending"))
	assert.True(t, LooseEquals(
		[]interface{}{"a", "b"},
		[]interface{}{"a", "b"},
	))
}
