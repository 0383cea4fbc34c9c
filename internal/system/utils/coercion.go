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
	"fmt"
	"reflect"
	"strconv"
)

// CoerceToNumber attempts to coerce a context or condition value to float64.
// JSON decoding yields float64 for all numbers, but contexts assembled in Go
// code may carry native int or string values as well.
func CoerceToNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// CoerceToString renders a scalar value as a string for contains checks.
// Composite values are not coerced.
func CoerceToString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// LooseEquals compares two values, treating numerically equal values as equal
// regardless of their Go type. Rule values arrive via JSON (float64) while
// context values may be native ints.
func LooseEquals(a, b interface{}) bool {
	if af, ok := CoerceToNumber(a); ok {
		if bf, ok := CoerceToNumber(b); ok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}
