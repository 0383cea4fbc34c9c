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

package errors

const errorPrefix = "DRE-"

var (
	// Server error codes

	ADD_RULE = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while adding rule.",
	}

	FETCH_RULES = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching rule(s).",
	}

	UPDATE_RULE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while updating rule.",
	}

	DELETE_RULE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while deleting rule.",
	}

	STORE_UNAVAILABLE = ErrorMessage{
		Code:        errorPrefix + "15005",
		Message:     "Rule store unavailable.",
		Description: "The rule store could not be reached. No decision was made; treat as not approved.",
	}

	APPEND_EXECUTION = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while appending rule execution record.",
	}

	FETCH_EXECUTIONS = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while fetching rule execution records.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Unable to initialize database client.",
	}

	MARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while marshalling JSON.",
	}

	UNMARSHAL_JSON = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while un-marshalling JSON.",
	}

	HISTORY_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Unable to initialize execution history client.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Parsing token failed.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Authorization failure. Authorization information was invalid or missing from your request.",
	}

	RULE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Rule not found.",
		Description: "No rule found for this DAO for the provided rule_id.",
	}

	TEMPLATE_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Rule template not found.",
		Description: "No rule template registered for the provided template_id.",
	}

	RULE_VALIDATION = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Rule validation failed.",
	}

	INVALID_CATEGORY = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "Invalid rule category.",
	}

	INVALID_CONDITION = ErrorMessage{
		Code:    errorPrefix + "11007",
		Message: "Invalid rule condition.",
	}

	INVALID_ACTION = ErrorMessage{
		Code:    errorPrefix + "11008",
		Message: "Invalid rule action.",
	}

	INVALID_EVALUATION_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11009",
		Message: "Invalid evaluation request.",
	}

	FORBIDDEN = ErrorMessage{
		Code:        errorPrefix + "11010",
		Message:     "Forbidden",
		Description: "You do not have permission to access this resource.",
	}
)
