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

package authn

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mtaadao/dao-rule-engine/internal/system/config"
	errors2 "github.com/mtaadao/dao-rule-engine/internal/system/errors"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
)

var (
	expectedAudience = "dao-rule-engine"
)

// ValidateRequest checks the Authorization bearer token of the request and
// returns the actor id from its sub claim. Disabled auth (local development,
// tests) admits every request with an empty actor.
//
// For DAO-scoped endpoints daoId carries the DAO from the request path; the
// token must hold a matching dao_id claim so one DAO's token cannot manage
// another DAO's rules.
func ValidateRequest(r *http.Request, daoId string) (string, error) {

	authConfig := config.GetEngineRuntime().Config.Auth
	if !authConfig.Enabled {
		return "", nil
	}

	logger := log.GetLogger()
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		logger.Debug("Request carries no bearer token.")
		return "", unauthorizedError()
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(authConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		logger.Debug("Bearer token failed verification.", log.Error(err))
		return "", unauthorizedError()
	}

	if !validateClaims(daoId, claims) {
		return "", forbiddenError()
	}

	actorId, _ := claims["sub"].(string)
	return actorId, nil
}

// validateClaims ensures the token is unexpired, addressed to this service
// and scoped to the DAO being operated on.
func validateClaims(daoId string, claims jwt.MapClaims) bool {

	logger := log.GetLogger()

	expFloat, ok := claims["exp"].(float64)
	if !ok {
		logger.Debug("Token does not have a valid expiration time.")
		return false
	}
	if int64(expFloat) < time.Now().Unix() {
		logger.Debug("Token has expired.")
		return false
	}

	if !hasAudience(claims, expectedAudience) {
		logger.Debug("Token audience does not match expected audience.")
		return false
	}

	if daoId != "" {
		daoClaim, ok := claims["dao_id"].(string)
		if !ok || daoClaim != daoId {
			logger.Debug("Token dao_id claim does not match the requested DAO.",
				log.String("dao_id", daoId))
			return false
		}
	}
	return true
}

func hasAudience(claims jwt.MapClaims, expected string) bool {

	switch aud := claims["aud"].(type) {
	case string:
		return aud == expected
	case []interface{}:
		for _, a := range aud {
			if s, ok := a.(string); ok && s == expected {
				return true
			}
		}
	}
	return false
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: errors2.UN_AUTHORIZED.Description,
	}, http.StatusUnauthorized)
}

func forbiddenError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.FORBIDDEN.Code,
		Message:     errors2.FORBIDDEN.Message,
		Description: errors2.FORBIDDEN.Description,
	}, http.StatusForbidden)
}
