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

package service

import (
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mtaadao/dao-rule-engine/internal/system/constants"
	"github.com/mtaadao/dao-rule-engine/internal/system/errors"
	"github.com/mtaadao/dao-rule-engine/internal/system/log"
)

func TestMain(m *testing.M) {
	_ = log.Init("ERROR")
	os.Exit(m.Run())
}

func TestListTemplates_FullCatalog(t *testing.T) {
	templates, err := GetTemplateService().ListTemplates("")
	require.NoError(t, err)
	assert.Len(t, templates, 9)
}

func TestListTemplates_CategoryFilter(t *testing.T) {
	templates, err := GetTemplateService().ListTemplates(constants.CategoryFinancial)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	for _, tmpl := range templates {
		assert.Equal(t, constants.CategoryFinancial, tmpl.Category)
	}
}

func TestListTemplates_UnknownCategoryRejected(t *testing.T) {
	_, err := GetTemplateService().ListTemplates("lottery")
	require.Error(t, err)

	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, errors.INVALID_CATEGORY.Code, clientErr.ErrorMessage.Code)
}

func TestListTemplates_StableOrder(t *testing.T) {
	svc := GetTemplateService()
	first, err := svc.ListTemplates("")
	require.NoError(t, err)
	second, err := svc.ListTemplates("")
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].TemplateId, second[i].TemplateId)
	}
}

func TestGetTemplate_Found(t *testing.T) {
	tmpl, err := GetTemplateService().GetTemplate("fixed-withdrawal-day")
	require.NoError(t, err)
	assert.Equal(t, "Fixed Withdrawal Day", tmpl.Name)
	assert.Equal(t, constants.CategoryWithdrawal, tmpl.Category)
	require.Len(t, tmpl.Config.Conditions, 1)
	assert.Equal(t, "dayOfWeek", tmpl.Config.Conditions[0].Field)
}

func TestGetTemplate_NotFound(t *testing.T) {
	_, err := GetTemplateService().GetTemplate("no-such-template")
	require.Error(t, err)

	clientErr, ok := err.(*errors.ClientError)
	require.True(t, ok, "expected a ClientError")
	assert.Equal(t, errors.TEMPLATE_NOT_FOUND.Code, clientErr.ErrorMessage.Code)
	assert.Equal(t, http.StatusNotFound, clientErr.StatusCode)
}

func TestGetTemplate_ReturnsIsolatedCopy(t *testing.T) {
	svc := GetTemplateService()
	tmpl, err := svc.GetTemplate("proposal-cool-down")
	require.NoError(t, err)

	// Mutate the returned copy, then fetch again; the catalog must be intact.
	tmpl.Config.Conditions[0].Value = float64(999)
	tmpl.Config.Actions[0].Payload["reason"] = "tampered"

	fresh, err := svc.GetTemplate("proposal-cool-down")
	require.NoError(t, err)
	assert.Equal(t, float64(24), fresh.Config.Conditions[0].Value)
	assert.NotEqual(t, "tampered", fresh.Config.Actions[0].Payload["reason"])
}

func TestInstantiateDefault_CopiesAreIndependent(t *testing.T) {
	svc := GetTemplateService()
	first, err := svc.InstantiateDefault("minimum-contribution")
	require.NoError(t, err)
	second, err := svc.InstantiateDefault("minimum-contribution")
	require.NoError(t, err)

	first.Conditions[0].Value = float64(100)
	assert.Nil(t, second.Conditions[0].Value)
}
