/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"d7y.io/preheat/manager/config"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)
	cfg := &config.MetricsConfig{
		Addr: "localhost:8000",
	}

	server := New(cfg)
	assert.Equal(cfg.Addr, server.Addr)

	PreheatCount.WithLabelValues("file").Inc()
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(http.StatusOK, w.Code)
	assert.True(strings.Contains(w.Body.String(), "dragonfly_manager_preheat_total"))
	assert.True(strings.Contains(w.Body.String(), "dragonfly_manager_version"))
}
