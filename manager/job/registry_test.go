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

package job

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_GetLayers(t *testing.T) {
	tests := []struct {
		name    string
		handler func(requests *int32) http.HandlerFunc
		expect  func(t *testing.T, digests []string, header http.Header, err error, requests int32)
	}{
		{
			name: "retry server errors",
			handler: func(requests *int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					if atomic.AddInt32(requests, 1) < registryMaxAttempts {
						w.WriteHeader(http.StatusBadGateway)
						return
					}

					w.Header().Set("Content-Type", "application/vnd.docker.distribution.manifest.v2+json")
					fmt.Fprint(w, mockManifest)
				}
			},
			expect: func(t *testing.T, digests []string, header http.Header, err error, requests int32) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([]string{mockConfigDigest, mockLayerDigest1, mockLayerDigest2}, digests)
				assert.Equal("bar", header.Get("foo"))
				assert.EqualValues(registryMaxAttempts, requests)
			},
		},
		{
			name: "client errors are not retried",
			handler: func(requests *int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					atomic.AddInt32(requests, 1)
					w.WriteHeader(http.StatusNotFound)
				}
			},
			expect: func(t *testing.T, digests []string, header http.Header, err error, requests int32) {
				assert := assert.New(t)
				assert.EqualError(err, "request registry 404")
				assert.EqualValues(1, requests)
			},
		},
		{
			name: "manifest is invalid",
			handler: func(requests *int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					atomic.AddInt32(requests, 1)
					fmt.Fprint(w, "foo")
				}
			},
			expect: func(t *testing.T, digests []string, header http.Header, err error, requests int32) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Empty(digests)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var requests int32
			server := httptest.NewServer(tc.handler(&requests))
			defer server.Close()

			r := newRegistry(5*time.Second, nil)
			digests, header, err := r.getLayers(context.Background(), server.URL+"/v2/library/alpine/manifests/latest", http.Header{"Foo": {"bar"}})
			tc.expect(t, digests, header, err, atomic.LoadInt32(&requests))
		})
	}
}
