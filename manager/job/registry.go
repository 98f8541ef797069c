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
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/distribution/distribution/v3"
	"github.com/distribution/distribution/v3/manifest/schema2"
	"github.com/go-http-utils/headers"
	"go.opentelemetry.io/otel/trace"

	"d7y.io/preheat/manager/config"
	"d7y.io/preheat/pkg/retry"
)

const (
	// registryInitBackoff is the initial backoff in seconds of manifest requests.
	registryInitBackoff = 0.1

	// registryMaxBackoff is the maximum backoff in seconds of manifest requests.
	registryMaxBackoff = 1

	// registryMaxAttempts is the maximum attempts of manifest requests.
	registryMaxAttempts = 3
)

// registry resolves image manifests for preheat.
type registry struct {
	client *http.Client
}

func newRegistry(timeout time.Duration, rootCAs *x509.CertPool) *registry {
	return &registry{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{RootCAs: rootCAs},
			},
		},
	}
}

// getLayers returns the digests referenced by the manifest, config first, and
// the header authorized to fetch them.
func (r *registry) getLayers(ctx context.Context, url string, header http.Header) ([]string, http.Header, error) {
	ctx, span := tracer.Start(ctx, config.SpanGetLayers, trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	header = header.Clone()
	if header == nil {
		header = http.Header{}
	}

	resp, err := r.getManifests(ctx, url, header)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		token, err := r.getAuthToken(ctx, resp.Header)
		if err != nil {
			return nil, nil, err
		}

		header.Set(headers.Authorization, fmt.Sprintf("Bearer %s", token))
		resp, err = r.getManifests(ctx, url, header)
		if err != nil {
			return nil, nil, err
		}
		defer resp.Body.Close()
	}

	if resp.StatusCode/100 != 2 {
		return nil, nil, fmt.Errorf("request registry %d", resp.StatusCode)
	}

	digests, err := parseLayers(resp)
	if err != nil {
		return nil, nil, err
	}

	return digests, header, nil
}

// getManifests gets manifests of image, transport errors and server errors are retried.
func (r *registry) getManifests(ctx context.Context, url string, header http.Header) (*http.Response, error) {
	res, _, err := retry.Run(ctx, registryInitBackoff, registryMaxBackoff, registryMaxAttempts, func() (any, bool, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, true, err
		}

		req.Header = header.Clone()
		req.Header.Set(headers.Accept, schema2.MediaTypeManifest)
		resp, err := r.client.Do(req)
		if err != nil {
			return nil, ctx.Err() != nil, err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			return nil, false, fmt.Errorf("request registry %d", resp.StatusCode)
		}

		return resp, false, nil
	})
	if err != nil {
		return nil, err
	}

	return res.(*http.Response), nil
}

// parseLayers parses layers of image.
func parseLayers(resp *http.Response) ([]string, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	manifest, _, err := distribution.UnmarshalManifest(schema2.MediaTypeManifest, body)
	if err != nil {
		return nil, err
	}

	var digests []string
	for _, v := range manifest.References() {
		digests = append(digests, v.Digest.String())
	}

	if len(digests) == 0 {
		return nil, errors.New("manifest has no layers")
	}

	return digests, nil
}

// getAuthToken gets auth token from registry.
func (r *registry) getAuthToken(ctx context.Context, header http.Header) (string, error) {
	ctx, span := tracer.Start(ctx, config.SpanAuthWithRegistry, trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	authURL := authURL(header.Values(headers.WWWAuthenticate))
	if len(authURL) == 0 {
		return "", errors.New("authURL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, authURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("request registry auth %d", resp.StatusCode)
	}

	var result struct {
		Token       string `json:"token"`
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Token != "" {
		return result.Token, nil
	}

	if result.AccessToken != "" {
		return result.AccessToken, nil
	}

	return "", errors.New("token is empty")
}

// authURL gets auth url from www-authenticate header.
func authURL(wwwAuth []string) string {
	// Bearer realm="<auth-service-url>",service="<service>",scope="repository:<name>:pull"
	if len(wwwAuth) == 0 {
		return ""
	}

	challenge := strings.ReplaceAll(wwwAuth[0], "\"", "")
	challenge = strings.TrimSpace(strings.TrimPrefix(challenge, "Bearer"))

	fields := strings.Split(challenge, ",")
	realm := strings.SplitN(fields[0], "=", 2)
	if len(realm) != 2 || realm[0] != "realm" || realm[1] == "" {
		return ""
	}

	if len(fields) == 1 {
		return realm[1]
	}

	return fmt.Sprintf("%s?%s", realm[1], strings.Join(fields[1:], "&"))
}
