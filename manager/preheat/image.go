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

package preheat

import (
	"errors"
	"fmt"
	"regexp"
)

// accessURLPattern is the pattern of image manifest url.
var accessURLPattern = regexp.MustCompile("^(.*)://(.*)/v2/(.*)/manifests/(.*)")

// ImageReference is the registry location parsed from an image manifest url.
type ImageReference struct {
	Protocol  string
	Domain    string
	Name      string
	Reference string
}

// ParseImageURL parses url like https://<domain>/v2/<name>/manifests/<reference>.
func ParseImageURL(url string) (*ImageReference, error) {
	r := accessURLPattern.FindStringSubmatch(url)
	if len(r) != 5 {
		return nil, errors.New("parse access url failed")
	}

	if r[2] == "" || r[3] == "" || r[4] == "" {
		return nil, errors.New("access url requires domain, name and reference")
	}

	return &ImageReference{
		Protocol:  r[1],
		Domain:    r[2],
		Name:      r[3],
		Reference: r[4],
	}, nil
}

// LayerURL returns the blob url of the layer digest.
func (i *ImageReference) LayerURL(digest string) string {
	return fmt.Sprintf("%s://%s/v2/%s/blobs/%s", i.Protocol, i.Domain, i.Name, digest)
}
