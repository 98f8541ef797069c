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

package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

const mockPEM = "-----BEGIN CERTIFICATE-----\nfoo\n-----END CERTIFICATE-----"

func TestPEMContent(t *testing.T) {
	assert := assert.New(t)

	p, err := NewPEMContent("  " + mockPEM + "\n")
	assert.NoError(err)
	assert.Equal(PEMContent(mockPEM), p)

	path := filepath.Join(t.TempDir(), "ca.crt")
	assert.NoError(os.WriteFile(path, []byte(mockPEM+"\n"), 0600))
	p, err = NewPEMContent(path)
	assert.NoError(err)
	assert.Equal(PEMContent(mockPEM), p)

	_, err = NewPEMContent(filepath.Join(t.TempDir(), "foo"))
	assert.Error(err)

	p, err = NewPEMContent("")
	assert.NoError(err)
	assert.Empty(p)

	var v struct {
		CACert PEMContent `yaml:"caCert"`
	}
	assert.NoError(yaml.Unmarshal([]byte("caCert: "+path), &v))
	assert.Equal(PEMContent(mockPEM), v.CACert)
}
