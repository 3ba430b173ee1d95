// Copyright 2025 ColQuery, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colquery/argminmax/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := config.NewConfig()
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.GreaterOrEqual(t, cfg.Performance.ScanConcurrency, 1)
	require.Equal(t, 1024, cfg.Performance.MaxChunkSize)
	require.NoError(t, cfg.Valid())
}

func TestConfigLoad(t *testing.T) {
	confFile := filepath.Join(t.TempDir(), "argminmax.toml")
	require.NoError(t, os.WriteFile(confFile, []byte(`
[log]
level = "debug"
format = "json"

[performance]
scan-concurrency = 16
`), 0o644))

	cfg := config.NewConfig()
	require.NoError(t, cfg.Load(confFile))
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 16, cfg.Performance.ScanConcurrency)
	// Untouched sections keep their defaults.
	require.Equal(t, 1024, cfg.Performance.MaxChunkSize)
}

func TestConfigLoadRejectsInvalid(t *testing.T) {
	confFile := filepath.Join(t.TempDir(), "argminmax.toml")
	require.NoError(t, os.WriteFile(confFile, []byte(`
[performance]
scan-concurrency = 0
`), 0o644))

	cfg := config.NewConfig()
	require.Error(t, cfg.Load(confFile))

	cfg = config.NewConfig()
	require.Error(t, cfg.Load(filepath.Join(t.TempDir(), "missing.toml")))
}
