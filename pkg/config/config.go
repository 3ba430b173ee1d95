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

package config

import (
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
)

// Config contains configuration options.
type Config struct {
	Log         Log         `toml:"log" json:"log"`
	Performance Performance `toml:"performance" json:"performance"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format, one of json or text.
	Format string `toml:"format" json:"format"`
}

// Performance is the performance section of config.
type Performance struct {
	// ScanConcurrency is the number of parallel scan workers.
	ScanConcurrency int `toml:"scan-concurrency" json:"scan-concurrency"`
	// MaxChunkSize is the row capacity of one generated batch.
	MaxChunkSize int `toml:"max-chunk-size" json:"max-chunk-size"`
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Performance: Performance{
			ScanConcurrency: runtime.GOMAXPROCS(0),
			MaxChunkSize:    1024,
		},
	}
}

// Load loads config options from a toml file, on top of the defaults.
func (c *Config) Load(confFile string) error {
	_, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	return c.Valid()
}

// Valid checks whether the config is valid.
func (c *Config) Valid() error {
	if c.Performance.ScanConcurrency < 1 {
		return errors.Errorf("invalid scan-concurrency %d", c.Performance.ScanConcurrency)
	}
	if c.Performance.MaxChunkSize < 1 {
		return errors.Errorf("invalid max-chunk-size %d", c.Performance.MaxChunkSize)
	}
	return nil
}
