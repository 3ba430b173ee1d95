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

package logutil

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

const (
	// DefaultLogLevel is the log level used before InitLogger runs.
	DefaultLogLevel = "info"
	// DefaultLogFormat is the default encoding of the log output.
	DefaultLogFormat = "text"
)

// InitLogger replaces the global loggers according to the given level and
// format. It is called once at process start; library code only ever pulls
// the configured logger through BgLogger.
func InitLogger(level, format string) error {
	cfg := &log.Config{
		Level:  level,
		Format: format,
	}
	lg, props, err := log.InitLogger(cfg)
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(lg, props)
	return nil
}

// BgLogger returns the global background logger.
func BgLogger() *zap.Logger {
	return log.L()
}
