// Copyright 2025 PingCAP, Inc.
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

// Package logutil exposes the process-wide structured logger.
package logutil

import (
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// InitLogger initializes the global logger with the given level, e.g. "info",
// "debug". It is expected to be called once at process start; library code
// just calls BgLogger.
func InitLogger(level string) error {
	logger, props, err := log.InitLogger(&log.Config{Level: level})
	if err != nil {
		return err
	}
	log.ReplaceGlobals(logger, props)
	return nil
}

// BgLogger returns the default global logger for background usage.
func BgLogger() *zap.Logger {
	return log.L()
}
