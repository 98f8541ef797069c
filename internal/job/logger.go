/*
 *     Copyright 2020 The Dragonfly Authors
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
	logger "d7y.io/preheat/internal/dflog"
)

// MachineryLogger routes machinery logs to the job logger.
type MachineryLogger struct{}

func (m *MachineryLogger) Print(args ...any) {
	logger.JobLogger.Info(args...)
}

func (m *MachineryLogger) Printf(format string, args ...any) {
	logger.JobLogger.Infof(format, args...)
}

func (m *MachineryLogger) Println(args ...any) {
	logger.JobLogger.Info(args...)
}

func (m *MachineryLogger) Fatal(args ...any) {
	logger.JobLogger.Fatal(args...)
}

func (m *MachineryLogger) Fatalf(format string, args ...any) {
	logger.JobLogger.Fatalf(format, args...)
}

func (m *MachineryLogger) Fatalln(args ...any) {
	logger.JobLogger.Fatal(args...)
}

func (m *MachineryLogger) Panic(args ...any) {
	logger.JobLogger.Panic(args...)
}

func (m *MachineryLogger) Panicf(format string, args ...any) {
	logger.JobLogger.Panicf(format, args...)
}

func (m *MachineryLogger) Panicln(args ...any) {
	logger.JobLogger.Panic(args...)
}
