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

package logger

import (
	"path"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	CoreLogFileName = "core.log"
	GinLogFileName  = "gin.log"
	JobLogFileName  = "job.log"
)

const (
	encodeTimeFormat = "2006-01-02 15:04:05.000"
)

// LogRotateConfig controls rotation of file loggers.
type LogRotateConfig struct {
	MaxSize    int
	MaxAge     int
	MaxBackups int
}

type logInitMeta struct {
	fileName             string
	setSugaredLoggerFunc func(*zap.SugaredLogger)
}

// InitManager initializes the loggers of the preheat manager,
// console output is used when console is true, otherwise rotated files under dir.
func InitManager(verbose, console bool, dir string, rotateConfig LogRotateConfig) error {
	if console {
		return createConsoleLogger(verbose)
	}

	logDir := filepath.Join(dir, "manager")

	var meta = []logInitMeta{
		{
			fileName:             CoreLogFileName,
			setSugaredLoggerFunc: SetCoreLogger,
		},
		{
			fileName:             GinLogFileName,
			setSugaredLoggerFunc: SetGinLogger,
		},
		{
			fileName:             JobLogFileName,
			setSugaredLoggerFunc: SetJobLogger,
		},
	}

	return createFileLogger(verbose, meta, logDir, rotateConfig)
}

func createConsoleLogger(verbose bool) error {
	levels = nil
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := config.Build(zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	sugar := log.Sugar()
	SetCoreLogger(sugar)
	SetGinLogger(sugar)
	SetJobLogger(sugar)
	levels = append(levels, config.Level)
	return nil
}

func createFileLogger(verbose bool, meta []logInitMeta, logDir string, rotateConfig LogRotateConfig) error {
	levels = nil

	for _, m := range meta {
		log, level := CreateLogger(path.Join(logDir, m.fileName), verbose, rotateConfig)
		m.setSugaredLoggerFunc(log.Sugar())
		levels = append(levels, level)
	}

	return nil
}

// CreateLogger creates a json logger writing into a rotated file.
func CreateLogger(filePath string, verbose bool, rotateConfig LogRotateConfig) (*zap.Logger, zap.AtomicLevel) {
	syncer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    rotateConfig.MaxSize,
		MaxAge:     rotateConfig.MaxAge,
		MaxBackups: rotateConfig.MaxBackups,
		LocalTime:  true,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(encodeTimeFormat)

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		syncer,
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.WarnLevel), zap.AddCallerSkip(1)), level
}
