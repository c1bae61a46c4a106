package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func gormConfig(logger *zerolog.Logger) *gorm.Config {
	return &gorm.Config{
		Logger:         newGormLogger(logger),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// gormLogWriter routes GORM output through warn level; zerolog's Printf logs
// at debug.
type gormLogWriter struct {
	logger *zerolog.Logger
}

func (writer gormLogWriter) Printf(format string, args ...interface{}) {
	writer.logger.Warn().Str("component", "gorm").Msgf(format, args...)
}

func newGormLogger(logger *zerolog.Logger) gormlogger.Interface {
	if logger == nil {
		return gormlogger.Discard
	}
	return gormlogger.New(gormLogWriter{logger: logger}, gormlogger.Config{
		SlowThreshold:             time.Second,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
