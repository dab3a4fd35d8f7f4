package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New создаёт логгер: format "json" - production-конфигурация zap,
// иначе - консольный вывод для разработки. Неизвестный уровень игнорируется.
// Если output задан, вывод направляется в него.
func New(level, format string, output zapcore.WriteSyncer) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if level != "" {
		var zapLevel zapcore.Level
		if err := zapLevel.UnmarshalText([]byte(strings.ToLower(level))); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(zapLevel)
		}
	}

	var opts []zap.Option
	if output != nil {
		var encoder zapcore.Encoder
		if format == "json" {
			encoder = zapcore.NewJSONEncoder(cfg.EncoderConfig)
		} else {
			encoder = zapcore.NewConsoleEncoder(cfg.EncoderConfig)
		}
		// Ядро заменяется, опции конфигурации (caller, stacktrace) сохраняются
		opts = append(opts, zap.WrapCore(func(zapcore.Core) zapcore.Core {
			return zapcore.NewCore(encoder, output, cfg.Level)
		}))
	}
	return cfg.Build(opts...)
}
