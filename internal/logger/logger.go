package logger

import (
	"log"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is replaced by Init; tests swap in zaptest.NewLogger(t).
var Logger = zap.NewNop()

func utcTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02 15:04:05.000 MST"))
}

// Init initializes Logger.
// isDevelopment: flag for choosing log format (console/JSON) and level.
func Init(isDevelopment bool) {
	var cfg zap.Config
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = utcTimeEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder

	if isDevelopment {
		cfg = zap.NewDevelopmentConfig() // ConsoleEncoder, DebugLevel
	} else {
		cfg = zap.NewProductionConfig() // JSONEncoder, InfoLevel
	}
	cfg.EncoderConfig = encoderCfg
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	built, err := cfg.Build(zap.AddCaller())
	if err != nil {
		// Use standard log for this panic as our logger failed
		log.Panicf("failed to initialize zap logger: %v", err)
	}

	Logger = built
	Logger.Info("Logger initialized",
		zap.Bool("developmentMode", isDevelopment),
		zap.String("logLevel", cfg.Level.Level().String()),
		zap.Strings("outputPaths", cfg.OutputPaths),
	)
}
