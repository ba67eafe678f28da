package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the diagnostic logger. When verbose is off every message is
// discarded. The returned func flushes buffered entries.
func New(verbose bool, w io.Writer) (logr.Logger, func()) {
	if !verbose {
		return logr.Discard(), func() {}
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	// logr V(n) maps onto zap level -n; V(2) is the most detailed level in use
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapcore.Level(-2)),
	)
	zl := zap.New(core, zap.AddCaller(), zap.Development())

	return zapr.NewLogger(zl).WithName("sorting-tool"), func() { _ = zl.Sync() }
}
