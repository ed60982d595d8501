package tmpfile // import "blitznote.com/src/tmpfile"

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Messages of the LogCreateClose side channel.
const (
	msgCreated  = "created temporary file"
	msgDeleting = "deleting temporary file"
	msgDetached = "detaching temporary file"
)

// stderrLogger is used if LogCreateClose is set but no Logger has been given.
var stderrLogger = sync.OnceValue(func() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), zapcore.DebugLevel)
	return zap.New(core).Named("tmpfile")
})
