package app

import (
	"os"
	"time"

	"github.com/inkpost/internal/config"
	"github.com/inkpost/internal/logger"
	"github.com/inkpost/internal/provider"

	"go.uber.org/zap"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	Container       *provider.Container // 为空时使用全局数据库连接构建
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
}

// normalizeOptions 补齐默认参数
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return opts
}
