package app

import (
	"errors"
	"net"

	"github.com/inkpost/internal/config"
	"github.com/inkpost/internal/provider"
	"github.com/inkpost/internal/router"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, container *provider.Container) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if container == nil {
		container = provider.NewContainer(cfg)
	}

	engine := router.SetupRouter(cfg, container)
	httpService := NewHTTPService(listenAddr(cfg), engine)
	return NewRunner(httpService), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Container)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start",
		"addr", listenAddr(opts.Config),
		"base_path", opts.Config.Server.BasePath,
		"mode", opts.Config.Server.Mode,
	)
	return RunWithOptions(runner, opts)
}

func listenAddr(cfg *config.Config) string {
	return net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
}
