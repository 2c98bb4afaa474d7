package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/inkpost/internal/app"
	"github.com/inkpost/internal/config"
	"github.com/inkpost/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiDim   = "\033[2m"
	ansiCyan  = "\033[36m"
)

func main() {
	printStartupBanner()

	// .env 文件可选
	_ = godotenv.Load()

	// 加载配置
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if config.IsWeakSecret(cfg.Security.SecretKey) {
		if cfg.Server.Mode == "release" {
			stdLog.Fatalf("SECRET_KEY 过弱或仍为默认值，请在生产环境中配置强随机密钥")
		}
		stdLog.Printf("警告: SECRET_KEY 过弱或仍为默认值，建议在生产环境中更换")
	}

	// 初始化数据库并迁移
	if err := app.InitDatabase(cfg); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + ansiBold + "inkpost blog api" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
