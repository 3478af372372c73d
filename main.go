// @title StudyQuest 后端 API
// @version 1.0
// @description StudyQuest 游戏化学习记录服务：经验与等级、角色进化、金币商店、待办和课表。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"
	"path/filepath"

	"studyquest_backend/internal/app"
	"studyquest_backend/internal/config"
	"studyquest_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	watch := flag.Bool("watch", true, "监听配置文件变更并热更新")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	configPath := ""
	if *watch {
		configPath = filepath.Join(*configDir, "config.yaml")
	}

	application := app.NewApp(cfg, configPath)
	defer logger.Log.Sync()

	application.Run()
}
