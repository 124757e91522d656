package cmd

import (
	"log"

	"github.com/bz888/processtext/internal/api"
	"github.com/bz888/processtext/internal/config"
	"github.com/bz888/processtext/internal/logger"
	"github.com/bz888/processtext/internal/submit"
	"github.com/bz888/processtext/internal/ui"
)

func init() {
	config.Init()
}

func Execute() {
	cfg, err := config.Load(config.Args)
	if err != nil {
		log.Fatal(err)
	}

	ui.Init()
	debugConsole, err := ui.GetDebugConsole()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.InitLogger(cfg.Dev, cfg.LogPath, debugConsole); err != nil {
		log.Fatal(err)
	}
	localLogger := logger.NewLogger("main")

	client, err := api.NewClientFromURL(cfg.ServerURL)
	if err != nil {
		log.Fatal(err)
	}
	localLogger.Info("Submitting to", client.GetProcessTextURL())

	page, err := ui.GetPage()
	if err != nil {
		log.Fatal(err)
	}
	submitter := submit.NewTextSubmitter(page, client, logger.NewLogger("submit"))

	if err := ui.Run(cfg.Dev, submitter); err != nil {
		localLogger.Close()
		log.Fatal(err)
	}
	localLogger.Close()
}
