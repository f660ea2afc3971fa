package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/bouquet-updater/internal/config"
	"github.com/ytget/bouquet-updater/internal/download"
	"github.com/ytget/bouquet-updater/internal/session"
	"github.com/ytget/bouquet-updater/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.bouquet-updater"
	AppName = "Bouquet Updater"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "TOML config file")
	flag.Parse()

	// Log version information
	fmt.Printf("Bouquet Updater v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	// Stored preferences win over the config file, the environment wins over both
	settings := config.NewSettings(myApp)
	loadConfig := func() (*config.Config, error) {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		if err := settings.Resolve(cfg); err != nil {
			return nil, err
		}
		log.Printf("Live directory %s, listing %s", cfg.Paths.LiveDir, cfg.Remote.ListingURL)
		return cfg, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	downloadSvc := download.NewService(nil)
	rootUI := ui.NewRootUI(myWindow, myApp, settings, downloadSvc)
	s := session.New(session.NewServices(cfg, nil, downloadSvc, nil), cfg.IndexFile, rootUI)
	rootUI.AttachSession(context.Background(), s, func() (session.Services, error) {
		cfg, err := loadConfig()
		if err != nil {
			return session.Services{}, err
		}
		return session.NewServices(cfg, nil, downloadSvc, nil), nil
	})

	rootUI.Start()

	// Show and run
	myWindow.ShowAndRun()
}
