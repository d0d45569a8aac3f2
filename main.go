package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fontdeck/fontdeck/internal/api"
	"github.com/fontdeck/fontdeck/internal/catalog"
	"github.com/fontdeck/fontdeck/internal/config"
	"github.com/fontdeck/fontdeck/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.fontdeck.app"
	AppName = "FontDeck"

	WindowWidth  = 900
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("FontDeck v%s starting...\n", version)

	envCfg, err := config.LoadEnv()
	if err != nil {
		log.Printf("Failed to parse environment config: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp, envCfg)
	client := api.NewClient(settings.GetAPIBaseURL(), settings.GetRequestTimeout())
	store := catalog.NewStore(client)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, store, settings)

	// Show and run
	myWindow.ShowAndRun()
}
