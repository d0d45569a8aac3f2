package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fontdeck/fontdeck/internal/api"
	"github.com/fontdeck/fontdeck/internal/catalog"
	"github.com/fontdeck/fontdeck/internal/config"
	"github.com/fontdeck/fontdeck/internal/ui"
)

func main() {
	envCfg, err := config.LoadEnv()
	if err != nil {
		log.Printf("Failed to parse environment config: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID("com.fontdeck.app")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("FontDeck")
	myWindow.Resize(fyne.NewSize(900, 700))

	settings := config.NewSettings(myApp, envCfg)
	client := api.NewClient(settings.GetAPIBaseURL(), settings.GetRequestTimeout())
	store := catalog.NewStore(client)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, store, settings)

	// Show and run
	myWindow.ShowAndRun()
}
