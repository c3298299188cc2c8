package main

import (
	_ "embed"
	"log"

	"fyne.io/fyne/v2"

	"railroute/core"
	"railroute/internal/constants"
	"railroute/internal/debuglog"
	"railroute/ui"
)

// Embedded train catalog. A file named offers.jsonc next to the
// executable overrides it without a rebuild.
//
//go:embed assets/offers.jsonc
var offersFixture []byte

// main is the application's entry point. It creates the AppController
// and hands the window content to the UI layer.
func main() {
	controller, err := core.NewAppController(offersFixture)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	window := controller.Application.NewWindow(constants.AppName)
	window.Resize(fyne.NewSize(900, 680))
	window.CenterOnScreen()
	controller.MainWindow = window
	controller.UIService.MainWindow = window

	core.CheckIfAlreadyRunningUtil(controller)

	app := ui.NewApp(controller)
	window.SetContent(app.Content())
	window.SetMaster()

	debuglog.InfoLog("%s %s starting", constants.AppName, constants.AppVersion)
	window.ShowAndRun()

	controller.GracefulExit()
}
