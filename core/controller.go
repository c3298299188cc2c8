// Package core wires the application services together: the Fyne UI
// service, the catalog service, and process-level startup checks.
package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"

	"railroute/core/catalog"
	"railroute/core/services"
	"railroute/internal/constants"
	"railroute/internal/dialogs"
	"railroute/internal/process"
)

// AppController is the main structure encapsulating application-wide state.
type AppController struct {
	Application fyne.App
	MainWindow  fyne.Window

	UIService *services.UIService
	Catalog   *catalog.Service

	ExecDir string
}

// NewAppController creates the controller and all services. offersFixture
// is the embedded catalog fixture; a file named offers.jsonc next to the
// executable overrides it.
func NewAppController(offersFixture []byte) (*AppController, error) {
	ac := &AppController{}

	execPath, err := os.Executable()
	if err != nil {
		log.Printf("NewAppController: cannot detect executable path: %v", err)
		ac.ExecDir = "."
	} else {
		ac.ExecDir = filepath.Dir(execPath)
	}

	ac.UIService = services.NewUIService()
	ac.Application = ac.UIService.Application

	fixture := catalog.ReadFixture(ac.ExecDir, offersFixture)
	svc, err := catalog.NewService(fixture, constants.CatalogLoadDelay)
	if err != nil {
		return nil, err
	}
	ac.Catalog = svc

	return ac, nil
}

// GracefulExit quits the application.
func (ac *AppController) GracefulExit() {
	log.Println("GracefulExit: shutting down")
	ac.UIService.QuitApplication()
}

// CheckIfAlreadyRunningUtil warns when another instance of the app is
// already running. Advisory only; the new instance keeps running.
func CheckIfAlreadyRunningUtil(ac *AppController) {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("CheckIfAlreadyRunning: cannot detect executable path: %v", err)
		return
	}
	execName := strings.ToLower(filepath.Base(execPath))
	currentPID := os.Getpid()

	processes, err := process.List()
	if err != nil {
		log.Printf("CheckIfAlreadyRunning: error listing processes: %v", err)
		return
	}

	for _, p := range processes {
		if p.PID == currentPID {
			continue
		}
		if strings.EqualFold(p.Name, execName) {
			dialogs.ShowInfo(ac.MainWindow, "Information",
				"The application is already running. Use the existing instance or close it before starting a new one.")
			return
		}
	}
}
