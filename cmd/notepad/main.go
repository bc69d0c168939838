package main

import (
	"log"
	"runtime"

	"notepad/internal/config"
	"notepad/internal/controllers"
	"notepad/internal/logger"
	"notepad/internal/models"
	"notepad/internal/services"
	"notepad/internal/shutdown"
	"notepad/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

// Application wires the fyne window to the editor controller
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

func main() {
	application, err := NewApplication(config.FromEnvironment())
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication creates the window, services and controller and connects them
func NewApplication(cfg config.Config) (*Application, error) {
	appLogger := cfg.NewLogger()

	app.SetMetadata(fyne.AppMetadata{
		ID:      config.AppID,
		Name:    config.AppName,
		Version: config.AppVersion,
	})
	fyneApp := app.NewWithID(config.AppID)

	window := fyneApp.NewWindow(config.AppName)
	window.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	fontDirs := append(services.DefaultFontDirs(), cfg.FontDirs...)

	fileService := services.NewFileService(appLogger)
	clipboardService := services.NewClipboardService(services.SystemClipboard{}, appLogger)
	fontService := services.NewFontService(fontDirs, appLogger)
	state := models.NewEditorState(cfg.DefaultFontSize)

	mainController := controllers.NewMainController(fileService, clipboardService, fontService, state, appLogger)
	mainView := views.NewMainView(window)

	mainView.SetCommandHandler(mainController.Dispatch)
	mainView.SetTextChangedHandler(mainController.TextChanged)
	mainController.SetView(mainView)

	shutdownManager := shutdown.NewManager(appLogger, shutdown.DefaultTimeout)
	shutdownManager.Register("window", shutdown.Func(func() {
		fyne.Do(fyneApp.Quit)
	}))
	mainController.SetQuitHandler(shutdownManager.Shutdown)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		controller: mainController,
		view:       mainView,
		shutdown:   shutdownManager,
	}

	application.setupWindowEvents()

	appLogger.Info("Application", "application initialized", map[string]interface{}{
		"version":    config.AppVersion,
		"go_version": runtime.Version(),
		"font_dirs":  len(fontDirs),
		"font":       state.Font.String(),
	})

	return application, nil
}

// Run shows the window and blocks in the fyne event loop
func (a *Application) Run() {
	a.shutdown.Listen()

	a.view.Show()
	a.view.FocusEditor()
	a.logger.Info("Application", "window displayed", nil)

	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
}

func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.shutdown.Shutdown()
	})
}
