package ui

import (
	"errors"
	"log"

	"github.com/bz888/processtext/internal/logger"
	"github.com/bz888/processtext/internal/submit"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var app *tview.Application

var (
	debugConsole *tview.TextView
	displayText  *tview.TextView
	userInput    *tview.InputField
	page         *Page
	localLogger  *logger.Logger
	debugShown   bool
)

func Init() {
	app = tview.NewApplication()
	app.EnablePaste(true)
	app.EnableMouse(true)

	debugConsole = initDebugConsole()

	displayText = initDisplayText()
	userInput = initUserInput()

	page = NewPage(func(f func()) {
		app.QueueUpdateDraw(f)
	})
	page.AddInput(submit.InputFieldID, userInput)
	page.AddText(submit.OutputElementID, displayText)
}

// initDisplayText keeps dynamic colours off so processed text is shown
// verbatim, brackets included.
func initDisplayText() *tview.TextView {
	textView := tview.NewTextView().
		SetDynamicColors(false).
		SetRegions(false).
		SetWordWrap(true)

	textView.SetTitle(submit.OutputElementID).SetBorder(true)
	textView.SetScrollable(true)
	return textView
}

func initUserInput() *tview.InputField {
	field := tview.NewInputField().
		SetLabel("Text: ").
		SetFieldBackgroundColor(tcell.ColorDefault)
	field.SetTitle(submit.InputFieldID).SetBorder(true)
	return field
}

func initDebugConsole() *tview.TextView {
	console := tview.NewTextView().
		SetChangedFunc(func() {
			app.Draw()
		}).
		SetDynamicColors(true).
		SetRegions(true).
		SetWordWrap(true)

	console.SetTitle("Debugger").SetBorder(true)
	console.ScrollToEnd()
	return console
}

// Run lays out the page and blocks until the application stops. Enter in the
// input field submits its text; the field stays editable meanwhile.
func Run(dev bool, submitter *submit.TextSubmitter) error {
	localLogger = logger.NewLogger("views")

	userInput.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			submitter.Submit()
		case tcell.KeyEscape:
			app.SetFocus(displayText)
		}
	})

	displayText.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyEscape:
			app.SetFocus(userInput)
			return nil
		}
		return event
	})

	subFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(displayText, 0, 1, false).
		AddItem(userInput, 3, 0, true)
	mainFlex := tview.NewFlex().
		AddItem(subFlex, 0, 2, true)

	if dev {
		mainFlex.AddItem(debugConsole, 0, 1, false)
		debugShown = true
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlD:
			toggleDebugConsole(mainFlex)
			return nil
		case tcell.KeyCtrlQ:
			quitApp()
			return nil
		}
		return event
	})

	localLogger.Info("Page ready, submitting to", submit.InputFieldID, "->", submit.OutputElementID)

	return app.SetRoot(mainFlex, true).SetFocus(userInput).Run()
}

// toggleDebugConsole runs on the event loop, so it edits the layout directly.
func toggleDebugConsole(mainFlex *tview.Flex) {
	if debugShown {
		mainFlex.RemoveItem(debugConsole)
	} else {
		mainFlex.AddItem(debugConsole, 0, 1, false)
	}
	debugShown = !debugShown
	localLogger.Info("Debug console shown:", debugShown)
}

// quitApp does not wait for in-flight submissions; they have no timeout.
func quitApp() {
	localLogger.Info("Shutting down")
	localLogger.Close()
	app.Stop()
	log.Println("Shutting down gracefully.")
}

func GetDebugConsole() (*tview.TextView, error) {
	if debugConsole == nil {
		return nil, errors.New("debug console not initialized")
	}
	return debugConsole, nil
}

func GetPage() (*Page, error) {
	if page == nil {
		return nil, errors.New("page not initialized")
	}
	return page, nil
}
