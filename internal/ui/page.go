package ui

import (
	"sync"

	"github.com/bz888/processtext/internal/submit"
	"github.com/rivo/tview"
)

// Updater runs f on the UI goroutine, e.g. Application.QueueUpdateDraw.
type Updater func(f func())

// Page registers the layout's elements by identifier, like a DOM document.
type Page struct {
	mu     sync.RWMutex
	inputs map[string]*tview.InputField
	texts  map[string]*tview.TextView
	update Updater
}

// NewPage returns an empty page. A nil update applies text changes directly.
func NewPage(update Updater) *Page {
	if update == nil {
		update = func(f func()) { f() }
	}
	return &Page{
		inputs: make(map[string]*tview.InputField),
		texts:  make(map[string]*tview.TextView),
		update: update,
	}
}

func (p *Page) AddInput(id string, field *tview.InputField) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inputs[id] = field
}

func (p *Page) AddText(id string, view *tview.TextView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.texts[id] = view
}

func (p *Page) Remove(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inputs, id)
	delete(p.texts, id)
}

func (p *Page) InputByID(id string) submit.Input {
	p.mu.RLock()
	defer p.mu.RUnlock()
	field, ok := p.inputs[id]
	if !ok {
		return nil
	}
	return &inputElement{field: field}
}

func (p *Page) ElementByID(id string) submit.Element {
	p.mu.RLock()
	defer p.mu.RUnlock()
	view, ok := p.texts[id]
	if !ok {
		return nil
	}
	return &textElement{view: view, update: p.update}
}

type inputElement struct {
	field *tview.InputField
}

func (e *inputElement) Value() string {
	return e.field.GetText()
}

type textElement struct {
	view   *tview.TextView
	update Updater
}

// SetText replaces the whole content. The view must not have dynamic colours
// or regions enabled so the text is shown literally.
func (e *textElement) SetText(text string) {
	e.update(func() {
		e.view.SetText(text)
	})
}

func (e *textElement) Text() string {
	return e.view.GetText(false)
}
