package submit

import (
	"context"
	"errors"
	"sync"

	"github.com/bz888/processtext/internal/api"
	"github.com/google/uuid"
)

const (
	// InputFieldID identifies the element holding the text to submit.
	InputFieldID = "userInputQuery"
	// OutputElementID identifies the element showing the processed text.
	OutputElementID = "displayText"
	// ErrorLabel prefixes every diagnostic entry for a failed submission.
	ErrorLabel = "Error:"
)

// ErrNoOutputElement is logged when a reply arrives and the page has no
// output element.
var ErrNoOutputElement = errors.New("output element " + OutputElementID + " not found")

// Input is a page element holding user entered text.
type Input interface {
	Value() string
}

// Element is a page element whose displayed text can be replaced.
type Element interface {
	SetText(text string)
}

// Document looks up page elements by identifier. Absent elements are nil.
type Document interface {
	InputByID(id string) Input
	ElementByID(id string) Element
}

// TextProcessor performs the request/response exchange with the server.
type TextProcessor interface {
	ProcessText(ctx context.Context, req *api.ProcessTextRequest) (*api.ProcessTextResponse, error)
}

// Logger is the diagnostic channel.
type Logger interface {
	Info(v ...interface{})
	Error(v ...interface{})
}

// TextSubmitter sends the input field's text to the server and shows the
// processed result in the output element.
type TextSubmitter struct {
	doc    Document
	client TextProcessor
	logger Logger
	wg     sync.WaitGroup
}

// NewTextSubmitter returns a submitter for the elements of doc.
func NewTextSubmitter(doc Document, client TextProcessor, logger Logger) *TextSubmitter {
	return &TextSubmitter{
		doc:    doc,
		client: client,
		logger: logger,
	}
}

// Submit reads the input field now and returns without waiting for the
// server. Each call is an independent request; whichever response arrives
// last is what the output element shows. A missing input field panics.
func (s *TextSubmitter) Submit() {
	text := s.doc.InputByID(InputFieldID).Value()
	id := uuid.NewString()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.process(id, text)
	}()
}

// Wait blocks until every dispatched submission has finished.
func (s *TextSubmitter) Wait() {
	s.wg.Wait()
}

func (s *TextSubmitter) process(id string, text string) {
	s.logger.Info("submission", id, "dispatched")

	resp, err := s.client.ProcessText(context.Background(), &api.ProcessTextRequest{Text: text})
	if err != nil {
		s.logger.Error(ErrorLabel, err)
		return
	}

	output := s.doc.ElementByID(OutputElementID)
	if output == nil {
		s.logger.Error(ErrorLabel, ErrNoOutputElement)
		return
	}
	output.SetText(resp.ProcessedText)
	s.logger.Info("submission", id, "completed")
}
