// Package completion fans a combined prompt out to the selected chat models
// and collects one independent result per model.
package completion

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"genaizone/internal/domain"
	"genaizone/internal/port"
)

// FanOut issues one completion per model. A failing model never affects the others.
type FanOut struct {
	completer   port.Completer
	concurrency int
}

// NewFanOut creates a FanOut. A concurrency below 2 runs models one after another.
func NewFanOut(completer port.Completer, concurrency int) *FanOut {
	if concurrency < 1 {
		concurrency = 1
	}
	return &FanOut{completer: completer, concurrency: concurrency}
}

// Run completes prompt against every model and returns the responses in the
// order the models were given. Failed models carry an "Error: ..." note.
func (f *FanOut) Run(ctx context.Context, prompt string, models []string, params port.GenerationParams) []domain.ModelResponse {
	responses := make([]domain.ModelResponse, len(models))

	var g errgroup.Group
	g.SetLimit(f.concurrency)
	for i, model := range models {
		g.Go(func() error {
			responses[i] = f.completeOne(ctx, prompt, model, params)
			return nil
		})
	}
	_ = g.Wait()

	return responses
}

func (f *FanOut) completeOne(ctx context.Context, prompt, model string, params port.GenerationParams) (resp domain.ModelResponse) {
	resp = domain.ModelResponse{ModelID: model, ModelName: domain.ModelName(model)}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("completion.FanOut: panic from model %s: %v", model, r)
			resp.Response = errorNote(fmt.Errorf("%v", r))
			resp.Failed = true
		}
	}()

	text, err := f.completer.Complete(ctx, prompt, model, params)
	if err != nil {
		log.Printf("completion.FanOut: error from model %s: %v", model, err)
		resp.Response = errorNote(err)
		resp.Failed = true
		return resp
	}
	resp.Response = text
	return resp
}

func errorNote(err error) string {
	return "Error: " + err.Error()
}
