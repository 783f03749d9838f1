package pipeline_test

import (
	"context"
	"testing"

	"github.com/askiada/go-identicon/pkg/pipeline/model"
)

func createInputChan(t *testing.T, total int) chan int {
	t.Helper()

	inputChan := make(chan int)

	go func() {
		defer close(inputChan)

		for i := range total {
			inputChan <- i
		}
	}()

	return inputChan
}

func createInputChanWithCancel(t *testing.T, total int, offset int, cancel context.CancelFunc) chan int {
	t.Helper()

	inputChan := make(chan int)

	go func() {
		defer close(inputChan)

		for i := range total {
			if i == offset {
				cancel()
			}

			inputChan <- i
		}
	}()

	return inputChan
}

func createInputStep(t *testing.T, name string, output chan int) *model.Step[int] {
	t.Helper()

	return &model.Step[int]{
		Output:  output,
		Details: &model.StepInfo{Type: model.RootStepType, Name: name},
	}
}

func processOutputChan(t *testing.T, output <-chan int) []int {
	t.Helper()

	res := []int{}

	for out := range output {
		res = append(res, out)
	}

	return res
}
