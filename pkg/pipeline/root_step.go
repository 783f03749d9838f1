package pipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/askiada/go-identicon/pkg/pipeline/model"
)

func prepareRootStep[O any](pipe *Pipeline, step *model.Step[O], opts ...StepOption[O]) error {
	for _, opt := range opts {
		opt(step)
	}
	for _, opt := range pipe.opts {
		err := opt.PrepareStep(model.StartStep.Details, step.Details)
		if err != nil {
			return errors.Wrap(err, "unable to run before step function")
		}
	}

	return nil
}

// AddRootStep adds a step feeding the pipeline. stepFn must stop sending when ctx is done. The output is closed
// when stepFn returns.
func AddRootStep[O any](pipe *Pipeline, name string, stepFn func(ctx context.Context, rootChan chan<- O) error, opts ...StepOption[O]) (*model.Step[O], error) {
	if pipe == nil {
		return nil, ErrPipelineMustBeSet
	}

	step := &model.Step[O]{
		Details: &model.StepInfo{
			Type:       model.RootStepType,
			Name:       name,
			Concurrent: 1,
		},
		Output: make(chan O),
	}
	err := prepareRootStep(pipe, step, opts...)
	if err != nil {
		return nil, err
	}

	errC := make(chan error, 1)
	go func() {
		defer func() {
			close(step.Output)
			close(errC)
		}()
		err := stepFn(pipe.ctx, step.Output)
		if err != nil {
			errC <- err
		}
	}()
	pipe.errcList.add(newErrorChan(name, errC))

	return step, nil
}

// SliceRoot returns a root step function sending every element of in.
func SliceRoot[O any](in []O) func(ctx context.Context, rootChan chan<- O) error {
	return func(ctx context.Context, rootChan chan<- O) error {
		for _, elem := range in {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- elem:
			}
		}

		return nil
	}
}
