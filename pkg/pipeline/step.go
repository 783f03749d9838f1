package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-identicon/pkg/pipeline/model"
)

type oneToOneFn[I, O any] func(context.Context, I) (O, error)

func sequentialOneToOneFn[I, O any](ctx context.Context, pipe *Pipeline, goIdx int, input *model.Step[I], output *model.Step[O], fn oneToOneFn[I, O]) error {
	for {
		start := time.Now()
		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "go routine %d", goIdx)
		case in, ok := <-input.Output:
			if !ok {
				return nil
			}
			startFn := time.Now()
			out, err := fn(ctx, in)
			if err != nil {
				return errors.Wrapf(err, "go routine %d", goIdx)
			}
			endFn := time.Since(startFn)

			// we check the context again to make sure all go routines currently running
			// stop to add new elements to the pipeline
			select {
			case <-ctx.Done():
				return errors.Wrapf(ctx.Err(), "go routine %d", goIdx)
			case output.Output <- out:
				err = pipe.onStepOutput(input.Details, output.Details, time.Since(start)-endFn, endFn)
				if err != nil {
					return err
				}
			}
		}
	}
}

func concurrentOneToOneFn[I, O any](ctx context.Context, pipe *Pipeline, input *model.Step[I], output *model.Step[O], fn oneToOneFn[I, O]) error {
	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(output.Details.Concurrent)
	// each consumer stops as soon as an error happens
	for goIdx := 0; goIdx < output.Details.Concurrent; goIdx++ {
		localGoIdx := goIdx
		errGrp.Go(func() error {
			return sequentialOneToOneFn(dCtx, pipe, localGoIdx, input, output, fn)
		})
	}

	return errGrp.Wait()
}

func oneToOne[I, O any](ctx context.Context, pipe *Pipeline, input *model.Step[I], output *model.Step[O], fn oneToOneFn[I, O]) error {
	if output.Details.Concurrent <= 1 {
		return sequentialOneToOneFn(ctx, pipe, 0, input, output, fn)
	}

	return concurrentOneToOneFn(ctx, pipe, input, output, fn)
}

func prepareStep[I, O any](pipe *Pipeline, name string, input *model.Step[I], opts ...StepOption[O]) (*model.Step[O], error) {
	step := &model.Step[O]{
		Output: make(chan O),
		Details: &model.StepInfo{
			Type:       model.NormalStepType,
			Name:       name,
			Concurrent: 1,
		},
	}
	for _, opt := range opts {
		opt(step)
	}
	if step.Details.Concurrent < 1 {
		step.Details.Concurrent = 1
	}

	for _, opt := range pipe.opts {
		err := opt.PrepareStep(input.Details, step.Details)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run before step function")
		}
	}

	return step, nil
}

// AddStepOneToOne adds a step calling fn for every element of input. The name of a step must be unique in the
// pipeline.
func AddStepOneToOne[I, O any](pipe *Pipeline, name string, input *model.Step[I], fn func(context.Context, I) (O, error), opts ...StepOption[O]) (*model.Step[O], error) {
	if pipe == nil {
		return nil, ErrPipelineMustBeSet
	}
	if input == nil {
		return nil, ErrInputMustBeSet
	}

	step, err := prepareStep(pipe, name, input, opts...)
	if err != nil {
		return nil, err
	}

	errC := make(chan error, 1)
	go func() {
		defer func() {
			close(step.Output)
			close(errC)
		}()
		err := oneToOne(pipe.ctx, pipe, input, step, fn)
		if err != nil {
			errC <- err
		}
	}()
	pipe.errcList.add(newErrorChan(name, errC))

	return step, nil
}
