package pipeline_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-identicon/pkg/pipeline"
	"github.com/askiada/go-identicon/pkg/pipeline/model"
)

func TestAddStepOneToOneNilPipe(t *testing.T) {
	t.Parallel()

	_, err := pipeline.AddStepOneToOne(nil, "first step", nil, func(ctx context.Context, input int) (int, error) {
		return input, nil
	})
	require.ErrorIs(t, err, pipeline.ErrPipelineMustBeSet)
}

func TestAddStepOneToOneNilInput(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New(context.Background())
	require.NoError(t, err)
	_, err = pipeline.AddStepOneToOne(pipe, "first step", (*model.Step[int])(nil), func(ctx context.Context, input int) (int, error) {
		return input, nil
	})
	require.ErrorIs(t, err, pipeline.ErrInputMustBeSet)
}

func TestAddStepOneToOne(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		concurrent int
	}{
		"sequential":     {concurrent: 1},
		"sequential v2":  {concurrent: 0},
		"concurrent 2":   {concurrent: 2},
		"concurrent 100": {concurrent: 100},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pipe, err := pipeline.New(context.Background())
			require.NoError(t, err)
			input := createInputStep(t, "input", createInputChan(t, 10))
			outputChan, err := pipeline.AddStepOneToOne(pipe, "double", input, func(ctx context.Context, input int) (int, error) {
				return input * 2, nil
			}, pipeline.StepConcurrency[int](tc.concurrent))
			require.NoError(t, err)

			done := make(chan []int, 1)

			go func() {
				done <- processOutputChan(t, outputChan.Output)
			}()

			require.NoError(t, pipe.Run())
			assert.ElementsMatch(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}, <-done)
		})
	}
}

func TestAddStepOneToOneError(t *testing.T) {
	t.Parallel()

	for name, concurrent := range map[string]int{"sequential": 1, "concurrent": 4} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			pipe, err := pipeline.New(context.Background())
			require.NoError(t, err)
			input := createInputStep(t, "input", createInputChan(t, 10))
			outputChan, err := pipeline.AddStepOneToOne(pipe, "failing step", input, func(ctx context.Context, input int) (int, error) {
				if input == 5 {
					return 0, assert.AnError
				}

				return input, nil
			}, pipeline.StepConcurrency[int](concurrent))
			require.NoError(t, err)

			done := make(chan struct{})

			go func() {
				_ = processOutputChan(t, outputChan.Output)
				done <- struct{}{}
			}()

			err = pipe.Run()
			require.ErrorIs(t, err, assert.AnError)
			assert.Contains(t, err.Error(), "failing step")
			<-done
		})
	}
}

func TestAddStepOneToOneCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	pipe, err := pipeline.New(ctx)
	require.NoError(t, err)
	input := createInputStep(t, "input", createInputChanWithCancel(t, 10, 5, cancel))
	outputChan, err := pipeline.AddStepOneToOne(pipe, "first step", input, func(ctx context.Context, input int) (int, error) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
			return input, nil
		}
	})
	require.NoError(t, err)

	done := make(chan struct{})

	go func() {
		_ = processOutputChan(t, outputChan.Output)
		done <- struct{}{}
	}()

	err = pipe.Run()
	require.ErrorIs(t, err, context.Canceled)
	<-done
}

func TestAddSinkNilPipe(t *testing.T) {
	t.Parallel()

	err := pipeline.AddSink(nil, "sink", (*model.Step[int])(nil), func(ctx context.Context, input int) error {
		return nil
	})
	require.ErrorIs(t, err, pipeline.ErrPipelineMustBeSet)
}

func TestAddSinkNilInput(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New(context.Background())
	require.NoError(t, err)
	err = pipeline.AddSink(pipe, "sink", (*model.Step[int])(nil), func(ctx context.Context, input int) error {
		return nil
	})
	require.ErrorIs(t, err, pipeline.ErrInputMustBeSet)
}

func TestAddSink(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New(context.Background())
	require.NoError(t, err)

	root, err := pipeline.AddRootStep(pipe, "root", pipeline.SliceRoot([]int{1, 2, 3, 4}))
	require.NoError(t, err)

	var got []int

	err = pipeline.AddSink(pipe, "sink", root, func(ctx context.Context, input int) error {
		got = append(got, input)

		return nil
	})
	require.NoError(t, err)

	require.NoError(t, pipe.Run())
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestAddSinkError(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New(context.Background())
	require.NoError(t, err)

	root, err := pipeline.AddRootStep(pipe, "root", pipeline.SliceRoot([]int{1, 2, 3, 4}))
	require.NoError(t, err)

	err = pipeline.AddSink(pipe, "sink", root, func(ctx context.Context, input int) error {
		if input == 3 {
			return assert.AnError
		}

		return nil
	})
	require.NoError(t, err)

	err = pipe.Run()
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "sink")
}

func TestAddSplitterNilPipe(t *testing.T) {
	t.Parallel()

	_, err := pipeline.AddSplitter(nil, "splitter", (*model.Step[int])(nil), 5)
	require.ErrorIs(t, err, pipeline.ErrPipelineMustBeSet)
}

func TestAddSplitterNilInput(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New(context.Background())
	require.NoError(t, err)
	_, err = pipeline.AddSplitter(pipe, "splitter", (*model.Step[int])(nil), 5)
	require.ErrorIs(t, err, pipeline.ErrInputMustBeSet)
}

func TestAddSplitterZero(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New(context.Background())
	require.NoError(t, err)
	_, err = pipeline.AddSplitter(pipe, "splitter", createInputStep(t, "input", make(chan int)), 0)
	require.ErrorIs(t, err, pipeline.ErrSplitterTotal)
}

func TestAddSplitter(t *testing.T) {
	t.Parallel()

	pipe, err := pipeline.New(context.Background())
	require.NoError(t, err)

	root, err := pipeline.AddRootStep(pipe, "root", pipeline.SliceRoot([]int{0, 1, 2, 3, 4}))
	require.NoError(t, err)

	splitter, err := pipeline.AddSplitter(pipe, "splitter", root, 2, pipeline.SplitterBufferSize[int](3))
	require.NoError(t, err)
	assert.Equal(t, 2, splitter.Total)

	var (
		mu  sync.Mutex
		got = map[string][]int{}
	)

	for _, name := range []string{"sink 1", "sink 2"} {
		branch, ok := splitter.Get()
		require.True(t, ok)

		localName := name
		err = pipeline.AddSink(pipe, localName, branch, func(ctx context.Context, input int) error {
			mu.Lock()
			defer mu.Unlock()
			got[localName] = append(got[localName], input)

			return nil
		})
		require.NoError(t, err)
	}

	_, ok := splitter.Get()
	assert.False(t, ok)

	require.NoError(t, pipe.Run())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got["sink 1"])
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got["sink 2"])
}
