package measure_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-identicon/pkg/pipeline"
	"github.com/askiada/go-identicon/pkg/pipeline/measure"
)

func TestDefaultMetric(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	mt := msr.AddMetric("step", 2)

	mt.AddDuration(10 * time.Millisecond)
	mt.AddDuration(30 * time.Millisecond)
	mt.AddTransportDuration("parent", 40*time.Millisecond)
	mt.AddTransportDuration("parent", 40*time.Millisecond)
	mt.SetTotalDuration(time.Second)

	assert.Equal(t, int64(2), mt.Count())
	assert.Equal(t, 20*time.Millisecond, mt.AVGDuration())
	assert.Equal(t, time.Second, mt.GetTotalDuration())

	// averages are not applied twice
	assert.Equal(t, 20*time.Millisecond, mt.AVGTransportDuration()["parent"].Elapsed)
	assert.Equal(t, 20*time.Millisecond, mt.AVGTransportDuration()["parent"].Elapsed)

	assert.Same(t, mt, msr.GetMetric("step"))
	assert.Nil(t, msr.GetMetric("unknown"))
}

func TestDefaultMetricEmpty(t *testing.T) {
	t.Parallel()

	mt := measure.NewDefaultMeasure().AddMetric("step", 0)
	assert.Zero(t, mt.AVGDuration())
	assert.Empty(t, mt.AVGTransportDuration())
}

func TestPipelineMeasure(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	pipe, err := pipeline.New(context.Background(), measure.PipelineMeasure(msr))
	require.NoError(t, err)

	root, err := pipeline.AddRootStep(pipe, "root", pipeline.SliceRoot([]int{1, 2, 3}))
	require.NoError(t, err)
	step, err := pipeline.AddStepOneToOne(pipe, "square", root, func(ctx context.Context, input int) (int, error) {
		return input * input, nil
	}, pipeline.StepConcurrency[int](2))
	require.NoError(t, err)
	err = pipeline.AddSink(pipe, "sink", step, func(ctx context.Context, input int) error {
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, pipe.Run())

	metrics := msr.AllMetrics()
	assert.Len(t, metrics, 5)
	assert.Equal(t, int64(3), metrics["square"].Count())
	assert.Contains(t, metrics["square"].AVGTransportDuration(), "root")
	assert.Equal(t, int64(3), metrics["sink"].Count())
	assert.Contains(t, metrics["sink"].AVGTransportDuration(), "square")
	assert.Positive(t, metrics["sink"].GetTotalDuration())
}
