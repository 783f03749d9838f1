package cli

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/askiada/go-identicon/internal/config"
	"github.com/askiada/go-identicon/pkg/identicon"
	"github.com/askiada/go-identicon/pkg/pipeline"
	"github.com/askiada/go-identicon/pkg/pipeline/drawer"
	"github.com/askiada/go-identicon/pkg/pipeline/measure"
	"github.com/askiada/go-identicon/pkg/pipeline/model"
	"github.com/askiada/go-identicon/pkg/storage"
)

// Result summarises a generation.
type Result struct {
	Written int64
}

type generation struct {
	cfg      config.Config
	writer   *storage.DirWriter
	manifest *storage.Manifest
	fileName func(string) string
	written  atomic.Int64
}

// fileNamer returns the naming function selected by cfg.
func fileNamer(cfg config.Config) func(string) string {
	if cfg.RawNames {
		return storage.RawFileName
	}

	return storage.FileName
}

func newGeneration(cfg config.Config) *generation {
	gen := &generation{
		cfg:      cfg,
		writer:   storage.NewDirWriter(cfg.OutDir),
		fileName: fileNamer(cfg),
	}
	if cfg.ManifestFile != "" {
		gen.manifest = storage.NewManifest()
	}

	return gen
}

func (g *generation) options(msr measure.Measure) []model.PipelineOption {
	opts := []model.PipelineOption{}
	if msr != nil {
		opts = append(opts, measure.PipelineMeasure(msr))
	}
	if g.cfg.GraphFile != "" {
		opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(), msr, g.cfg.GraphFile))
	}

	return opts
}

func (g *generation) persist(ctx context.Context, img identicon.Image) error {
	name := g.fileName(img.Input)

	err := g.writer.Write(ctx, name, img.PNG)
	if err != nil {
		return errors.Wrapf(err, "unable to persist identicon of %q", img.Input)
	}
	g.written.Add(1)

	log.Info().Str("input", img.Input).Str("file", g.writer.Path(name)).Str("color", img.Color.Hex()).Msg("identicon written")

	return nil
}

func (g *generation) record(_ context.Context, img identicon.Image) error {
	return g.manifest.Add(img, g.writer.Path(g.fileName(img.Input)))
}

func (g *generation) build(pipe *pipeline.Pipeline, inputs func(ctx context.Context, rootChan chan<- string) error) error {
	root, err := pipeline.AddRootStep(pipe, "inputs", inputs)
	if err != nil {
		return err
	}

	hashed, err := pipeline.AddStepOneToOne(pipe, "hash", root, func(_ context.Context, input string) (identicon.RawHash, error) {
		return identicon.Hash(input), nil
	})
	if err != nil {
		return err
	}

	colored, err := pipeline.AddStepOneToOne(pipe, "color", hashed, func(_ context.Context, raw identicon.RawHash) (identicon.ColoredHash, error) {
		return identicon.PickColor(raw)
	})
	if err != nil {
		return err
	}

	grid, err := pipeline.AddStepOneToOne(pipe, "grid", colored, func(_ context.Context, colored identicon.ColoredHash) (identicon.GridResult, error) {
		return identicon.BuildGrid(colored), nil
	})
	if err != nil {
		return err
	}

	filtered, err := pipeline.AddStepOneToOne(pipe, "filter", grid, func(_ context.Context, grid identicon.GridResult) (identicon.FilteredGrid, error) {
		return identicon.FilterSquares(grid), nil
	})
	if err != nil {
		return err
	}

	pixels, err := pipeline.AddStepOneToOne(pipe, "pixelmap", filtered, func(_ context.Context, filtered identicon.FilteredGrid) (identicon.PixelMap, error) {
		return identicon.MapPixels(filtered)
	})
	if err != nil {
		return err
	}

	rendered, err := pipeline.AddStepOneToOne(pipe, "render", pixels, func(_ context.Context, pm identicon.PixelMap) (identicon.Image, error) {
		return identicon.Render(pm, identicon.NewPNGCanvas())
	}, pipeline.StepConcurrency[identicon.Image](g.cfg.Concurrency))
	if err != nil {
		return err
	}

	if g.manifest == nil {
		return pipeline.AddSink(pipe, "persist", rendered, g.persist)
	}

	splitter, err := pipeline.AddSplitter(pipe, "outputs", rendered, 2)
	if err != nil {
		return err
	}
	persistBranch, _ := splitter.Get()
	manifestBranch, _ := splitter.Get()

	err = pipeline.AddSink(pipe, "persist", persistBranch, g.persist)
	if err != nil {
		return err
	}

	return pipeline.AddSink(pipe, "manifest", manifestBranch, g.record)
}

// Generate writes the identicon of every input into the output directory.
func Generate(ctx context.Context, cfg config.Config, inputs []string) (Result, error) {
	return generate(ctx, cfg, pipeline.SliceRoot(inputs))
}

func generate(ctx context.Context, cfg config.Config, inputs func(ctx context.Context, rootChan chan<- string) error) (Result, error) {
	err := cfg.Validate()
	if err != nil {
		return Result{}, errors.Wrap(err, "invalid configuration")
	}

	gen := newGeneration(cfg)

	var msr measure.Measure
	if cfg.Measure || cfg.GraphFile != "" {
		msr = measure.NewDefaultMeasure()
	}

	pipe, err := pipeline.New(ctx, gen.options(msr)...)
	if err != nil {
		return Result{}, err
	}

	err = gen.build(pipe, inputs)
	if err != nil {
		return Result{}, errors.Wrap(err, "unable to build pipeline")
	}

	err = pipe.Run()
	if err != nil {
		return Result{Written: gen.written.Load()}, err
	}

	if gen.manifest != nil {
		err = gen.manifest.Save(cfg.ManifestFile)
		if err != nil {
			return Result{Written: gen.written.Load()}, err
		}
	}

	if cfg.Measure {
		logMeasure(msr)
	}

	return Result{Written: gen.written.Load()}, nil
}

func logMeasure(msr measure.Measure) {
	metrics := msr.AllMetrics()
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mt := metrics[name]
		if mt.Count() == 0 {
			continue
		}
		log.Info().Str("step", name).Int64("count", mt.Count()).Dur("avg", mt.AVGDuration()).Msg("step duration")
	}
}
