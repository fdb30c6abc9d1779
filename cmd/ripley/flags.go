package main

import (
	"flag"
	"io"
	"strings"
)

// optionValues collects repeated key=value estimator options.
type optionValues []string

func (o *optionValues) String() string { return strings.Join(*o, ",") }

func (o *optionValues) Set(value string) error {
	*o = append(*o, value)
	return nil
}

type sceneFlags struct {
	N       *int
	Seed    *uint64
	Width   *float64
	Height  *float64
	CenterX *float64
	CenterY *float64
	RMin    *float64
	RMax    *float64
	Index   *string
	Reject  *bool
	DB      *string
	SceneID *string
	Options *optionValues
}

type sampleFlags struct {
	sceneFlags
	Steps  *int
	Easing *string
	Format *string
	FPS    *int
}

type verifyFlags struct {
	sceneFlags
	Steps *int
}

func newFlagSet(name string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	return fs
}

func defineSceneFlags(fs *flag.FlagSet) sceneFlags {
	return sceneFlags{
		N:       defineIntFlag(fs, "points", "n", 60, "Number of uniformly sampled points."),
		Seed:    defineUint64Flag(fs, "seed", "s", 1, "Random seed of the point field."),
		Width:   defineFloat64Flag(fs, "width", "w", 6.8, "Region width."),
		Height:  defineFloat64Flag(fs, "height", "", 5, "Region height."),
		CenterX: defineFloat64Flag(fs, "cx", "", 0, "Query center x."),
		CenterY: defineFloat64Flag(fs, "cy", "", 0, "Query center y."),
		RMin:    defineFloat64Flag(fs, "r-min", "", 0.4, "Lower bound of the radius domain."),
		RMax:    defineFloat64Flag(fs, "r-max", "", 2.25, "Upper bound of the radius domain."),
		Index:   defineStringFlag(fs, "index", "i", "auto", "Spatial index: auto, brute, kdtree, vptree, rtree or quadtree."),
		Reject:  defineBoolFlag(fs, "reject-negative", "", false, "Fail on negative radii instead of clamping them to 0."),
		DB:      defineStringFlag(fs, "db", "", "", "SQLite database to persist scenes and samples in."),
		SceneID: defineStringFlag(fs, "scene", "", "", "Load the scene with this id from -db instead of sampling."),
		Options: defineOptionFlag(fs, "opt", "o", "Estimator option as key=value (index, r_min, r_max, negative); repeatable, applied last."),
	}
}

func defineOptionFlag(fs *flag.FlagSet, name string, shortHand string, usage string) *optionValues {
	output := &optionValues{}
	fs.Var(output, name, usage)
	if shortHand != name && shortHand != "" {
		fs.Var(output, shortHand, usage+" (shorthand for "+name+")")
	}
	return output
}

func parseSampleFlags(args []string, output io.Writer) (sampleFlags, error) {
	fs := newFlagSet("sample", output)
	f := sampleFlags{
		sceneFlags: defineSceneFlags(fs),
		Steps:      defineIntFlag(fs, "steps", "", 0, "Number of evenly eased radii; 0 samples one radius per frame."),
		Easing:     defineStringFlag(fs, "easing", "e", "smootherstep", "Radius easing: linear, smoothstep or smootherstep."),
		Format:     defineStringFlag(fs, "format", "f", "json", "Output format: json or csv."),
		FPS:        defineIntFlag(fs, "fps", "", 30, "Frames per second of the 20s sweep when -steps is 0."),
	}
	return f, fs.Parse(args)
}

func parseVerifyFlags(args []string, output io.Writer) (verifyFlags, error) {
	fs := newFlagSet("verify", output)
	f := verifyFlags{
		sceneFlags: defineSceneFlags(fs),
		Steps:      defineIntFlag(fs, "steps", "", 20, "Number of radii checked across the domain."),
	}
	return f, fs.Parse(args)
}

func parseAxesFlags(args []string, output io.Writer) (sceneFlags, error) {
	fs := newFlagSet("axes", output)
	f := defineSceneFlags(fs)
	return f, fs.Parse(args)
}

func defineStringFlag(fs *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	fs.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		fs.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineIntFlag(fs *flag.FlagSet, name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	fs.IntVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		fs.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineUint64Flag(fs *flag.FlagSet, name string, shortHand string, defaultValue uint64, usage string) *uint64 {
	var output uint64
	fs.Uint64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		fs.Uint64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineFloat64Flag(fs *flag.FlagSet, name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	fs.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		fs.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlag(fs *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	fs.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		fs.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
