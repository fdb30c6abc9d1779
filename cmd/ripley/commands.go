package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/golang/glog"
	"github.com/segmentio/encoding/json"
	"github.com/viant/ripley/curve"
	"github.com/viant/ripley/engine"
	"github.com/viant/ripley/index"
	"github.com/viant/ripley/point"
	"github.com/viant/ripley/ripley"
	"github.com/viant/ripley/store"
)

// sampleOutput is the JSON document emitted by the sample command.
type sampleOutput struct {
	SceneID string         `json:"sceneId,omitempty"`
	Index   index.Kind     `json:"index"`
	N       int            `json:"n"`
	Lambda  float64        `json:"lambda"`
	Center  point.Point    `json:"center"`
	Region  point.Region   `json:"region"`
	Axes    ripley.Axes    `json:"axes"`
	Samples []curve.Sample `json:"samples"`
}

type verifyOutput struct {
	SceneID string       `json:"sceneId,omitempty"`
	N       int          `json:"n"`
	Radii   int          `json:"radii"`
	Kinds   []kindResult `json:"kinds"`
	OK      bool         `json:"ok"`
}

type kindResult struct {
	Kind       index.Kind `json:"kind"`
	Mismatches int        `json:"mismatches"`
}

// session bundles the estimator with the optional store it was loaded from.
type session struct {
	est     *ripley.Estimator
	store   *store.SQLiteStore
	sceneID string
	seed    uint64
	db      *sql.DB
}

// persist saves a newly sampled scene; loaded scenes already have an id.
func (s *session) persist(ctx context.Context) error {
	if s.store == nil || s.sceneID != "" {
		return nil
	}
	id, err := store.SaveEstimator(ctx, s.store, s.est, s.seed)
	if err != nil {
		return err
	}
	s.sceneID = id
	glog.Infof("saved scene %s", id)
	return nil
}

func (s *session) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (f sceneFlags) options(kind index.Kind) []ripley.Option {
	opts := []ripley.Option{ripley.WithIndex(kind), ripley.WithDomain(*f.RMin, *f.RMax)}
	if *f.Reject {
		opts = append(opts, ripley.WithNegativeRadius(ripley.Reject))
	}
	return append(opts, ripley.ParseOptions(*f.Options)...)
}

func (f sceneFlags) kind() (index.Kind, error) {
	return index.ParseKind(*f.Index)
}

// open builds the estimator, either from a stored scene or by sampling a new
// one. A new scene is only written by persist.
func (f sceneFlags) open(ctx context.Context, kind index.Kind) (*session, error) {
	sess := &session{}
	if *f.DB != "" {
		db, err := engine.Open(*f.DB)
		if err != nil {
			return nil, err
		}
		sess.db = db
		if sess.store, err = store.NewSQLiteStore(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	if *f.SceneID != "" {
		if sess.store == nil {
			return nil, fmt.Errorf("-scene requires -db")
		}
		scene, err := sess.store.LoadScene(ctx, *f.SceneID)
		if err != nil {
			_ = sess.Close()
			return nil, err
		}
		opts := []ripley.Option{ripley.WithIndex(kind)}
		if *f.Reject {
			opts = append(opts, ripley.WithNegativeRadius(ripley.Reject))
		}
		opts = append(opts, ripley.ParseOptions(*f.Options)...)
		if sess.est, err = scene.Estimator(opts...); err != nil {
			_ = sess.Close()
			return nil, err
		}
		sess.sceneID = scene.ID
		glog.Infof("loaded scene %s (%d points)", scene.ID, scene.Points.Len())
		return sess, nil
	}

	scenario := ripley.Scenario{
		Region: point.NewRegion(*f.Width, *f.Height),
		Center: point.New(*f.CenterX, *f.CenterY),
		N:      *f.N,
		Seed:   *f.Seed,
	}
	est, err := scenario.Build(f.options(kind)...)
	if err != nil {
		_ = sess.Close()
		return nil, err
	}
	sess.est = est
	sess.seed = scenario.Seed
	return sess, nil
}

func runSample(ctx context.Context, f sampleFlags, w io.Writer) error {
	kind, err := f.kind()
	if err != nil {
		return err
	}
	easing, err := curve.ParseEasing(*f.Easing)
	if err != nil {
		return err
	}
	switch *f.Format {
	case "json", "csv", "":
	default:
		return fmt.Errorf("unsupported format %q", *f.Format)
	}
	sess, err := f.open(ctx, kind)
	if err != nil {
		return err
	}
	defer sess.Close()

	var radii []float64
	if *f.Steps > 0 {
		radii, err = curve.Radii(sess.est.Domain(), *f.Steps, easing)
	} else {
		tl := curve.DefaultTimeline()
		tl.FPS = *f.FPS
		tl.Easing = easing
		radii, err = tl.Radii(sess.est.Domain())
	}
	if err != nil {
		return err
	}
	samples := curve.SampleCurve(sess.est, radii)
	glog.V(1).Infof("sampled %d radii with %s index", len(samples), sess.est.IndexKind())

	if sess.store != nil {
		if err := sess.persist(ctx); err != nil {
			return err
		}
		if err := sess.store.SaveSamples(ctx, sess.sceneID, samples); err != nil {
			return err
		}
	}

	if *f.Format == "csv" {
		return writeCSV(w, samples)
	}
	return writeJSON(w, sampleOutput{
		SceneID: sess.sceneID,
		Index:   sess.est.IndexKind(),
		N:       sess.est.Len(),
		Lambda:  sess.est.Lambda(),
		Center:  sess.est.Center(),
		Region:  sess.est.Region(),
		Axes:    sess.est.Axes(),
		Samples: samples,
	})
}

// runVerify cross-checks every index kind against a linear scan.
func runVerify(ctx context.Context, f verifyFlags, w io.Writer) error {
	sess, err := f.open(ctx, index.KindBrute)
	if err != nil {
		return err
	}
	defer sess.Close()

	radii, err := curve.Radii(sess.est.Domain(), *f.Steps, nil)
	if err != nil {
		return err
	}
	points := sess.est.Points()
	center := sess.est.Center()
	out := verifyOutput{SceneID: sess.sceneID, N: points.Len(), Radii: len(radii), OK: true}
	for _, kind := range index.Kinds() {
		idx, _, err := index.Build(kind, points.Points())
		if err != nil {
			return err
		}
		result := kindResult{Kind: kind}
		for _, r := range radii {
			want := points.CountWithin(center, r)
			if got := idx.CountWithin(center, r); got != want {
				glog.Warningf("%s: r=%g got %d want %d", kind, r, got, want)
				result.Mismatches++
			}
		}
		if result.Mismatches > 0 {
			out.OK = false
		}
		out.Kinds = append(out.Kinds, result)
	}
	if sess.store != nil {
		if err := sess.persist(ctx); err != nil {
			return err
		}
		out.SceneID = sess.sceneID
		result := kindResult{Kind: "sql"}
		for _, r := range radii {
			got, err := sess.store.CountWithin(ctx, sess.sceneID, center, r)
			if err != nil {
				return err
			}
			if want := points.CountWithin(center, r); got != want {
				glog.Warningf("sql: r=%g got %d want %d", r, got, want)
				result.Mismatches++
			}
		}
		if result.Mismatches > 0 {
			out.OK = false
		}
		out.Kinds = append(out.Kinds, result)
	}
	if err := writeJSON(w, out); err != nil {
		return err
	}
	if !out.OK {
		return fmt.Errorf("index verification failed")
	}
	return nil
}

func runAxes(ctx context.Context, f sceneFlags, w io.Writer) error {
	kind, err := f.kind()
	if err != nil {
		return err
	}
	sess, err := f.open(ctx, kind)
	if err != nil {
		return err
	}
	defer sess.Close()
	axes := sess.est.Axes()
	if err := sess.persist(ctx); err != nil {
		return err
	}
	return writeJSON(w, axes)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(w io.Writer, samples []curve.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"r", "k", "ref"}); err != nil {
		return err
	}
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, s := range samples {
		if err := cw.Write([]string{format(s.R), format(s.K), format(s.Ref)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
