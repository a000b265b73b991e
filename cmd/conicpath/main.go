// Command conicpath builds curves described in YAML or TOML files, classifies
// the conics among them and prints each as SVG path data.
//
// Usage:
//
//	conicpath [-classify-tolerance 1e-6] [-render-tolerance 1e-6] [-precision 6] [-v] spec.yaml|spec.toml...
//
// The two tolerances measure different things. -classify-tolerance is the
// relative degeneracy below which a conic is drawn as a parabola; it has no
// unit. -render-tolerance is the largest distance, in the curve's own units,
// between the printed path and the exact curve.
//
// Each curve produces one line of output: its name, its kind (elliptical,
// parabolic, hyperbolic or cubic) and the path data.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/conic"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type renderer struct {
	classifyTolerance float64
	renderTolerance   float64
	opts              conic.SVGOptions
	log               *slog.Logger
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("conicpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	classifyTolerance := fs.Float64("classify-tolerance", conic.DefaultTolerance, "Relative degeneracy below which conics become parabolas")
	renderTolerance := fs.Float64("render-tolerance", conic.DefaultTolerance, "Maximum distance between path data and the exact curve")
	precision := fs.Int("precision", 6, "Maximum number of decimals in path data (0 for shortest exact)")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: conicpath [flags] spec.yaml...")
		fs.PrintDefaults()
		return 2
	}
	if !(*renderTolerance > 0) {
		fmt.Fprintf(stderr, "invalid -render-tolerance %g\n", *renderTolerance)
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	r := &renderer{
		classifyTolerance: *classifyTolerance,
		renderTolerance:   *renderTolerance,
		opts:              conic.SVGOptions{MaxPrecision: *precision},
		log:               slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}

	failed := 0
	for _, path := range fs.Args() {
		spec, err := LoadSpec(path)
		if err != nil {
			r.log.Error("loading spec", "path", path, "err", err)
			failed++
			continue
		}
		r.log.Debug("loaded spec", "path", path, "curves", len(spec.Curves))
		for i := range spec.Curves {
			c := &spec.Curves[i]
			kind, p, err := r.build(c)
			if err != nil {
				r.log.Error("building curve", "path", path, "name", c.Name, "err", err)
				failed++
				continue
			}
			if _, err := fmt.Fprintf(stdout, "%s %s ", c.Name, kind); err != nil {
				r.log.Error("writing output", "err", err)
				return 1
			}
			if err := conic.WriteSVG(stdout, p.PathElements(r.renderTolerance), r.opts); err != nil {
				r.log.Error("writing output", "err", err)
				return 1
			}
			fmt.Fprintln(stdout)
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// build constructs the curve described by c and returns the name of its
// kind along with its render-facing form.
func (r *renderer) build(c *CurveSpec) (string, conic.RenderPath, error) {
	rng, sigma, err := c.domain()
	if err != nil {
		return "", nil, err
	}
	sel, disp, err := c.transform(rng)
	if err != nil {
		return "", nil, err
	}

	switch c.Kind {
	case KindCubic:
		pts, err := c.points(4)
		if err != nil {
			return "", nil, err
		}
		cubic, err := conic.NewCubicFromFourPoints(conic.FourPointSpec{
			Points: [4]conic.Point(pts),
			Range:  rng,
			Sigma:  sigma,
		})
		if err != nil {
			return "", nil, err
		}
		if sel != nil {
			cubic = cubic.SelectRange(*sel)
		}
		if disp != nil {
			cubic = cubic.Displace(*disp)
		}
		r.log.Debug("built cubic", "name", c.Name, "range", cubic.Range, "sigma", cubic.Sigma)
		return KindCubic, cubic.Path(), nil

	case KindFourPoint, KindThreePointAngle:
		var q conic.WeightedQuadratic
		if c.Kind == KindFourPoint {
			pts, err := c.points(4)
			if err != nil {
				return "", nil, err
			}
			q, err = conic.NewConicFromFourPoints(conic.FourPointSpec{
				Points: [4]conic.Point(pts),
				Range:  rng,
				Sigma:  sigma,
			})
			if err != nil {
				return "", nil, err
			}
		} else {
			pts, err := c.points(3)
			if err != nil {
				return "", nil, err
			}
			q, err = conic.NewConicFromThreePointsAndAngle(conic.ThreePointAngleSpec{
				Points: [3]conic.Point(pts),
				Angle:  c.Angle,
				Range:  rng,
				Sigma:  sigma,
			})
			if err != nil {
				return "", nil, err
			}
		}
		if sel != nil {
			q = q.SelectRange(*sel)
		}
		if disp != nil {
			q = q.Displace(*disp)
		}
		class, err := conic.CreateFromOrdinary(q.Normalize(), r.classifyTolerance)
		if err != nil {
			return "", nil, err
		}
		r.log.Debug("classified conic", "name", c.Name, "kind", class.Kind(), "range", q.Range, "sigma", q.Sigma)
		return class.Kind().String(), class.Path(), nil

	default:
		return "", nil, fmt.Errorf("%w: unknown kind %q", errMalformed, c.Kind)
	}
}
