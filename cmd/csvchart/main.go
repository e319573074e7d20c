package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/midbel/csvchart"
	"github.com/midbel/csvchart/decode"
	"golang.org/x/sync/errgroup"
)

const help = `usage: csvchart <type> [options] [file...]

chart types and their required CSV columns:

  bar        id, category, value
  histogram  id, value
  line       id, time, value
  doughnut   id, category, value
  hexbin     id, independent, dependent

without file arguments the chart is read from stdin and written to stdout.
with file arguments each input is rendered to <file>.<type>.svg unless -file
is given.

options common to all types:

  -width   chart width in pixels (default 800)
  -height  chart height in pixels (default 600)
  -theme   theme file with colors and font settings
  -file    output file

type specific options:

  -bins     number of histogram bins (default 20)
  -radius   hexbin cell radius in pixels (default 20)
  -ramp     hexbin color ramp: Blues, Greens, Green-to-Blue
  -palette  bar and doughnut palette: Default, Category10, Tableau10
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, help)
		os.Exit(2)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(kind string, args []string) error {
	set := flag.NewFlagSet(kind, flag.ExitOnError)
	var (
		width   = set.Float64("width", csvchart.DefaultWidth, "chart width in pixels")
		height  = set.Float64("height", csvchart.DefaultHeight, "chart height in pixels")
		theme   = set.String("theme", "", "theme file")
		file    = set.String("file", "", "output file")
		bins    = set.Int("bins", csvchart.DefaultBins, "number of histogram bins")
		radius  = set.Float64("radius", csvchart.DefaultHexRadius, "hexbin cell radius in pixels")
		ramp    = set.String("ramp", "", "hexbin color ramp: Blues, Greens, Green-to-Blue")
		palette = set.String("palette", "", "categorical palette: Default, Category10, Tableau10")
	)
	if err := set.Parse(args); err != nil {
		return err
	}

	th, err := loadTheme(*theme, *ramp, *palette)
	if err != nil {
		return err
	}
	ch := csvchart.Chart{
		Width:   *width,
		Height:  *height,
		Padding: csvchart.DefaultPadding,
		Theme:   th,
	}
	render, err := makeRender(kind, ch, *bins, *radius)
	if err != nil {
		return err
	}

	files := set.Args()
	if len(files) == 0 {
		return renderOne(render, "", *file)
	}
	if *file != "" && len(files) > 1 {
		return fmt.Errorf("-file can not be combined with multiple inputs")
	}
	var grp errgroup.Group
	for _, f := range files {
		f := f
		grp.Go(func() error {
			out := *file
			if out == "" {
				out = outputName(f, kind)
			}
			return renderOne(render, f, out)
		})
	}
	return grp.Wait()
}

type renderFunc func(io.Writer, io.Reader) error

func makeRender(kind string, ch csvchart.Chart, bins int, radius float64) (renderFunc, error) {
	switch kind {
	case "bar":
		return func(w io.Writer, r io.Reader) error {
			records, err := decode.NewDecoder(r).DecodeBar()
			if err != nil {
				return err
			}
			return csvchart.BarChart{Chart: ch}.Render(w, records)
		}, nil
	case "histogram":
		return func(w io.Writer, r io.Reader) error {
			records, err := decode.NewDecoder(r).DecodeHistogram()
			if err != nil {
				return err
			}
			return csvchart.HistogramChart{Chart: ch, Bins: bins}.Render(w, records)
		}, nil
	case "line":
		return func(w io.Writer, r io.Reader) error {
			records, err := decode.NewDecoder(r).DecodeLine()
			if err != nil {
				return err
			}
			return csvchart.LineChart{Chart: ch}.Render(w, records)
		}, nil
	case "doughnut":
		return func(w io.Writer, r io.Reader) error {
			records, err := decode.NewDecoder(r).DecodeDoughnut()
			if err != nil {
				return err
			}
			return csvchart.DoughnutChart{Chart: ch}.Render(w, records)
		}, nil
	case "hexbin":
		return func(w io.Writer, r io.Reader) error {
			records, err := decode.NewDecoder(r).DecodeHexbin()
			if err != nil {
				return err
			}
			return csvchart.HexbinChart{Chart: ch, Radius: radius}.Render(w, records)
		}, nil
	default:
		return nil, fmt.Errorf("%s: unrecognized chart type", kind)
	}
}

func loadTheme(file, ramp, palette string) (csvchart.Theme, error) {
	th := csvchart.DefaultTheme()
	var err error
	if file != "" {
		err = cleanenv.ReadConfig(file, &th)
	} else {
		err = cleanenv.ReadEnv(&th)
	}
	if err != nil {
		return th, fmt.Errorf("theme: %w", err)
	}
	if ramp != "" {
		th.Ramp = csvchart.RampByName(ramp)
	}
	if palette != "" {
		th.Categorical = csvchart.CategoricalByName(palette)
	}
	return th, nil
}

func renderOne(render renderFunc, in, out string) error {
	var (
		r io.Reader = os.Stdin
		w io.Writer = os.Stdout
	)
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return render(w, r)
}

func outputName(in, kind string) string {
	ext := filepath.Ext(in)
	return fmt.Sprintf("%s.%s.svg", strings.TrimSuffix(in, ext), kind)
}
