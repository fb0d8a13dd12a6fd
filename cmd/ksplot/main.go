// Command ksplot renders the empirical CDFs of one or more samples as a
// step chart.
//
// Inputs must be single-column headerless floating point data files. One
// curve is drawn per file, which makes an eyeball companion to the ksfloat
// test: the Kolmogorov-Smirnov statistic is the largest vertical gap
// between two of the curves.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ksmirnov/ks"
)

func main() {
	log.SetPrefix("ksplot: ")
	log.SetFlags(0)

	out := flag.String("o", "ecdf.png", "output image file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] file...

ksplot reads single-column floating point data files and renders the
empirical CDF of each as a step curve in one chart.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	p := plot.New()
	p.Title.Text = "Empirical CDF"
	p.X.Label.Text = "value"
	p.Y.Label.Text = "fraction of samples"
	p.Y.Min, p.Y.Max = 0, 1

	for i, path := range flag.Args() {
		samples, err := readFloats(path)
		if err != nil {
			log.Fatal(err)
		}
		if len(samples) == 0 {
			log.Fatalf("%s: empty sample", path)
		}

		l, err := plotter.NewLine(ecdfPoints(samples))
		if err != nil {
			log.Fatal(err)
		}
		l.StepStyle = plotter.PostStep
		l.Color = plotutil.Color(i)

		p.Add(l)
		p.Legend.Add(filepath.Base(path), l)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *out); err != nil {
		log.Fatal(err)
	}
}

func ecdfPoints(samples []float64) plotter.XYs {
	e := ks.NewFloat64(samples)

	xys := make(plotter.XYs, e.Len())
	for i := range xys {
		v := e.Rank(i + 1)

		xys[i].X = v
		xys[i].Y = e.Value(v)
	}

	return xys
}

func readFloats(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var vv []float64

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		vv = append(vv, v)
	}

	return vv, sc.Err()
}
