// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command disciplineplot draws the college majors chart.
//
// disciplineplot reads a statistics document (see
// discipline.Parse) from the named file or standard input and draws
// one metric of it, broken down by gender and by ethnicity, as an SVG
// or PNG image. With -format table, it prints the position of every
// drawn element instead.
//
// Settings are read from the file given by -config, then from .env in
// the current directory and the DISCIPLINES_METRIC, DISCIPLINES_CALC,
// and DISCIPLINES_FORMAT environment variables, and finally from
// flags.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/gradviz/disciplines/discipline"
	"github.com/gradviz/disciplines/internal/config"
	"github.com/gradviz/disciplines/layout"
	"github.com/gradviz/disciplines/render"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	log.SetPrefix("disciplineplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagConfig     = flag.String("config", "", "read settings from TOML `file`")
		flagMetric     = flag.String("metric", "", "draw `metric` (size, unemployment, or earnings)")
		flagCalc       = flag.String("calc", "", "express the metric as `method` (population, percent, or percent_by_pop_group)")
		flagFormat     = flag.String("format", "", "output `format` (svg, png, or table)")
		flagOut        = flag.String("o", "", "write output to `file` (default: stdout)")
		flagDiscipline = flag.String("highlight-discipline", "", "emphasize discipline `name`")
		flagGroup      = flag.String("highlight-group", "", "emphasize flow source `key`, such as women or asian")
		flagScale      = flag.Int("scale", 2, "supersample PNG output by `factor`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [data.json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	// Gather settings.
	cfg, err := config.Load(*flagConfig, ".env")
	if err != nil {
		log.Fatal(err)
	}
	for _, o := range []struct{ flag, dst *string }{
		{flagMetric, &cfg.Selection.Metric},
		{flagCalc, &cfg.Selection.Calc},
		{flagFormat, &cfg.Selection.Format},
	} {
		if *o.flag != "" {
			*o.dst = *o.flag
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	sel, err := cfg.Selected()
	if err != nil {
		log.Fatal(err)
	}

	// Parse input.
	f := os.Stdin
	if path := flag.Arg(0); path != "" && path != "-" {
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	doc, err := discipline.Parse(f)
	if err != nil {
		log.Fatal(err)
	}
	ds, err := doc.Dataset(sel.Calc)
	if err != nil {
		log.Fatal(err)
	}

	// Lay out.
	c, err := layout.Compute(ds, sel, layout.Options{Dims: cfg.Layout})
	if err != nil {
		log.Fatal(err)
	}

	// Prepare for output.
	out := os.Stdout
	if *flagOut != "" {
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	} else if cfg.Selection.Format == "png" && terminal.IsTerminal(int(out.Fd())) {
		log.Fatal("refusing to write PNG to a terminal; use -o")
	}

	opts := render.Options{
		Style:               cfg.Style,
		HighlightDiscipline: *flagDiscipline,
		HighlightGroup:      *flagGroup,
		Command:             os.Args,
		Scale:               *flagScale,
	}
	if err := writeChart(out, c, cfg.Selection.Format, opts); err != nil {
		log.Fatal(err)
	}
}

// writeChart writes c to w in format.
func writeChart(w io.Writer, c *layout.Chart, format string, opts render.Options) error {
	switch format {
	case "svg":
		return render.SVG(w, c, opts)
	case "png":
		return render.PNG(w, c, opts)
	case "table":
		return printTable(w, c)
	}
	return fmt.Errorf("unknown format %q", format)
}
