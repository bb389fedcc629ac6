// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// deviceprop runs the device type propagation on graphs described in YAML (see package iryaml), and reports the
// inferred devices.
//
// Usage:
//
//	deviceprop [flags] graph.yaml [graph2.yaml ...]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/deviceprop/pkg/ir/opset"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

// PlainEnv is the environment variable that, if set to a non-empty value, makes -plain default to true.
const PlainEnv = "DEVICEPROP_PLAIN"

var (
	flagSummary = flag.Bool("summary", true, "Display a summary of each graph: sizes and number of known devices.")
	flagChanges = flag.Bool("changes", true, "List the values whose device changed.")
	flagDump    = flag.Bool("dump", false, "Print the graph after the device type propagation.")
	flagPlain   = flag.Bool("plain", os.Getenv(PlainEnv) != "",
		fmt.Sprintf("Disable colors and styles in the output. It defaults to true if $%s is set.", PlainEnv))
	flagProgress = flag.Bool("progress", false, "Display a progress bar (in stderr) while analysing multiple graphs.")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] graph.yaml [graph2.yaml ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		klog.Errorf("Missing graph file to analyse. See 'deviceprop -help'")
		os.Exit(1)
	}
	setColorProfile(*flagPlain)

	registry := opset.Default()
	var bar *progressbar.ProgressBar
	if *flagProgress && len(paths) > 1 {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetDescription("Analysing graphs"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetTheme(progressbar.ThemeASCII),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish())
	}
	reports := make([]*graphReport, 0, len(paths))
	for _, path := range paths {
		r, err := analyseFile(path, registry)
		if err != nil {
			klog.Errorf("Failed to analyse %q: %+v", path, err)
			os.Exit(1)
		}
		reports = append(reports, r)
		if bar != nil {
			must.M(bar.Add(1))
		}
	}
	if bar != nil {
		must.M(bar.Finish())
	}

	for _, r := range reports {
		if *flagSummary {
			fmt.Println(titleStyle.Render("Summary: " + r.Path))
			fmt.Println(summaryTable(r).Render())
		}
		if *flagChanges {
			fmt.Println(titleStyle.Render("Changes: " + r.Path))
			if len(r.Changes) == 0 {
				fmt.Println("No device changed.")
			} else {
				fmt.Println(changesTable(r).Render())
			}
		}
		if *flagDump {
			fmt.Println(titleStyle.Render("Graph: " + r.Path))
			fmt.Print(r.Graph)
		}
	}
}

// setColorProfile configures lipgloss to the terminal capabilities, or to no colors if plain is set or if
// the environment asks for no colors ($NO_COLOR).
func setColorProfile(plain bool) {
	if plain || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
}
