package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-marker"
	"github.com/goliatone/go-marker/pkg/document"
	"github.com/goliatone/go-marker/pkg/sanitize"
)

func main() {
	source := flag.String("source", "", "form document path (YAML or JSON)")
	output := flag.String("output", "", "output file (stdout if empty)")
	strict := flag.Bool("strict", false, "fail on accessibility violations")
	sanitizer := flag.String("sanitize", "none", "help and description policy: none, strict, ugc or raw")
	themePath := flag.String("theme", "", "theme configuration file (YAML or JSON)")
	interactive := flag.Bool("interactive", false, "prompt for field values before rendering")
	flag.Parse()

	if *source == "" {
		log.Fatalf("missing -source")
	}

	format, ok := sanitize.ByName(*sanitizer)
	if !ok {
		log.Fatalf("unknown sanitize policy: %q", *sanitizer)
	}
	options := []marker.Option{marker.WithFormatter(format)}
	if *strict {
		options = append(options, marker.WithStrict())
	}
	if *themePath != "" {
		cfg, err := marker.LoadThemeFile(*themePath)
		if err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
		options = append(options, marker.WithTheme(cfg))
	}

	f, err := document.LoadFile(*source)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	var html string
	if *interactive {
		html, err = marker.FillAndRender(context.Background(), f, options...)
	} else {
		html, err = marker.Render(f, options...)
	}
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(html)
	}
}
