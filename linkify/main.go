// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Linkify rewrites bare URLs in text or HTML as links.
//
// Usage:
//
//	linkify [-w] [-m] [-c config.yaml] [-a name=value]... [--domain host] [file...]
//
// Linkify reads the named files, or else standard input, and prints them
// to standard output with every URL that is not already linked
// turned into an <a> element.
//
// The -a flag adds an attribute to every link; it may be repeated,
// and attributes are printed in the order given.
// The --domain flag names the site the output is for:
// links to that host are printed without a target attribute.
// The -m flag converts the input from Markdown to HTML first.
// The -w flag rewrites the files in place.
//
// The -c flag reads defaults from a YAML file:
//
//	attrs:
//	  rel: nofollow
//	  target: _blank
//	domain: example.com
//	markdown: true
//
// Flags override the file; an -a attribute replaces a file
// attribute of the same name.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/yuin/goldmark"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/sync/errgroup"

	"rsc.io/autolink"
)

type cli struct {
	Config   string   `short:"c" help:"YAML configuration file." type:"path"`
	Attr     []string `short:"a" help:"Attribute to add to each link. Repeatable." placeholder:"NAME=VALUE" sep:"none"`
	Domain   string   `help:"Host name of the site; links to it get no target attribute."`
	Markdown bool     `short:"m" help:"Convert input from Markdown to HTML before linking."`
	Write    bool     `short:"w" help:"Write results back to the files instead of standard output."`
	Jobs     int      `short:"j" help:"Number of files to process at once (default: number of CPUs)."`
	Verbose  bool     `short:"v" help:"Enable verbose logging."`

	Files []string `arg:"" optional:"" help:"Files to link; standard input if none." type:"path"`
}

// AfterApply runs after flag parsing; set up logging once.
func (c *cli) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("linkify"),
		kong.Description("Rewrite bare URLs in text or HTML as links."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(c.run(os.Stdin, os.Stdout))
}

// errFailed reports that some files could not be processed.
// Each failure has already been logged.
var errFailed = errors.New("some files were not processed")

func (c *cli) run(stdin io.Reader, stdout io.Writer) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	conv := &converter{
		linker: &autolink.Linker{Attrs: cfg.Attrs, Domain: cfg.Domain},
	}
	if cfg.Markdown {
		conv.md = goldmark.New(goldmark.WithRendererOptions(ghtml.WithUnsafe()))
	}

	if len(c.Files) == 0 {
		if c.Write {
			return errors.New("-w requires file arguments")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
		out, err := conv.convert(data)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	jobs := c.Jobs
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}
	outs := make([][]byte, len(c.Files))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, file := range c.Files {
		g.Go(func() error {
			out, err := c.linkFile(conv, file)
			if err != nil {
				slog.Error("linkify failed", "file", file, "error", err)
				return errFailed
			}
			outs[i] = out
			return nil
		})
	}
	err = g.Wait()
	if !c.Write {
		for _, out := range outs {
			if _, werr := stdout.Write(out); werr != nil {
				return werr
			}
		}
	}
	return err
}

// linkFile converts file. If c.Write is set, it rewrites the file
// when the conversion changed it; otherwise it returns the result.
func (c *cli) linkFile(conv *converter, file string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	out, err := conv.convert(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	slog.Debug("linked", "file", file, "bytes", len(data), "added", len(out)-len(data))
	if !c.Write {
		return out, nil
	}
	if bytes.Equal(out, data) {
		return nil, nil
	}
	info, err := os.Stat(file)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(file, out, info.Mode().Perm()); err != nil {
		return nil, err
	}
	return nil, nil
}

// A converter turns one input into linked HTML.
// It is safe for concurrent use.
type converter struct {
	linker *autolink.Linker
	md     goldmark.Markdown // nil for HTML or text input
}

func (c *converter) convert(data []byte) ([]byte, error) {
	if c.md != nil {
		var buf bytes.Buffer
		if err := c.md.Convert(data, &buf); err != nil {
			return nil, fmt.Errorf("converting Markdown: %w", err)
		}
		data = buf.Bytes()
	}
	return []byte(c.linker.Link(string(data))), nil
}
