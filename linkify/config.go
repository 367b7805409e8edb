// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rsc.io/autolink"
)

// A config is the linker configuration after merging
// the configuration file and the command line.
type config struct {
	Attrs    attrList `yaml:"attrs"`
	Domain   string   `yaml:"domain"`
	Markdown bool     `yaml:"markdown"`
}

// An attrList is a YAML mapping of attribute names to values,
// kept in file order.
type attrList []autolink.Attr

func (l *attrList) UnmarshalYAML(n *yaml.Node) error {
	if n.Tag == "!!null" {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attrs must be a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %q must have a scalar value", v.Line, k.Value)
		}
		*l = l.set(autolink.Attr{Name: k.Value, Value: v.Value})
	}
	return nil
}

// set returns l with a added, replacing an attribute
// of the same name in place if there is one.
func (l attrList) set(a autolink.Attr) attrList {
	for i := range l {
		if l[i].Name == a.Name {
			l[i] = a
			return l
		}
	}
	return append(l, a)
}

// readConfig reads a configuration file.
// An empty file is a valid, empty configuration.
func readConfig(file string) (*config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	cfg := new(config)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

// load returns the configuration file, if any, overridden by flags.
func (c *cli) load() (*config, error) {
	cfg := new(config)
	if c.Config != "" {
		var err error
		if cfg, err = readConfig(c.Config); err != nil {
			return nil, err
		}
	}
	for _, s := range c.Attr {
		name, value, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid attribute %q: want NAME=VALUE", s)
		}
		cfg.Attrs = cfg.Attrs.set(autolink.Attr{Name: name, Value: value})
	}
	if c.Domain != "" {
		cfg.Domain = c.Domain
	}
	if c.Markdown {
		cfg.Markdown = true
	}
	return cfg, nil
}
