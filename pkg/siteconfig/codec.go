// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package siteconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding of the descriptor
type Format string

const (
	// FormatJS is a CommonJS module exporting the descriptor
	FormatJS Format = "js"
	// FormatJSON is an indented JSON document
	FormatJSON Format = "json"
	// FormatYAML is a YAML document
	FormatYAML Format = "yaml"
)

const jsHeader = `/**
 * Generated by docsite. Do not edit; change the descriptor and regenerate.
 *
 * See https://docusaurus.io/docs/site-config for all the possible
 * site configuration options.
 */

`

// ParseFormat converts a format name
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJS, FormatJSON, FormatYAML:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format '%s'. Must be one of %v", s, []Format{FormatJS, FormatJSON, FormatYAML})
}

// FileName is the conventional file name for the format
func (f Format) FileName() string {
	return "siteConfig." + string(f)
}

// Encode serializes the descriptor. Output is deterministic: encoding the
// same descriptor twice yields identical bytes.
func Encode(d Descriptor, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return encodeJSON(d)
	case FormatJS:
		b, err := encodeJSON(d)
		if err != nil {
			return nil, err
		}
		buf := bytes.Buffer{}
		buf.WriteString(jsHeader)
		buf.WriteString("const siteConfig = ")
		buf.Write(bytes.TrimSuffix(b, []byte("\n")))
		buf.WriteString(";\n\nmodule.exports = siteConfig;\n")
		return buf.Bytes(), nil
	case FormatYAML:
		buf := bytes.Buffer{}
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

func encodeJSON(d Descriptor) ([]byte, error) {
	d = d.Clone()
	// nil slices would encode as null
	if d.HeaderLinks == nil {
		d.HeaderLinks = []HeaderLink{}
	}
	if d.Scripts == nil {
		d.Scripts = []string{}
	}
	if d.Stylesheets == nil {
		d.Stylesheets = []string{}
	}
	buf := bytes.Buffer{}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse decodes a YAML or JSON descriptor
func Parse(b []byte) (Descriptor, error) {
	d := Descriptor{}
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}
