// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/podward/podward/pkg/solid"
)

// modeNames maps CLI mode names to Access field selectors.
var modeNames = []string{"read", "append", "write", "control-read", "control-write"}

// parseModes builds a partial Access vector setting every named mode.
func parseModes(spec string, setting solid.Setting) (solid.Access, error) {
	var partial solid.Access
	for _, name := range strings.Split(spec, ",") {
		switch strings.TrimSpace(name) {
		case "read":
			partial.Read = setting
		case "append":
			partial.Append = setting
		case "write":
			partial.Write = setting
		case "control-read":
			partial.ControlRead = setting
		case "control-write":
			partial.ControlWrite = setting
		case "control":
			partial.ControlRead = setting
			partial.ControlWrite = setting
		case "":
			continue
		default:
			return solid.Access{}, fmt.Errorf("unknown mode %q (valid: %s)", name, strings.Join(modeNames, ", "))
		}
	}
	return partial, nil
}

// render writes the value in the selected output format.
func render(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		return yaml.NewEncoder(w).Encode(v)
	case "text", "":
		renderText(w, v)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (valid: text, json, yaml)", format)
	}
}

func renderText(w io.Writer, v any) {
	switch val := v.(type) {
	case solid.Access:
		writeAccess(w, "", val)
	case map[string]solid.Access:
		ids := make([]string, 0, len(val))
		for id := range val {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(w, "%s:\n", id)
			writeAccess(w, "  ", val[id])
		}
	default:
		fmt.Fprintf(w, "%v\n", v)
	}
}

func writeAccess(w io.Writer, indent string, a solid.Access) {
	for _, entry := range []struct {
		name    string
		setting solid.Setting
	}{
		{"read", a.Read},
		{"append", a.Append},
		{"write", a.Write},
		{"control-read", a.ControlRead},
		{"control-write", a.ControlWrite},
	} {
		fmt.Fprintf(w, "%s%s: %s\n", indent, entry.name, entry.setting)
	}
}
