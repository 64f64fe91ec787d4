// Copyright (c) 2026, Sysarch Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"gopkg.in/yaml.v3"
)

// snapshot is the YAML shape of one element in a model snapshot.
type snapshot struct {
	Kind     string         `yaml:"kind"`
	Name     string         `yaml:"name,omitempty"`
	Props    map[string]any `yaml:"props,omitempty"`
	Refs     []snapshotRef  `yaml:"refs,omitempty"`
	Children []snapshot     `yaml:"children,omitempty"`
}

type snapshotRef struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// SnapshotYAML renders the whole element tree as YAML, with children and
// references in model order. The snapshot is a debugging and test aid, not
// a file format: it cannot be read back.
func (m *Model) SnapshotYAML() ([]byte, error) {
	doc := struct {
		SchemaVersion string   `yaml:"schemaVersion"`
		Root          snapshot `yaml:"root"`
	}{
		SchemaVersion: m.version.String(),
		Root:          snapshotOf(m.root),
	}
	return yaml.Marshal(doc)
}

func snapshotOf(e *Element) snapshot {
	s := snapshot{
		Kind:  e.kind.String(),
		Name:  e.name,
		Props: e.Props,
	}
	for _, r := range e.refs {
		s.Refs = append(s.Refs, snapshotRef{Name: r.Name, Path: r.Path})
	}
	for _, c := range e.children {
		s.Children = append(s.Children, snapshotOf(c))
	}
	return s
}
