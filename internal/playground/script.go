package playground

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyScript  = errors.New("empty script")
	ErrUnknownStep  = errors.New("unknown step")
	ErrInvalidBlock = errors.New("invalid block")
	ErrExpectation  = errors.New("expectation failed")
)

// Script is a replayable editing session: a starting document and the steps
// applied to it.
type Script struct {
	Name     string      `yaml:"name"`
	Document []BlockSpec `yaml:"document"`
	Steps    []Step      `yaml:"steps"`
}

// BlockSpec describes one top-level block of the starting document.
//
// Type defaults to paragraph. Lists take their items from Items; tables are
// built empty from Rows and Cols; every other type holds Text.
type BlockSpec struct {
	Type  string   `yaml:"type"`
	Text  string   `yaml:"text"`
	Align string   `yaml:"align"`
	Items []string `yaml:"items"`
	Rows  int      `yaml:"rows"`
	Cols  int      `yaml:"cols"`
}

// Step is one action. Exactly one field must be set.
type Step struct {
	Select  *SelectStep  `yaml:"select"`
	Move    *MoveStep    `yaml:"move"`
	Type    *string      `yaml:"type"`
	Break   bool         `yaml:"break"`
	Delete  int          `yaml:"delete"`
	Command *CommandStep `yaml:"command"`
	Expect  *ExpectStep  `yaml:"expect"`
}

type PointSpec struct {
	Path   []int `yaml:"path"`
	Offset int   `yaml:"offset"`
}

// SelectStep selects from Anchor to Focus; without Focus the selection is
// collapsed at Anchor.
type SelectStep struct {
	Anchor PointSpec  `yaml:"anchor"`
	Focus  *PointSpec `yaml:"focus"`
}

type MoveStep struct {
	Unit   string `yaml:"unit"`
	Dir    string `yaml:"dir"`
	Extend bool   `yaml:"extend"`
}

// CommandStep runs a toolbar command by name. Rows and Cols size
// insert-table.
type CommandStep struct {
	Name string `yaml:"name"`
	Rows int    `yaml:"rows"`
	Cols int    `yaml:"cols"`
}

// ExpectStep asserts the toolbar state and, when Outline is set, the tree.
type ExpectStep struct {
	Active   []string `yaml:"active"`
	Inactive []string `yaml:"inactive"`
	Outline  string   `yaml:"outline"`
}

// kind names the step for logs and errors.
func (s Step) kind() (string, error) {
	var kinds []string
	if s.Select != nil {
		kinds = append(kinds, "select")
	}
	if s.Move != nil {
		kinds = append(kinds, "move")
	}
	if s.Type != nil {
		kinds = append(kinds, "type")
	}
	if s.Break {
		kinds = append(kinds, "break")
	}
	if s.Delete != 0 {
		kinds = append(kinds, "delete")
	}
	if s.Command != nil {
		kinds = append(kinds, "command")
	}
	if s.Expect != nil {
		kinds = append(kinds, "expect")
	}
	switch len(kinds) {
	case 0:
		return "", ErrUnknownStep
	case 1:
		return kinds[0], nil
	default:
		return "", fmt.Errorf("%w: one action per step, got %v", ErrUnknownStep, kinds)
	}
}

// ParseScript decodes a YAML script. Unknown fields are rejected.
func ParseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(s.Document) == 0 && len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	return &s, nil
}

// LoadScript reads and parses the script at path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
