package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/dungeon/internal/game/quest"
)

// Description is the decoded, still untyped level description.
// Pointer fields distinguish "absent" from zero; a nil Entities slice means
// the field was absent, an empty level carries an empty non-nil slice.
type Description struct {
	Width         *int           `json:"width" yaml:"width"`
	Height        *int           `json:"height" yaml:"height"`
	GoalCondition *GoalCondition `json:"goal-condition" yaml:"goal-condition"`
	Entities      []EntitySpec   `json:"entities" yaml:"entities"`
}

// GoalCondition is one node of the declared goal.
// Subgoals are read only for the AND/OR combinators.
type GoalCondition struct {
	Goal     string          `json:"goal" yaml:"goal"`
	Subgoals []GoalCondition `json:"subgoals,omitempty" yaml:"subgoals,omitempty"`
}

// EntitySpec is one declared entity.
type EntitySpec struct {
	Type string `json:"type" yaml:"type"`
	X    *int   `json:"x" yaml:"x"`
	Y    *int   `json:"y" yaml:"y"`
	ID   *int   `json:"id,omitempty" yaml:"id,omitempty"`
}

// Format of a serialized description.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file name; unknown extensions are treated as JSON.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseJSON decodes a JSON level description and validates it.
// Keys must match their documented spelling exactly.
func ParseJSON(data []byte) (*Description, error) {
	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, decodeError(err)
	}
	if err := checkKeyCase(data); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

// ParseYAML decodes a YAML level description and validates it.
func ParseYAML(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, decodeError(err)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Parse decodes data in the format implied by name.
func Parse(name string, data []byte) (*Description, error) {
	var (
		desc *Description
		err  error
	)
	switch FormatOf(name) {
	case FormatYAML:
		desc, err = ParseYAML(data)
	default:
		desc, err = ParseJSON(data)
	}
	return desc, withLevel(err, name)
}

// descriptionKeys maps the folded form of every key a description can carry
// to its exact spelling.
var descriptionKeys = map[string]string{
	"width":          "width",
	"height":         "height",
	"goal-condition": "goal-condition",
	"goal":           "goal",
	"subgoals":       "subgoals",
	"entities":       "entities",
	"type":           "type",
	"x":              "x",
	"y":              "y",
	"id":             "id",
}

// checkKeyCase rejects keys that name a description field only when case is
// ignored, e.g. "WIDTH". encoding/json would otherwise accept them.
func checkKeyCase(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return decodeError(err)
	}
	return walkKeys(doc, "")
}

func walkKeys(v any, path string) error {
	switch v := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			field := joinField(path, k)
			if exact, ok := descriptionKeys[strings.ToLower(k)]; ok && exact != k {
				return malformed(field, CodeDecode, "unknown key %q, did you mean %q", k, exact)
			}
			if err := walkKeys(v[k], field); err != nil {
				return err
			}
		}
	case []any:
		for i, child := range v {
			if err := walkKeys(child, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinField(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func decodeError(err error) error {
	field := ""
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field = typeErr.Field
	}
	return &MalformedLevelError{Field: field, Code: CodeDecode, Reason: "wrong shape", Err: err}
}

// Validate checks every required field, entity type and goal name.
// A description that validates always loads.
func (d *Description) Validate() error {
	if d.Width == nil {
		return malformed("width", CodeMissingField, "required")
	}
	if d.Height == nil {
		return malformed("height", CodeMissingField, "required")
	}
	if *d.Width <= 0 {
		return malformed("width", CodeInvalidValue, "dimensions must be positive, got %dx%d", *d.Width, *d.Height)
	}
	if *d.Height <= 0 {
		return malformed("height", CodeInvalidValue, "dimensions must be positive, got %dx%d", *d.Width, *d.Height)
	}
	if d.GoalCondition == nil {
		return malformed("goal-condition", CodeMissingField, "required")
	}
	if err := d.GoalCondition.validate("goal-condition"); err != nil {
		return err
	}
	if d.Entities == nil {
		return malformed("entities", CodeMissingField, "required")
	}

	var players, coop int
	for i, spec := range d.Entities {
		field := fmt.Sprintf("entities[%d]", i)
		if err := spec.validate(field); err != nil {
			return err
		}
		switch spec.Type {
		case TypePlayer:
			players++
		case TypePlayerCoop:
			coop++
		}
		if players > 1 || coop > 1 {
			return malformed(field, CodeDuplicatePlayer, "more than one %q entity", spec.Type)
		}
	}
	return nil
}

func (g *GoalCondition) validate(field string) error {
	if g.Goal == "" {
		return malformed(field+".goal", CodeMissingField, "required")
	}
	if !quest.IsCombinator(g.Goal) {
		if _, ok := quest.Atomic(g.Goal); !ok {
			return malformed(field+".goal", CodeUnknownGoal, "unknown goal %q", g.Goal)
		}
		return nil
	}
	if len(g.Subgoals) == 0 {
		return malformed(field+".subgoals", CodeMissingField, "%s needs at least one subgoal", g.Goal)
	}
	for i := range g.Subgoals {
		if err := g.Subgoals[i].validate(fmt.Sprintf("%s.subgoals[%d]", field, i)); err != nil {
			return err
		}
	}
	return nil
}

func (s *EntitySpec) validate(field string) error {
	if s.Type == "" {
		return malformed(field+".type", CodeMissingField, "required")
	}
	et, ok := entityTypes[s.Type]
	if !ok {
		return malformed(field+".type", CodeUnknownType, "unknown entity type %q", s.Type)
	}
	if s.X == nil {
		return malformed(field+".x", CodeMissingField, "required")
	}
	if s.Y == nil {
		return malformed(field+".y", CodeMissingField, "required")
	}
	if et.needsID && s.ID == nil {
		return malformed(field+".id", CodeMissingField, "required for %s", s.Type)
	}
	return nil
}
