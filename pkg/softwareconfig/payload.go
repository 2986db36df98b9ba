// Package softwareconfig creates, lists, and deletes software configs.
//
// A software config is created in three steps: its definition document
// and content are fetched, assembled into a payload, and validated by the
// orchestration service through a template wrapping it as a resource.
// The config is only created once this validation passed.
package softwareconfig

import (
	"errors"
	"fmt"

	"github.com/openstack-go/heat-cli/pkg/heat"
	"gopkg.in/yaml.v3"
)

// DefaultGroup is the group of software configs created without an explicit group.
const DefaultGroup = "Heat::Ungrouped"

// ErrNoName is returned when building a payload without name.
var ErrNoName = errors.New("software config name cannot be empty")

// DefinitionParseError is returned when a definition document can't be parsed.
type DefinitionParseError struct {
	Err error
}

func (e *DefinitionParseError) Error() string {
	return fmt.Sprintf("invalid definition: %s", e.Err)
}

func (e *DefinitionParseError) Unwrap() error {
	return e.Err
}

// Definition describes the inputs, outputs, and tool specific options of a software config.
type Definition struct {
	Inputs  []interface{}
	Outputs []interface{}
	Options map[string]interface{}
}

func emptyDefinition() *Definition {
	return &Definition{
		Inputs:  []interface{}{},
		Outputs: []interface{}{},
		Options: map[string]interface{}{},
	}
}

// ParseDefinition parses a YAML or JSON definition document.
// Missing keys default to empty values, an empty document is a valid definition.
func ParseDefinition(doc []byte) (*Definition, error) {
	var raw interface{}
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return nil, &DefinitionParseError{Err: err}
	}

	def := emptyDefinition()
	if raw == nil {
		return def, nil
	}

	fields, ok := normalize(raw).(map[string]interface{})
	if !ok {
		return nil, &DefinitionParseError{Err: fmt.Errorf("expected a mapping, got %T", raw)}
	}
	if val, ok := fields["inputs"]; ok && val != nil {
		if def.Inputs, ok = val.([]interface{}); !ok {
			return nil, &DefinitionParseError{Err: fmt.Errorf("inputs must be a list, got %T", val)}
		}
	}
	if val, ok := fields["outputs"]; ok && val != nil {
		if def.Outputs, ok = val.([]interface{}); !ok {
			return nil, &DefinitionParseError{Err: fmt.Errorf("outputs must be a list, got %T", val)}
		}
	}
	if val, ok := fields["options"]; ok && val != nil {
		if def.Options, ok = val.(map[string]interface{}); !ok {
			return nil, &DefinitionParseError{Err: fmt.Errorf("options must be a mapping, got %T", val)}
		}
	}
	return def, nil
}

// normalize converts mappings with non-string keys, which YAML allows, into mappings
// with string keys so that they can be sent as JSON.
func normalize(val interface{}) interface{} {
	switch v := val.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, item := range v {
			m[fmt.Sprintf("%v", key)] = normalize(item)
		}
		return m
	case map[string]interface{}:
		for key, item := range v {
			v[key] = normalize(item)
		}
		return v
	case []interface{}:
		for i, item := range v {
			v[i] = normalize(item)
		}
		return v
	default:
		return v
	}
}

// Payload holds the fields sent to create a software config.
type Payload struct {
	Name    string
	Group   string
	Config  string
	Inputs  []interface{}
	Outputs []interface{}
	Options map[string]interface{}
}

// BuildPayload assembles a payload from an optional definition document and optional config content.
// A nil definition or config means it wasn't given, the config content is kept verbatim.
func BuildPayload(name, group string, definition, config []byte) (*Payload, error) {
	if name == "" {
		return nil, ErrNoName
	}
	if group == "" {
		group = DefaultGroup
	}

	def := emptyDefinition()
	if definition != nil {
		var err error
		if def, err = ParseDefinition(definition); err != nil {
			return nil, err
		}
	}

	return &Payload{
		Name:    name,
		Group:   group,
		Config:  string(config),
		Inputs:  def.Inputs,
		Outputs: def.Outputs,
		Options: def.Options,
	}, nil
}

// Properties returns the payload as the properties of an OS::Heat::SoftwareConfig resource.
// The name isn't part of them, it is the resource name in a template.
func (p *Payload) Properties() map[string]interface{} {
	return map[string]interface{}{
		"group":   p.Group,
		"config":  p.Config,
		"inputs":  p.Inputs,
		"outputs": p.Outputs,
		"options": p.Options,
	}
}

// SoftwareConfig returns the payload as an API request body.
func (p *Payload) SoftwareConfig() *heat.SoftwareConfig {
	return &heat.SoftwareConfig{
		Name:    p.Name,
		Group:   p.Group,
		Config:  p.Config,
		Inputs:  p.Inputs,
		Outputs: p.Outputs,
		Options: p.Options,
	}
}
