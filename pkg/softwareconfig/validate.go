package softwareconfig

import (
	"github.com/openstack-go/heat-cli/pkg/heat"
)

// Validation template constants.
const (
	TemplateVersion = "2013-05-23"
	ResourceType    = "OS::Heat::SoftwareConfig"
)

// ValidationError is returned when the service rejects a software config.
// Its message is the one from the service.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// StacksAPI validates templates.
type StacksAPI interface {
	Validate(template interface{}) (heat.ValidateResult, error)
}

// ValidationTemplate returns a template with a single software config resource
// named after the payload, whose properties are the payload fields.
func ValidationTemplate(p *Payload) map[string]interface{} {
	return map[string]interface{}{
		"heat_template_version": TemplateVersion,
		"resources": map[string]interface{}{
			p.Name: map[string]interface{}{
				"type":       ResourceType,
				"properties": p.Properties(),
			},
		},
	}
}

// Validate submits the payload to the service for validation, wrapped into a template.
// No validation is done locally, the service is authoritative.
func Validate(stacks StacksAPI, p *Payload) error {
	if _, err := stacks.Validate(ValidationTemplate(p)); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
