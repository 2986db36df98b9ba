package heat

// Stacks gives access to the stack related endpoints.
type Stacks struct {
	client *Client
}

// ValidateResult is the response of a successful template validation.
// It describes the template parameters and their constraints.
type ValidateResult map[string]interface{}

// Validate asks the service to validate a template without creating any stack.
func (s *Stacks) Validate(template interface{}) (ValidateResult, error) {
	req := map[string]interface{}{
		"template": template,
	}
	result := ValidateResult{}
	if err := s.client.do("POST", "/validate", req, &result); err != nil {
		return nil, err
	}
	return result, nil
}
