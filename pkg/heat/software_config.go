package heat

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
)

// ErrNoSoftwareConfig is returned when a successful response doesn't contain a software config.
var ErrNoSoftwareConfig = errors.New("the orchestration API returned no software config")

// SoftwareConfig is a software config as represented by the orchestration API.
type SoftwareConfig struct {
	ID           string                 `json:"id,omitempty"`
	Name         string                 `json:"name"`
	Group        string                 `json:"group"`
	CreationTime string                 `json:"creation_time,omitempty"`
	Inputs       []interface{}          `json:"inputs"`
	Outputs      []interface{}          `json:"outputs"`
	Options      map[string]interface{} `json:"options"`
	Config       string                 `json:"config"`

	// Fields holds every field returned by the service, including the ones above.
	Fields map[string]interface{} `json:"-"`
}

// UnmarshalJSON decodes a software config and keeps all its fields in Fields.
func (sc *SoftwareConfig) UnmarshalJSON(b []byte) error {
	type softwareConfig SoftwareConfig
	var fields map[string]interface{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	if err := json.Unmarshal(b, (*softwareConfig)(sc)); err != nil {
		return err
	}
	sc.Fields = fields
	return nil
}

// ListOpts are the pagination parameters for a software config list.
// Zero values are not sent to the API.
type ListOpts struct {
	Limit  int
	Marker string
}

// SoftwareConfigs gives access to the "/software_configs" endpoints.
type SoftwareConfigs struct {
	client *Client
}

// Create creates a software config and returns it as stored by the service.
func (s *SoftwareConfigs) Create(config *SoftwareConfig) (*SoftwareConfig, error) {
	var resp struct {
		SoftwareConfig *SoftwareConfig `json:"software_config"`
	}
	if err := s.client.do("POST", "/software_configs", config, &resp); err != nil {
		return nil, err
	}
	if resp.SoftwareConfig == nil {
		return nil, ErrNoSoftwareConfig
	}
	return resp.SoftwareConfig, nil
}

// List returns the software configs, in the order returned by the service. Null entries are skipped.
func (s *SoftwareConfigs) List(opts ListOpts) ([]*SoftwareConfig, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Marker != "" {
		query.Set("marker", opts.Marker)
	}
	path := "/software_configs"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp struct {
		SoftwareConfigs []*SoftwareConfig `json:"software_configs"`
	}
	if err := s.client.do("GET", path, nil, &resp); err != nil {
		return nil, err
	}
	configs := make([]*SoftwareConfig, 0, len(resp.SoftwareConfigs))
	for _, config := range resp.SoftwareConfigs {
		if config != nil {
			configs = append(configs, config)
		}
	}
	return configs, nil
}

// Delete deletes a software config.
func (s *SoftwareConfigs) Delete(id string) error {
	return s.client.do("DELETE", "/software_configs/"+url.PathEscape(id), nil, nil)
}
