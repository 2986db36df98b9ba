// Package heat is a client for the software config and stack validation
// endpoints of the orchestration API.
package heat

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/openstack-go/heat-cli/pkg/httpclient"
)

// Client is a client for the orchestration API.
type Client struct {
	http *httpclient.Client

	SoftwareConfigs *SoftwareConfigs
	Stacks          *Stacks
}

// NewClient creates a new orchestration API client.
func NewClient(baseClient *httpclient.Client) *Client {
	client := &Client{
		http: baseClient,
	}
	client.SoftwareConfigs = &SoftwareConfigs{client: client}
	client.Stacks = &Stacks{client: client}
	return client
}

// do sends a request with an optional JSON body and decodes the JSON response into out, when not nil.
func (c *Client) do(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(in); err != nil {
			return err
		}
		body = &buf
	}

	req, err := c.http.NewRequest(method, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkResponse(resp); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
