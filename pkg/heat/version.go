package heat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-version"
)

// MinAPIVersion is the minimum orchestration API version supported by the CLI.
var MinAPIVersion = version.Must(version.NewVersion("1.0"))

// APIVersion describes a version of the orchestration API.
type APIVersion struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Versions returns the API versions advertised at the root of the service.
func (c *Client) Versions() ([]APIVersion, error) {
	rootURL := *c.http.BaseURL()
	rootURL.Path = "/"
	rootURL.RawQuery = ""

	req, err := c.http.NewRequest("GET", rootURL.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The service root answers with "300 Multiple Choices".
	if resp.StatusCode != http.StatusMultipleChoices {
		if err := checkResponse(resp); err != nil {
			return nil, err
		}
	}

	var body struct {
		Versions []APIVersion `json:"versions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Versions, nil
}

// CurrentVersion returns the version flagged as CURRENT by the service.
func (c *Client) CurrentVersion() (*version.Version, error) {
	versions, err := c.Versions()
	if err != nil {
		return nil, err
	}
	for _, v := range versions {
		if v.Status == "CURRENT" {
			return version.NewVersion(v.ID)
		}
	}
	return nil, errors.New("no current API version advertised by the service")
}
