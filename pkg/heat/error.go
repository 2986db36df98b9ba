package heat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
)

// ErrNotFound matches errors returned for resources which don't exist, use errors.Is to check for it.
var ErrNotFound = errors.New("not found")

// Error is an error returned by the orchestration API.
//
// Its message is the one sent by the service, so that it can be shown to users as is.
type Error struct {
	StatusCode  int    `json:"-"`
	Code        int    `json:"code"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Details     struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Error converts an API error to a string.
func (err *Error) Error() string {
	switch {
	case err.Details.Message != "":
		return err.Details.Message
	case err.Explanation != "":
		return err.Explanation
	case err.Title != "":
		return err.Title
	}
	return fmt.Sprintf("HTTP %d %s", err.StatusCode, http.StatusText(err.StatusCode))
}

// Type returns the type of the error reported by the service, eg. "StackValidationFailed".
func (err *Error) Type() string {
	return err.Details.Type
}

// Is reports whether the error matches a target sentinel error.
func (err *Error) Is(target error) bool {
	return target == ErrNotFound && err.StatusCode == http.StatusNotFound
}

// checkResponse returns an *Error when the response has a non-2xx status code.
// The response body is consumed in that case.
func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	apiErr := &Error{StatusCode: resp.StatusCode}
	body, err := ioutil.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		// The body isn't always JSON (eg. from a proxy), in which case
		// the error message falls back to the HTTP status.
		json.Unmarshal(body, apiErr)
	}
	return apiErr
}
