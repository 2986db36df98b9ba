package mock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/openstack-go/heat-cli/pkg/cli"
	"github.com/openstack-go/heat-cli/pkg/config"
	"github.com/openstack-go/heat-cli/pkg/heat"
	"github.com/spf13/afero"
)

// ProjectPath is the path of the orchestration API on test servers.
const ProjectPath = "/v1/c3b1a8d5e6f74b0a"

// CreationTime is the creation time of software configs created on test servers.
const CreationTime = "2024-01-02T03:04:05Z"

// Heat is the mock definition for an orchestration service.
type Heat struct {
	// SoftwareConfigs are the existing software configs, in list order.
	SoftwareConfigs []*heat.SoftwareConfig

	// Version is the CURRENT API version advertised at the service root, eg. "v1.0".
	Version string

	// ValidationError, when set, is the message of the validation error returned for any template.
	ValidationError string

	// Project, when set, is returned as the "project" field of created software configs.
	Project string

	// DeleteErrors maps software config IDs to the status code returned when deleting them.
	DeleteErrors map[string]int

	// Requests are the requests received by the server, as "METHOD /path".
	Requests []string

	// Templates are the templates received for validation.
	Templates []map[string]interface{}

	mu     sync.Mutex
	nextID int
}

// NewTestServer creates a new HTTP test server based on a Heat definition.
func NewTestServer(h *Heat) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		h.record(req)
		if req.URL.Path != "/" || h.Version == "" {
			writeError(w, http.StatusNotFound, "NotFound", "The resource could not be found.")
			return
		}
		w.WriteHeader(http.StatusMultipleChoices)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"versions": []heat.APIVersion{{ID: h.Version, Status: "CURRENT"}},
		})
	})

	mux.HandleFunc(ProjectPath+"/validate", func(w http.ResponseWriter, req *http.Request) {
		h.record(req)
		var body struct {
			Template map[string]interface{} `json:"template"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "HTTPBadRequest", err.Error())
			return
		}
		h.mu.Lock()
		h.Templates = append(h.Templates, body.Template)
		h.mu.Unlock()

		if h.ValidationError != "" {
			writeError(w, http.StatusBadRequest, "StackValidationFailed", h.ValidationError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"Description": "No description", "Parameters": map[string]interface{}{}})
	})

	mux.HandleFunc(ProjectPath+"/software_configs", func(w http.ResponseWriter, req *http.Request) {
		h.record(req)
		switch req.Method {
		case "POST":
			h.create(w, req)
		case "GET":
			h.list(w, req)
		default:
			writeError(w, http.StatusMethodNotAllowed, "HTTPMethodNotAllowed", "The method is not allowed for this resource.")
		}
	})

	mux.HandleFunc(ProjectPath+"/software_configs/", func(w http.ResponseWriter, req *http.Request) {
		h.record(req)
		if req.Method != "DELETE" {
			writeError(w, http.StatusMethodNotAllowed, "HTTPMethodNotAllowed", "The method is not allowed for this resource.")
			return
		}
		h.delete(w, strings.TrimPrefix(req.URL.Path, ProjectPath+"/software_configs/"))
	})

	return httptest.NewServer(mux)
}

func (h *Heat) record(req *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Requests = append(h.Requests, req.Method+" "+strings.TrimPrefix(req.URL.Path, ProjectPath))
}

func (h *Heat) create(w http.ResponseWriter, req *http.Request) {
	var sc heat.SoftwareConfig
	if err := json.NewDecoder(req.Body).Decode(&sc); err != nil {
		writeError(w, http.StatusBadRequest, "HTTPBadRequest", err.Error())
		return
	}

	h.mu.Lock()
	h.nextID++
	sc.ID = fmt.Sprintf("5c5b7a1e-0000-4000-8000-%012d", h.nextID)
	sc.CreationTime = CreationTime
	h.SoftwareConfigs = append(h.SoftwareConfigs, &sc)
	h.mu.Unlock()

	var record map[string]interface{}
	b, _ := json.Marshal(&sc)
	json.Unmarshal(b, &record)
	if h.Project != "" {
		record["project"] = h.Project
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"software_config": record})
}

func (h *Heat) list(w http.ResponseWriter, req *http.Request) {
	h.mu.Lock()
	configs := h.SoftwareConfigs
	h.mu.Unlock()

	if marker := req.URL.Query().Get("marker"); marker != "" {
		found := false
		for i, sc := range configs {
			if sc.ID == marker {
				configs = configs[i+1:]
				found = true
				break
			}
		}
		if !found {
			writeError(w, http.StatusNotFound, "NotFound", fmt.Sprintf("The config (%s) could not be found.", marker))
			return
		}
	}
	if rawLimit := req.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			writeError(w, http.StatusBadRequest, "HTTPBadRequest", "Only integer is acceptable by 'limit'.")
			return
		}
		if limit < len(configs) {
			configs = configs[:limit]
		}
	}

	// Only summary fields are part of the list.
	summaries := []map[string]string{}
	for _, sc := range configs {
		summaries = append(summaries, map[string]string{
			"id":            sc.ID,
			"name":          sc.Name,
			"group":         sc.Group,
			"creation_time": sc.CreationTime,
		})
	}
	json.NewEncoder(w).Encode(map[string]interface{}{"software_configs": summaries})
}

func (h *Heat) delete(w http.ResponseWriter, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if status, ok := h.DeleteErrors[id]; ok {
		writeError(w, status, "Error", fmt.Sprintf("Unable to delete config %s.", id))
		return
	}
	for i, sc := range h.SoftwareConfigs {
		if sc.ID == id {
			h.SoftwareConfigs = append(h.SoftwareConfigs[:i], h.SoftwareConfigs[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "NotFound", fmt.Sprintf("The config (%s) could not be found.", id))
}

// writeError writes an error in the format used by the orchestration API.
func writeError(w http.ResponseWriter, status int, errType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"code":        status,
		"title":       http.StatusText(status),
		"explanation": "The server could not comply with the request since it is either malformed or otherwise incorrect.",
		"error": map[string]interface{}{
			"message":   message,
			"type":      errType,
			"traceback": nil,
		},
	})
}

// NewEnvironment returns an environment which acts as a "black hole".
func NewEnvironment() *cli.Environment {
	return &cli.Environment{
		Input:  bytes.NewReader(nil),
		Out:    ioutil.Discard,
		ErrOut: ioutil.Discard,
		Fs:     afero.NewMemMapFs(),
		EnvLookup: func(key string) (string, bool) {
			if key == cli.EnvHeatDir {
				return "/heat", true
			}
			return "", false
		},
	}
}

// Context is an api.Context which can be mocked.
type Context struct {
	*cli.Context
	conf *config.Config
}

// Keyring is an in-memory keyring, tokens are indexed by URL.
type Keyring map[string]string

// Token returns the token stored for a URL.
func (k Keyring) Token(url string) (string, error) {
	return k[url], nil
}

// SetToken stores a token for a URL.
func (k Keyring) SetToken(url, token string) error {
	k[url] = token
	return nil
}

// DeleteToken removes the token stored for a URL.
func (k Keyring) DeleteToken(url string) error {
	delete(k, url)
	return nil
}

// NewContext returns a new mock context. Tokens are looked up in an in-memory Keyring
// rather than in the OS keyring.
func NewContext(environment *cli.Environment) *Context {
	if environment == nil {
		environment = NewEnvironment()
	}
	ctx := &Context{
		Context: cli.NewContext(environment),
	}
	ctx.SetKeyring(Keyring{})
	return ctx
}

// SetConfig sets the CLI configuration.
func (ctx *Context) SetConfig(conf *config.Config) {
	ctx.conf = conf
}

// SetHeatURL configures the CLI to target a given orchestration API URL.
func (ctx *Context) SetHeatURL(url string) {
	conf := config.New(config.Opts{
		Fs:        ctx.Fs(),
		EnvLookup: ctx.EnvLookup,
	})
	conf.SetURL(url)
	ctx.conf = conf
}

// Config returns the CLI configuration.
func (ctx *Context) Config() (*config.Config, error) {
	if ctx.conf != nil {
		return ctx.conf, nil
	}
	return ctx.Context.Config()
}

// HeatClient creates an orchestration API client based on the mocked configuration.
func (ctx *Context) HeatClient() (*heat.Client, error) {
	conf, err := ctx.Config()
	if err != nil {
		return nil, err
	}
	httpClient, err := ctx.HTTPClient(conf)
	if err != nil {
		return nil, err
	}
	return heat.NewClient(httpClient), nil
}
