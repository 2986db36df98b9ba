package softwareconfig

import (
	"fmt"
	"io"
	"io/ioutil"
	"sort"

	"github.com/openstack-go/heat-cli/pkg/fsutil"
	"github.com/openstack-go/heat-cli/pkg/heat"
	"github.com/openstack-go/heat-cli/pkg/render"
	"github.com/sirupsen/logrus"
)

// Columns of a created software config, fields returned by the service
// which aren't part of them come after, sorted by name.
var recordColumns = []string{"id", "name", "group", "creation_time", "inputs", "outputs", "options", "config"}

// ListColumns are the columns of a software config list.
var ListColumns = []string{"id", "name", "group", "creation_time"}

// SoftwareConfigsAPI creates, lists, and deletes software configs.
type SoftwareConfigsAPI interface {
	Create(config *heat.SoftwareConfig) (*heat.SoftwareConfig, error)
	List(opts heat.ListOpts) ([]*heat.SoftwareConfig, error)
	Delete(id string) error
}

// Fetcher returns the content behind a path or URL.
type Fetcher interface {
	Fetch(ref string) ([]byte, error)
}

// ManagerOpts are functional options for a Manager.
type ManagerOpts struct {
	// SoftwareConfigs is the software configs API.
	SoftwareConfigs SoftwareConfigsAPI

	// Stacks is the API used to validate software configs before creating them.
	Stacks StacksAPI

	// Fetcher resolves definition and config files.
	Fetcher Fetcher

	// Out is where informational messages are printed to.
	Out io.Writer

	// Logger is the logger for the manager.
	Logger *logrus.Logger
}

// Manager creates, lists, and deletes software configs.
type Manager struct {
	configs SoftwareConfigsAPI
	stacks  StacksAPI
	fetcher Fetcher
	out     io.Writer
	logger  *logrus.Logger
}

// NewManager creates a new software config manager.
func NewManager(opts ManagerOpts) *Manager {
	if opts.Out == nil {
		opts.Out = ioutil.Discard
	}
	if opts.Logger == nil {
		opts.Logger = &logrus.Logger{
			Out:       ioutil.Discard,
			Formatter: &logrus.TextFormatter{},
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.PanicLevel,
		}
	}
	return &Manager{
		configs: opts.SoftwareConfigs,
		stacks:  opts.Stacks,
		fetcher: opts.Fetcher,
		out:     opts.Out,
		logger:  opts.Logger,
	}
}

// CreateOpts are the parameters to create a software config.
type CreateOpts struct {
	// Name is the name of the software config, it is required.
	Name string

	// Group is the tool expected to apply the config, it defaults to DefaultGroup.
	Group string

	// DefinitionRef is an optional path or URL to a document defining inputs, outputs, and options.
	DefinitionRef string

	// ConfigRef is an optional path or URL to the config content (eg. a script).
	ConfigRef string
}

// Create fetches the definition and config, validates the resulting payload,
// and creates the software config. Nothing is created when any step fails.
func (m *Manager) Create(opts CreateOpts) (*render.Record, error) {
	var definition, config []byte
	var err error

	if opts.DefinitionRef != "" {
		m.logger.Infof("Reading definition from %s", opts.DefinitionRef)
		if definition, err = m.fetcher.Fetch(opts.DefinitionRef); err != nil {
			return nil, err
		}
	}
	if opts.ConfigRef != "" {
		m.logger.Infof("Reading config from %s", opts.ConfigRef)
		if config, err = m.fetcher.Fetch(opts.ConfigRef); err != nil {
			return nil, err
		}
		if !fsutil.IsText(config) {
			m.logger.Warnf("%s doesn't look like a text file (%s)", opts.ConfigRef, fsutil.DetectMediaType(config))
		}
	}

	payload, err := BuildPayload(opts.Name, opts.Group, definition, config)
	if err != nil {
		return nil, err
	}

	m.logger.Infof("Validating software config %s", payload.Name)
	if err := Validate(m.stacks, payload); err != nil {
		return nil, err
	}

	m.logger.Infof("Creating software config %s", payload.Name)
	created, err := m.configs.Create(payload.SoftwareConfig())
	if err != nil {
		return nil, err
	}
	return createdRecord(created), nil
}

// createdRecord returns a record with every field of a created software config.
func createdRecord(created *heat.SoftwareConfig) *render.Record {
	columns := append([]string{}, recordColumns...)
	values := []interface{}{
		created.ID,
		created.Name,
		created.Group,
		created.CreationTime,
		created.Inputs,
		created.Outputs,
		created.Options,
		created.Config,
	}

	known := make(map[string]bool, len(recordColumns))
	for _, col := range recordColumns {
		known[col] = true
	}
	var extra []string
	for key := range created.Fields {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		columns = append(columns, key)
		values = append(values, created.Fields[key])
	}
	return render.NewRecord(columns, values)
}

// ListOpts are the pagination parameters of a software config list, zero values are not sent.
type ListOpts struct {
	Limit  int
	Marker string
}

// List returns the software configs as rows of ListColumns, in the order returned by the service.
func (m *Manager) List(opts ListOpts) (*render.Rows, error) {
	m.logger.Debugf("Listing software configs (limit=%d, marker=%q)", opts.Limit, opts.Marker)
	configs, err := m.configs.List(heat.ListOpts{
		Limit:  opts.Limit,
		Marker: opts.Marker,
	})
	if err != nil {
		return nil, err
	}

	var i int
	return render.NewRows(ListColumns, func() ([]interface{}, bool) {
		if i >= len(configs) {
			return nil, false
		}
		config := configs[i]
		i++
		return []interface{}{config.ID, config.Name, config.Group, config.CreationTime}, true
	}), nil
}

// Delete deletes software configs one after the other, in the given order.
//
// Deletion is best-effort, a failure doesn't prevent the remaining IDs from being deleted.
// The returned error is the outcome error, a *DeleteError when at least one deletion failed.
func (m *Manager) Delete(ids []string) (*DeleteOutcome, error) {
	outcome := &DeleteOutcome{}
	for _, id := range ids {
		err := m.configs.Delete(id)
		switch {
		case err == nil:
			m.logger.Infof("Deleted software config %s", id)
		case isNotFound(err):
			fmt.Fprintf(m.out, "Software config with ID %s not found\n", id)
		default:
			m.logger.Infof("Couldn't delete software config %s: %s", id, err)
		}
		outcome.Results = append(outcome.Results, DeleteResult{ID: id, Err: err})
	}
	return outcome, outcome.Err()
}
