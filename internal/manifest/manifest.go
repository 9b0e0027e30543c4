package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/MrSnakeDoc/urlb/internal/urlbuilder"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "urlb.yml"

var (
	ErrNoName          = errors.New("endpoint without a name")
	ErrDuplicateName   = errors.New("duplicate endpoint name")
	ErrQueryKind       = errors.New("query must be a string or a mapping")
	ErrUnknownEndpoint = errors.New("unknown endpoint")
)

// Endpoint describes one URL of the manifest.
type Endpoint struct {
	Name       string    `yaml:"name"`
	BaseURL    string    `yaml:"base_url,omitempty"`
	Route      string    `yaml:"route"`
	Endpoint   string    `yaml:"endpoint"`
	Query      yaml.Node `yaml:"query,omitempty"`
	RetainNull bool      `yaml:"retain_null,omitempty"`
}

// Manifest is the decoded urlb.yml. BaseURL is the default for endpoints
// that do not set their own.
type Manifest struct {
	BaseURL   string     `yaml:"base_url,omitempty"`
	Endpoints []Endpoint `yaml:"endpoints"`
}

// Result is the outcome of resolving one endpoint.
type Result struct {
	Name string
	URL  string
	Err  error
}

func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return m, nil
}

func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every endpoint has a unique name and a usable query.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Endpoints))
	for i, e := range m.Endpoints {
		if e.Name == "" {
			return fmt.Errorf("endpoint #%d: %w", i+1, ErrNoName)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = struct{}{}

		if _, err := e.Params(); err != nil {
			return fmt.Errorf("endpoint %s: %w", e.Name, err)
		}
	}
	return nil
}

func (m *Manifest) Find(name string) (*Endpoint, bool) {
	for i := range m.Endpoints {
		if m.Endpoints[i].Name == name {
			return &m.Endpoints[i], true
		}
	}
	return nil, false
}

func (m *Manifest) Names() []string {
	names := make([]string, len(m.Endpoints))
	for i, e := range m.Endpoints {
		names[i] = e.Name
	}
	return names
}

// Params converts the query node to builder input: nil when absent or null,
// a string for scalars, an ordered urlbuilder.Query for mappings. Scalar
// values of a mapping keep their YAML text (01234 stays 01234).
func (e *Endpoint) Params() (any, error) {
	n := &e.Query
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	case yaml.MappingNode:
		q := make(urlbuilder.Query, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := mappingValue(n.Content[i+1])
			if err != nil {
				return nil, fmt.Errorf("query key %q: %w", key, err)
			}
			q = q.Add(key, v)
		}
		return q, nil
	default:
		return nil, fmt.Errorf("%w (line %d)", ErrQueryKind, n.Line)
	}
}

func mappingValue(n *yaml.Node) (any, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode {
		return ScalarValue(n)
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Resolve builds the URL of e, falling back to the manifest base URL.
func (m *Manifest) Resolve(e *Endpoint) (string, error) {
	params, err := e.Params()
	if err != nil {
		return "", err
	}

	base := e.BaseURL
	if base == "" {
		base = m.BaseURL
	}

	ready := urlbuilder.Builder().
		SetBaseURL(base).
		SetRoute(e.Route).
		SetEndpoint(e.Endpoint)

	if e.RetainNull {
		ready = ready.SetQueryStringRetainNullValues(params)
	} else {
		ready = ready.SetSanitizedQueryString(params)
	}

	return ready.Build()
}

// RenderAll resolves the named endpoints, or every endpoint when names is empty.
// Unknown names produce a Result carrying ErrUnknownEndpoint.
func (m *Manifest) RenderAll(names []string) []Result {
	if len(names) == 0 {
		names = m.Names()
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		e, ok := m.Find(name)
		if !ok {
			results = append(results, Result{Name: name, Err: ErrUnknownEndpoint})
			continue
		}
		u, err := m.Resolve(e)
		results = append(results, Result{Name: name, URL: u, Err: err})
	}
	return results
}
