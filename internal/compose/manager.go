package compose

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/urlb/internal/logger"
	"github.com/MrSnakeDoc/urlb/internal/manifest"
	"github.com/MrSnakeDoc/urlb/internal/urlbuilder"

	"gopkg.in/yaml.v3"
)

var ErrInvalidPair = errors.New("expected key=value")

// Composer builds one URL from command line parts.
type Composer struct {
	BaseURL    string
	Route      string
	Endpoint   string
	Pairs      []string // key=value, kept in order
	RawQuery   string
	RetainNull bool
}

func (c *Composer) Execute() (string, error) {
	params, err := c.params()
	if err != nil {
		return "", err
	}

	ready := urlbuilder.Builder().
		SetBaseURL(c.BaseURL).
		SetRoute(c.Route).
		SetEndpoint(c.Endpoint)

	if c.RetainNull {
		ready = ready.SetQueryStringRetainNullValues(params)
	} else {
		ready = ready.SetSanitizedQueryString(params)
	}

	u, err := ready.Build()
	if err != nil {
		return "", err
	}
	logger.Debug("Built %s", u)
	return u, nil
}

func (c *Composer) params() (any, error) {
	if c.RawQuery != "" {
		return c.RawQuery, nil
	}
	if len(c.Pairs) == 0 {
		return nil, nil
	}

	q := make(urlbuilder.Query, 0, len(c.Pairs))
	for _, pair := range c.Pairs {
		k, v, err := ParsePair(pair)
		if err != nil {
			return nil, err
		}
		q = q.Add(k, v)
	}
	return q, nil
}

// ParsePair splits key=value on the first '='. The value is written as typed;
// its YAML reading only decides falsiness, so "false", "0" and "null" are
// dropped by a sanitized build. "key=" is an empty string.
func ParsePair(pair string) (string, any, error) {
	k, raw, ok := strings.Cut(pair, "=")
	if !ok || k == "" {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidPair, pair)
	}
	if raw == "" {
		return k, "", nil
	}
	return k, scalar(raw), nil
}

func scalar(raw string) urlbuilder.Scalar {
	text := urlbuilder.Scalar{Text: raw}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil || len(doc.Content) != 1 {
		return text
	}

	n := doc.Content[0]
	if n.Kind != yaml.ScalarNode {
		return text
	}

	v, err := manifest.ScalarValue(n)
	if err != nil {
		return text
	}
	if v.Text != "null" {
		v.Text = raw
	}
	return v
}
