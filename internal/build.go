package internal

import (
	"errors"
	"strings"

	"github.com/MrSnakeDoc/urlb/internal/compose"
	"github.com/MrSnakeDoc/urlb/internal/errs"
	"github.com/MrSnakeDoc/urlb/internal/logger"
	"github.com/MrSnakeDoc/urlb/internal/middleware"
	"github.com/MrSnakeDoc/urlb/internal/urlbuilder"

	"github.com/spf13/cobra"
)

func NewBuildCmd() *cobra.Command {
	var c compose.Composer

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a single URL from its parts",
		Long: `Build a URL by concatenating base URL, route, endpoint and query string.
Nothing is escaped: parts are written exactly as given.

Query values are read as YAML scalars, so false, 0, "" and null are falsy
and dropped unless --retain-null is set.`,
		Example: `  urlb build --base https://api.example.com --route /v1 --endpoint /users --query active=true --query deleted=false
  urlb build --base https://api.example.com --route /v1 --endpoint /users --raw-query "page=2"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(c.Pairs) > 0 && c.RawQuery != "" {
				return middleware.UsageError(errs.QueryWithRawQuery)
			}

			u, err := c.Execute()
			switch {
			case errors.Is(err, urlbuilder.ErrMalformedURL):
				return middleware.UsageError(errs.MissingRequiredPart)
			case errors.Is(err, compose.ErrInvalidPair):
				return middleware.UsageError(errs.InvalidQueryPair, invalidPair(c.Pairs))
			case err != nil:
				return middleware.Logged(err)
			}

			warnEmptyQuery("", u)
			logger.Result("", u)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&c.BaseURL, "base", "b", "", "Base URL, e.g. https://api.example.com")
	f.StringVarP(&c.Route, "route", "r", "", "Route, e.g. /v1")
	f.StringVarP(&c.Endpoint, "endpoint", "e", "", "Endpoint, e.g. /users")
	f.StringArrayVarP(&c.Pairs, "query", "Q", nil, "Query parameter as key=value (repeatable, order is kept)")
	f.StringVar(&c.RawQuery, "raw-query", "", "Ready-made query string, with or without the leading '?'")
	f.BoolVar(&c.RetainNull, "retain-null", false, "Keep parameters whose value is falsy")

	return cmd
}

func invalidPair(pairs []string) string {
	for _, p := range pairs {
		if _, _, err := compose.ParsePair(p); err != nil {
			return p
		}
	}
	return ""
}

// warnEmptyQuery flags a URL whose query string was reduced to a bare '?',
// which happens when every value was falsy and dropped.
func warnEmptyQuery(name, u string) {
	if !strings.HasSuffix(u, "?") {
		return
	}
	if name == "" {
		logger.Warn("every query value was dropped, the URL ends with '?'")
		return
	}
	logger.Warn("%s: every query value was dropped, the URL ends with '?'", name)
}
