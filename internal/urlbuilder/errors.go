package urlbuilder

import "errors"

var (
	// ErrMalformedURL is returned by Build when the base URL, route or endpoint is empty.
	ErrMalformedURL = errors.New("the url is not formatted correctly")

	// ErrBuilderUsed is returned when Build is called on a builder that was already built.
	ErrBuilderUsed = errors.New("url builder already used")
)
