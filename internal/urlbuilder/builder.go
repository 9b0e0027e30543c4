package urlbuilder

// URLBuilder accumulates URL parts and produces the final string once.
// It performs no ordering checks of its own; use Builder for the typed chain.
type URLBuilder struct {
	rec *Record
}

// New returns an unchecked builder exposing every setter and Build.
// A nil *URLBuilder behaves like a consumed one.
func New() *URLBuilder {
	return &URLBuilder{rec: &Record{}}
}

func (b *URLBuilder) SetBaseURL(baseURL string) *URLBuilder {
	if b != nil && b.rec != nil {
		b.rec.BaseURL = baseURL
	}
	return b
}

func (b *URLBuilder) SetRoute(route string) *URLBuilder {
	if b != nil && b.rec != nil {
		b.rec.Route = route
	}
	return b
}

func (b *URLBuilder) SetEndpoint(endpoint string) *URLBuilder {
	if b != nil && b.rec != nil {
		b.rec.Endpoint = endpoint
	}
	return b
}

// SetQueryStringRetainNullValues formats params into the query string,
// keeping entries whose value is falsy.
func (b *URLBuilder) SetQueryStringRetainNullValues(params any) *URLBuilder {
	if b != nil && b.rec != nil {
		b.rec.Params = FormatQuery(params, true)
	}
	return b
}

// SetSanitizedQueryString formats params into the query string,
// dropping entries whose value is falsy.
func (b *URLBuilder) SetSanitizedQueryString(params any) *URLBuilder {
	if b != nil && b.rec != nil {
		b.rec.Params = FormatQuery(params, false)
	}
	return b
}

// Build concatenates base URL, route, endpoint and query string.
// The builder is consumed by the call, successful or not.
func (b *URLBuilder) Build() (string, error) {
	if b == nil || b.rec == nil {
		return "", ErrBuilderUsed
	}
	rec := b.rec
	b.rec = nil

	if !rec.complete() {
		return "", ErrMalformedURL
	}
	return rec.String(), nil
}
