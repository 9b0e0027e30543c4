package urlbuilder

// The handle types below encode which required setters are still missing.
// A required setter only exists on handles that have not seen it yet, and
// Build only exists on Ready, so a chain that skips a required part does not
// compile. The query setters are available on every handle.

// Builder starts a typed chain. Build becomes reachable once SetBaseURL,
// SetRoute and SetEndpoint have each been called, in any order.
func Builder() Start {
	return Start{b: New()}
}

// Start is a handle with no required part set.
type Start struct{ b *URLBuilder }

func (s Start) SetBaseURL(v string) NeedRouteEndpoint {
	return NeedRouteEndpoint{b: s.b.SetBaseURL(v)}
}

func (s Start) SetRoute(v string) NeedBaseEndpoint {
	return NeedBaseEndpoint{b: s.b.SetRoute(v)}
}

func (s Start) SetEndpoint(v string) NeedBaseRoute {
	return NeedBaseRoute{b: s.b.SetEndpoint(v)}
}

func (s Start) SetQueryStringRetainNullValues(params any) Start {
	s.b.SetQueryStringRetainNullValues(params)
	return s
}

func (s Start) SetSanitizedQueryString(params any) Start {
	s.b.SetSanitizedQueryString(params)
	return s
}

// NeedRouteEndpoint has the base URL set.
type NeedRouteEndpoint struct{ b *URLBuilder }

func (s NeedRouteEndpoint) SetRoute(v string) NeedEndpoint {
	return NeedEndpoint{b: s.b.SetRoute(v)}
}

func (s NeedRouteEndpoint) SetEndpoint(v string) NeedRoute {
	return NeedRoute{b: s.b.SetEndpoint(v)}
}

func (s NeedRouteEndpoint) SetQueryStringRetainNullValues(params any) NeedRouteEndpoint {
	s.b.SetQueryStringRetainNullValues(params)
	return s
}

func (s NeedRouteEndpoint) SetSanitizedQueryString(params any) NeedRouteEndpoint {
	s.b.SetSanitizedQueryString(params)
	return s
}

// NeedBaseEndpoint has the route set.
type NeedBaseEndpoint struct{ b *URLBuilder }

func (s NeedBaseEndpoint) SetBaseURL(v string) NeedEndpoint {
	return NeedEndpoint{b: s.b.SetBaseURL(v)}
}

func (s NeedBaseEndpoint) SetEndpoint(v string) NeedBaseURL {
	return NeedBaseURL{b: s.b.SetEndpoint(v)}
}

func (s NeedBaseEndpoint) SetQueryStringRetainNullValues(params any) NeedBaseEndpoint {
	s.b.SetQueryStringRetainNullValues(params)
	return s
}

func (s NeedBaseEndpoint) SetSanitizedQueryString(params any) NeedBaseEndpoint {
	s.b.SetSanitizedQueryString(params)
	return s
}

// NeedBaseRoute has the endpoint set.
type NeedBaseRoute struct{ b *URLBuilder }

func (s NeedBaseRoute) SetBaseURL(v string) NeedRoute {
	return NeedRoute{b: s.b.SetBaseURL(v)}
}

func (s NeedBaseRoute) SetRoute(v string) NeedBaseURL {
	return NeedBaseURL{b: s.b.SetRoute(v)}
}

func (s NeedBaseRoute) SetQueryStringRetainNullValues(params any) NeedBaseRoute {
	s.b.SetQueryStringRetainNullValues(params)
	return s
}

func (s NeedBaseRoute) SetSanitizedQueryString(params any) NeedBaseRoute {
	s.b.SetSanitizedQueryString(params)
	return s
}

// NeedEndpoint has the base URL and route set.
type NeedEndpoint struct{ b *URLBuilder }

func (s NeedEndpoint) SetEndpoint(v string) Ready {
	return Ready{b: s.b.SetEndpoint(v)}
}

func (s NeedEndpoint) SetQueryStringRetainNullValues(params any) NeedEndpoint {
	s.b.SetQueryStringRetainNullValues(params)
	return s
}

func (s NeedEndpoint) SetSanitizedQueryString(params any) NeedEndpoint {
	s.b.SetSanitizedQueryString(params)
	return s
}

// NeedRoute has the base URL and endpoint set.
type NeedRoute struct{ b *URLBuilder }

func (s NeedRoute) SetRoute(v string) Ready {
	return Ready{b: s.b.SetRoute(v)}
}

func (s NeedRoute) SetQueryStringRetainNullValues(params any) NeedRoute {
	s.b.SetQueryStringRetainNullValues(params)
	return s
}

func (s NeedRoute) SetSanitizedQueryString(params any) NeedRoute {
	s.b.SetSanitizedQueryString(params)
	return s
}

// NeedBaseURL has the route and endpoint set.
type NeedBaseURL struct{ b *URLBuilder }

func (s NeedBaseURL) SetBaseURL(v string) Ready {
	return Ready{b: s.b.SetBaseURL(v)}
}

func (s NeedBaseURL) SetQueryStringRetainNullValues(params any) NeedBaseURL {
	s.b.SetQueryStringRetainNullValues(params)
	return s
}

func (s NeedBaseURL) SetSanitizedQueryString(params any) NeedBaseURL {
	s.b.SetSanitizedQueryString(params)
	return s
}

// Ready has every required part set and exposes Build.
type Ready struct{ b *URLBuilder }

func (s Ready) SetQueryStringRetainNullValues(params any) Ready {
	s.b.SetQueryStringRetainNullValues(params)
	return s
}

func (s Ready) SetSanitizedQueryString(params any) Ready {
	s.b.SetSanitizedQueryString(params)
	return s
}

// Build returns the URL and consumes the underlying builder.
// Empty parts still fail with ErrMalformedURL.
func (s Ready) Build() (string, error) {
	return s.b.Build()
}
