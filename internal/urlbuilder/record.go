package urlbuilder

// Record holds the parts of a URL under construction.
// Params is empty or starts with '?'.
type Record struct {
	BaseURL  string
	Route    string
	Endpoint string
	Params   string
}

func (r *Record) complete() bool {
	return r.BaseURL != "" && r.Route != "" && r.Endpoint != ""
}

func (r *Record) String() string {
	return r.BaseURL + r.Route + r.Endpoint + r.Params
}
