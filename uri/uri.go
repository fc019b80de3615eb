// Package uri marshals object values to and from parsed URIs.
//
// It is the binding surface between the scripting side of a host, which
// describes endpoints as strings or maps, and Go's URL machinery. Malformed
// input surfaces as an errz.ErrIllegalParams error; the package holds no
// state of its own.
package uri

import (
	"net/url"
	"strings"

	"github.com/cloudcmds/funcbox/errz"
	"github.com/cloudcmds/funcbox/object"
)

// URI is one parsed endpoint. Params holds query parameters; a parameter
// may carry multiple values.
type URI struct {
	Scheme  string
	Host    string
	Service string // port number or service name
	Path    string // set for unix socket style URIs
	Params  url.Values
}

// Parse parses a URI of the form "scheme://host:service", "host:service" or
// "/unix.socket".
func Parse(s string) (*URI, error) {
	if s == "" {
		return &URI{Params: url.Values{}}, nil
	}
	var raw string
	switch {
	case strings.Contains(s, "://"):
		raw = s
	case strings.HasPrefix(s, "/"):
		raw = "unix://" + s
	default:
		// Bare host:service form.
		raw = "//" + s
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errz.IllegalParamsf(
			"Incorrect URI: expected host:service or /unix.socket")
	}
	out := &URI{
		Host:    u.Hostname(),
		Service: u.Port(),
		Params:  url.Values{},
	}
	if strings.Contains(s, "://") {
		out.Scheme = u.Scheme
	}
	if u.Scheme == "unix" || strings.HasPrefix(s, "/") {
		out.Scheme = "unix"
		out.Path = u.Path
		out.Host = ""
	}
	for name, values := range u.Query() {
		for _, v := range values {
			out.Params.Add(name, v)
		}
	}
	if out.Host == "" && out.Path == "" {
		return nil, errz.IllegalParamsf(
			"Incorrect URI: expected host:service or /unix.socket")
	}
	return out, nil
}

// AddParam adds one query parameter value. With overwrite set, existing
// values for the name are dropped first; without it, a name that already has
// a value keeps it and the new value is ignored.
func (u *URI) AddParam(name, value string, overwrite bool) {
	if overwrite {
		u.Params.Del(name)
	} else if len(u.Params[name]) != 0 {
		return
	}
	u.Params.Add(name, value)
}

// String reassembles the URI.
func (u *URI) String() string {
	var b strings.Builder
	if u.Scheme != "" && u.Scheme != "unix" {
		b.WriteString(u.Scheme)
		b.WriteString("://")
	}
	if u.Path != "" {
		b.WriteString(u.Path)
	} else {
		b.WriteString(u.Host)
		if u.Service != "" {
			b.WriteString(":")
			b.WriteString(u.Service)
		}
	}
	if len(u.Params) > 0 {
		b.WriteString("?")
		b.WriteString(u.Params.Encode())
	}
	return b.String()
}

// Object converts the URI to a map object for the scripting side. Query
// parameter values are lists, since a parameter may repeat.
func (u *URI) Object() *object.Map {
	items := map[string]object.Object{}
	if u.Scheme != "" {
		items["scheme"] = object.NewString(u.Scheme)
	}
	if u.Host != "" {
		items["host"] = object.NewString(u.Host)
	}
	if u.Service != "" {
		items["service"] = object.NewString(u.Service)
	}
	if u.Path != "" {
		items["path"] = object.NewString(u.Path)
	}
	if len(u.Params) > 0 {
		params := map[string]object.Object{}
		for name, values := range u.Params {
			params[name] = object.NewStringList(values)
		}
		items["params"] = object.NewMap(params)
	}
	return object.NewMap(items)
}

// Set is an ordered collection of URIs.
type Set struct {
	URIs []*URI
}

// Add appends a URI to the set.
func (s *Set) Add(u *URI) {
	s.URIs = append(s.URIs, u)
}

// Object converts the set to a list object of URI maps.
func (s *Set) Object() *object.List {
	items := make([]object.Object, 0, len(s.URIs))
	for _, u := range s.URIs {
		items = append(items, u.Object())
	}
	return object.NewList(items)
}
