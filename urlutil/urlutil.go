// Package urlutil reads query strings and splits URLs into the legacy
// node.js url.parse shape.
package urlutil

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when an href cannot be parsed or decoded.
var ErrInvalidURL = errors.New("invalid url")

// URL is a parsed href. Absent parts are empty strings.
type URL struct {
	Protocol string `json:"protocol"` // "http:"
	Slashes  bool   `json:"slashes"`  // whether "//" follows the protocol
	Auth     string `json:"auth"`     // "user:pass", decoded
	Host     string `json:"host"`     // hostname with port
	Port     string `json:"port"`
	Hostname string `json:"hostname"`
	Hash     string `json:"hash"`     // "#frag"
	Search   string `json:"search"`   // "?a=1"
	Query    string `json:"query"`    // "a=1"
	Pathname string `json:"pathname"` // "/p"
	Path     string `json:"path"`     // pathname plus search
	Href     string `json:"href"`     // normalized href
}

// Parse splits href into its components. Hosts are lowercased and an empty
// path after a host becomes "/".
func Parse(href string) (*URL, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return nil, fmt.Errorf("%w: empty href", ErrInvalidURL)
	}

	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	out := &URL{
		Host:     strings.ToLower(u.Host),
		Port:     u.Port(),
		Hostname: strings.ToLower(u.Hostname()),
		Query:    u.RawQuery,
		Pathname: u.EscapedPath(),
	}

	rest := href
	if u.Scheme != "" {
		out.Protocol = u.Scheme + ":"
		rest = href[len(u.Scheme)+1:]
	}
	out.Slashes = strings.HasPrefix(rest, "//")

	if u.User != nil {
		out.Auth = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			out.Auth += ":" + pw
		}
	}

	if u.RawQuery != "" || u.ForceQuery {
		out.Search = "?" + u.RawQuery
	}
	if u.Fragment != "" {
		out.Hash = "#" + u.EscapedFragment()
	}
	if u.Opaque != "" {
		out.Pathname = u.Opaque
	}
	if out.Pathname == "" && out.Host != "" {
		out.Pathname = "/"
	}
	out.Path = out.Pathname + out.Search

	var b strings.Builder
	b.WriteString(out.Protocol)
	if out.Slashes {
		b.WriteString("//")
	}
	if u.User != nil {
		b.WriteString(u.User.String())
		b.WriteByte('@')
	}
	b.WriteString(out.Host)
	b.WriteString(out.Path)
	b.WriteString(out.Hash)
	out.Href = b.String()

	return out, nil
}

// String returns the normalized href.
func (u *URL) String() string {
	return u.Href
}

// Values decodes the query of u with QueryString semantics.
func (u *URL) Values() (map[string]string, error) {
	return decodeQuery(u.Query)
}

// QueryString decodes the query component of href into a map. Pairs are
// split on "&" and then on the first "="; keys and values are percent
// decoded without treating "+" as a space. A key without "=" maps to "", a
// repeated key keeps its last value and empty pairs are skipped. An href
// without "?" yields an empty map.
func QueryString(href string) (map[string]string, error) {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}

	i := strings.IndexByte(href, '?')
	if i < 0 {
		return map[string]string{}, nil
	}

	return decodeQuery(href[i+1:])
}

func decodeQuery(query string) (map[string]string, error) {
	args := make(map[string]string)

	for _, item := range strings.Split(query, "&") {
		if item == "" {
			continue
		}

		rawKey, rawVal, _ := strings.Cut(item, "=")

		key, err := url.PathUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: query key %q: %w", ErrInvalidURL, rawKey, err)
		}

		val, err := url.PathUnescape(rawVal)
		if err != nil {
			return nil, fmt.Errorf("%w: query value %q: %w", ErrInvalidURL, rawVal, err)
		}

		args[key] = val
	}

	return args, nil
}
