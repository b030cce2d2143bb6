package domain

import (
	"net/url"
	"strings"
)

const (
	// VirtualPrefix marks ids owned by a plugin rather than the filesystem.
	VirtualPrefix = "\x00"
	// VirtualNamespace is the user-facing prefix of virtual module specifiers.
	VirtualNamespace = "virtual:"
	// DevFSPrefix is the dev-server prefix for absolute filesystem ids outside the root.
	DevFSPrefix = "/@fs"
)

// Query keys understood by the overlay engine.
const (
	QueryBrand       = "brand"
	QueryLegacyBrand = "__brand"
	// QueryBridged marks the constituent imports of a style bridge so they are
	// not routed through the overlay a second time.
	QueryBridged = "__brand_bridged"
)

// ResolveOptions carries host resolution flags through the engine untouched.
type ResolveOptions struct {
	// SSR is set when the request comes from the server build graph.
	SSR bool
	// IsEntry is set when the specifier is a build input.
	IsEntry bool
}

// ModuleRequest is a single resolution request from the host pipeline.
type ModuleRequest struct {
	Specifier string
	Importer  string
	Options   ResolveOptions
}

// ResolvedModule is the result of resolving a specifier: a filesystem path
// (or virtual id) plus an optional query string, joined in ID.
type ResolvedModule struct {
	ID       string
	External bool
}

// Path returns the id without its query suffix.
func (m ResolvedModule) Path() string {
	return StripQuery(m.ID)
}

// Query returns the raw query string without the leading '?'.
func (m ResolvedModule) Query() string {
	_, q, _ := strings.Cut(m.ID, "?")
	return q
}

// IsVirtual reports whether the module is plugin-owned. Virtual modules are
// never brand-overlaid.
func (m ResolvedModule) IsVirtual() bool {
	return IsVirtual(m.ID)
}

// IsVirtual reports whether id names a virtual module.
func IsVirtual(id string) bool {
	p := StripQuery(id)
	return strings.HasPrefix(p, VirtualPrefix) || strings.HasPrefix(p, VirtualNamespace)
}

// StripQuery removes everything from the first '?' onwards.
func StripQuery(id string) string {
	p, _, _ := strings.Cut(id, "?")
	return p
}

// AppendQuery appends key=value to id, choosing '?' or '&' as needed.
func AppendQuery(id, key, value string) string {
	sep := "?"
	if strings.Contains(id, "?") {
		sep = "&"
	}
	return id + sep + key + "=" + url.QueryEscape(value)
}

// RemoveQueryKeys drops every occurrence of the given keys from the query of
// id, keeping the remaining pairs in their original order.
func RemoveQueryKeys(id string, keys ...string) string {
	p, q, ok := strings.Cut(id, "?")
	if !ok {
		return id
	}
	kept := make([]string, 0, strings.Count(q, "&")+1)
	for _, pair := range strings.Split(q, "&") {
		if pair == "" {
			continue
		}
		k, _, _ := strings.Cut(pair, "=")
		if name, err := url.QueryUnescape(k); err == nil {
			k = name
		}
		drop := false
		for _, key := range keys {
			if k == key {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, pair)
		}
	}
	if len(kept) == 0 {
		return p
	}
	return p + "?" + strings.Join(kept, "&")
}

// RequestAnnotations are the brand markers carried in the query of a
// specifier or importer id.
type RequestAnnotations struct {
	// Brand is the value of the public `brand` key.
	Brand string
	// LegacyBrand is the value of the internal `__brand` key.
	LegacyBrand string
	// Bridged is set when the id is a constituent of a style bridge.
	Bridged bool
}

// ParseAnnotations extracts the brand markers from an id. Ids without a
// query, and queries that fail to parse, carry no annotations.
func ParseAnnotations(id string) RequestAnnotations {
	_, q, ok := strings.Cut(id, "?")
	if !ok {
		return RequestAnnotations{}
	}
	values, err := url.ParseQuery(q)
	if err != nil {
		return RequestAnnotations{}
	}
	return RequestAnnotations{
		Brand:       values.Get(QueryBrand),
		LegacyBrand: values.Get(QueryLegacyBrand),
		Bridged:     values.Has(QueryBridged),
	}
}

// Candidates returns the annotated brands in precedence order: `brand`
// first, then `__brand`. Empty values are skipped.
func (a RequestAnnotations) Candidates() []string {
	out := make([]string, 0, 2)
	if a.Brand != "" {
		out = append(out, a.Brand)
	}
	if a.LegacyBrand != "" && a.LegacyBrand != a.Brand {
		out = append(out, a.LegacyBrand)
	}
	return out
}

var jsEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)

// JSString renders s as a single-quoted JavaScript string literal.
func JSString(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}
