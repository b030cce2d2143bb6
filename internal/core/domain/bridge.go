package domain

import (
	"net/url"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// BridgePrefix starts every style bridge id. The leading NUL keeps the id out
// of the filesystem resolver and marks it virtual.
const BridgePrefix = VirtualPrefix + "brand-bridge:"

// BridgeKind discriminates how a style bridge composes its two sides.
type BridgeKind uint8

const (
	// BridgePlain imports both stylesheets for their side effects.
	BridgePlain BridgeKind = iota
	// BridgeModule merges the class-name mappings exported by two CSS modules.
	BridgeModule
)

// String returns the canonical name of the kind.
func (k BridgeKind) String() string {
	if k == BridgeModule {
		return "module"
	}
	return "plain"
}

// parseBridgeKind is the inverse of BridgeKind.String.
func parseBridgeKind(s string) (BridgeKind, bool) {
	switch s {
	case "plain":
		return BridgePlain, true
	case "module":
		return BridgeModule, true
	default:
		return 0, false
	}
}

// StyleKind classifies a stylesheet path by the CSS-module naming convention.
func StyleKind(path string) BridgeKind {
	if strings.Contains(filepath.Base(StripQuery(path)), ".module.") {
		return BridgeModule
	}
	return BridgePlain
}

// Bridge pairs a base stylesheet with its brand overlay.
type Bridge struct {
	Base    string
	Overlay string
	Kind    BridgeKind
}

// ID encodes the bridge into a self-describing virtual module id, so that
// loading it needs no state besides the id itself.
func (b Bridge) ID() string {
	v := url.Values{}
	v.Set("base", b.Base)
	v.Set("overlay", b.Overlay)
	return BridgePrefix + b.Kind.String() + "?" + v.Encode()
}

// IsBridgeID reports whether id was produced by Bridge.ID.
func IsBridgeID(id string) bool {
	return strings.HasPrefix(id, BridgePrefix)
}

// ParseBridgeID decodes an id produced by Bridge.ID.
func ParseBridgeID(id string) (Bridge, error) {
	rest, ok := strings.CutPrefix(id, BridgePrefix)
	if !ok {
		return Bridge{}, zerr.With(ErrMalformedBridgeID, "id", id)
	}
	kindName, query, _ := strings.Cut(rest, "?")
	kind, ok := parseBridgeKind(kindName)
	if !ok {
		return Bridge{}, zerr.With(zerr.With(ErrMalformedBridgeID, "id", id), "kind", kindName)
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return Bridge{}, zerr.With(zerr.With(ErrMalformedBridgeID, "id", id), "cause", err.Error())
	}
	b := Bridge{Base: values.Get("base"), Overlay: values.Get("overlay"), Kind: kind}
	if b.Base == "" || b.Overlay == "" {
		return Bridge{}, zerr.With(ErrMalformedBridgeID, "id", id)
	}
	return b, nil
}
