package domain

import "strings"

// Entrypoints is the declared list of routable components.
type Entrypoints struct {
	Name  string
	Paths []string
}

// NormalizeEntrypoint turns a declared path into a root-relative id under the
// source prefix: "entries/admin/App.tsx" and "src/entries/admin/App.tsx" both
// become "/src/entries/admin/App.tsx". Backslashes are converted to slashes.
func NormalizeEntrypoint(raw, srcPrefix string) string {
	p := strings.ReplaceAll(strings.TrimSpace(raw), `\`, "/")
	if strings.HasPrefix(p, "/") {
		return p
	}
	bare := strings.TrimPrefix(srcPrefix, "/") + "/"
	if strings.HasPrefix(p, bare) {
		return "/" + p
	}
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	return srcPrefix + "/" + p
}

// RouteSegment derives the URL segment that serves an entrypoint: the first
// segment after "<src>/entries/", else the first segment after "<src>/", else "main".
func RouteSegment(raw, srcPrefix string) string {
	p := NormalizeEntrypoint(raw, srcPrefix)
	if _, after, ok := strings.Cut(p, srcPrefix+"/entries/"); ok {
		if seg, _, _ := strings.Cut(after, "/"); seg != "" {
			return seg
		}
	}
	rest := strings.TrimPrefix(p, srcPrefix+"/")
	for _, seg := range strings.Split(rest, "/") {
		if seg != "" {
			return seg
		}
	}
	return DefaultClientEntryName
}
