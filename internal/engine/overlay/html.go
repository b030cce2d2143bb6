package overlay

import (
	"net/url"
	"regexp"

	"go.trai.ch/brandlay/internal/core/domain"
)

// devOrigin is the base against which request paths are parsed.
var devOrigin = &url.URL{Scheme: "http", Host: "localhost"}

// entryScriptPattern matches the module script tag that loads clientEntry.
func entryScriptPattern(clientEntry string) *regexp.Regexp {
	return regexp.MustCompile(`(<script\s+type="module"\s+src=")(` + regexp.QuoteMeta(clientEntry) + `)("\s*></script>)`)
}

// TransformIndexHTML tags the client entry script of a dev-server page with
// the brand named by the request URL. Outside dev mode, for URLs without a
// known brand, and for URLs that do not parse, html is returned unchanged.
func (e *Engine) TransformIndexHTML(html, requestURL string) string {
	if e.cfg.Mode != domain.ModeDev || requestURL == "" {
		return html
	}

	ref, err := url.Parse(requestURL)
	if err != nil {
		e.log.Debug("ignoring malformed request url", "url", requestURL)
		return html
	}
	brand := devOrigin.ResolveReference(ref).Query().Get(domain.QueryBrand)
	if brand == "" || !e.caches.Snapshot().Brands(e.srcRoot).Has(brand) {
		return html
	}

	loc := e.entryScript.FindStringSubmatchIndex(html)
	if loc == nil {
		return html
	}
	tagged := domain.AppendQuery(html[loc[4]:loc[5]], domain.QueryBrand, brand)
	return html[:loc[4]] + tagged + html[loc[5]:]
}
