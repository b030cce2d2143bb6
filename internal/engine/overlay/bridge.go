package overlay

import (
	"strings"

	"go.trai.ch/brandlay/internal/core/domain"
)

// bridgedSpecifier marks a bridge constituent so that resolving it skips the
// overlay logic.
func bridgedSpecifier(path string) string {
	return path + "?" + domain.QueryBridged
}

// PlainBridgeSource imports both stylesheets for their side effects, base
// first so the overlay wins the cascade.
func PlainBridgeSource(b domain.Bridge) string {
	return "import " + domain.JSString(bridgedSpecifier(b.Base)) + "\n" +
		"import " + domain.JSString(bridgedSpecifier(b.Overlay)) + "\n"
}

// ModuleBridgeSource imports both CSS modules and merges their class-name
// mappings at runtime.
func ModuleBridgeSource(b domain.Bridge) string {
	var sb strings.Builder
	sb.WriteString("import base from " + domain.JSString(bridgedSpecifier(b.Base)) + "\n")
	sb.WriteString("import overlay from " + domain.JSString(bridgedSpecifier(b.Overlay)) + "\n")
	sb.WriteString("\n")
	sb.WriteString("const merged = { ...base }\n")
	sb.WriteString("for (const [key, value] of Object.entries(overlay)) {\n")
	sb.WriteString("  merged[key] = Object.prototype.hasOwnProperty.call(base, key) ? base[key] + ' ' + value : value\n")
	sb.WriteString("}\n")
	sb.WriteString("\n")
	sb.WriteString("export default merged\n")
	return sb.String()
}

// BridgeSource renders the module body for b.
func BridgeSource(b domain.Bridge) string {
	if b.Kind == domain.BridgeModule {
		return ModuleBridgeSource(b)
	}
	return PlainBridgeSource(b)
}
