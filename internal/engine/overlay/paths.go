package overlay

import (
	"path/filepath"
	"strings"

	"go.trai.ch/brandlay/internal/core/domain"
)

// ToFSPath converts a resolved id into a filesystem path: the query is
// dropped, a "/@fs" dev prefix is undone and root-relative ids under the
// source prefix are joined onto root.
func ToFSPath(id, root, srcPrefix string) string {
	p := domain.StripQuery(id)
	if rest, ok := strings.CutPrefix(p, domain.DevFSPrefix+"/"); ok {
		p = "/" + rest
	}
	root = filepath.Clean(root)
	if p == root || strings.HasPrefix(p, root+string(filepath.Separator)) {
		return filepath.Clean(p)
	}
	if strings.HasPrefix(p, srcPrefix+"/") {
		return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(p, "/")))
	}
	return filepath.Clean(filepath.FromSlash(p))
}

// brandSegment is the directory segment that marks brand's overlay tree.
func brandSegment(brand string) string {
	sep := string(filepath.Separator)
	return sep + domain.BrandsDir + sep + brand + sep
}

// ComputeOverlayPath returns the brand overlay location of a resolved file:
// "brands/<brand>" inserted just before the file name. A file that already
// lives in brand's overlay tree is returned unchanged.
func ComputeOverlayPath(resolvedFile, brand, root, srcPrefix string) string {
	p := ToFSPath(resolvedFile, root, srcPrefix)
	dir, file := filepath.Split(p)
	if strings.Contains(dir, brandSegment(brand)) {
		return p
	}
	return filepath.Join(dir, domain.BrandsDir, brand, file)
}

// ComputeBasePathFromOverlay is the inverse of ComputeOverlayPath: it strips
// the innermost "brands/<brand>" segment. It reports false for files outside
// brand's overlay tree.
func ComputeBasePathFromOverlay(resolvedFile, brand, root, srcPrefix string) (string, bool) {
	p := ToFSPath(resolvedFile, root, srcPrefix)
	dir, file := filepath.Split(p)
	seg := brandSegment(brand)
	idx := strings.LastIndex(dir, seg)
	if idx < 0 {
		return "", false
	}
	stripped := dir[:idx+1] + dir[idx+len(seg):]
	return filepath.Join(stripped, file), true
}

// InsideSource reports whether id names a file strictly below srcRoot.
func InsideSource(id, srcRoot, root, srcPrefix string) bool {
	p := ToFSPath(id, root, srcPrefix)
	return strings.HasPrefix(p, filepath.Clean(srcRoot)+string(filepath.Separator))
}
