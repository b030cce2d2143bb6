package overlay_test

import (
	"context"
	"iter"
	"os"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/brandlay/internal/adapters/cache"
	"go.trai.ch/brandlay/internal/adapters/fs"
	"go.trai.ch/brandlay/internal/adapters/metrics"
	"go.trai.ch/brandlay/internal/core/ports"
	"go.trai.ch/brandlay/internal/core/ports/mocks"
	"go.trai.ch/brandlay/internal/engine/overlay"
)

func TestShouldInvalidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"/proj/src/brands/acme/Button.tsx", true},
		{"/proj/src/components/brands/acme", true},
		{"/proj/src/components/brands", true},
		{"/proj/src/App.tsx", false},
		{"/proj/src/brandsmith/App.tsx", false},
		{"/proj/other/brands/acme/Button.tsx", false},
		{"/proj/src", false},
	}

	for _, tt := range tests {
		for _, op := range []ports.WatchOp{ports.OpAdd, ports.OpChange, ports.OpUnlink, ports.OpAddDir, ports.OpUnlinkDir} {
			ev := ports.WatchEvent{Path: tt.path, Operation: op}
			assert.Equal(t, tt.want, overlay.ShouldInvalidate(ev, "/proj/src"), "%s %s", op, tt.path)
		}
	}
}

func TestInvalidator_CacheCoherence(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "src/App.tsx", "src/Button.tsx", "src/brands/acme/logo.svg")
	importer := f.path("src/App.tsx") + "?__brand=acme"
	overlayPath := f.path("src/brands/acme/Button.tsx")

	res := f.resolve(t, "./Button", importer)
	require.NotNil(t, res)
	assert.Equal(t, f.path("src/Button.tsx")+"?__brand=acme", res.ID)

	writeFiles(t, f.root, "src/brands/acme/Button.tsx")

	// The negative answer is memoized until the watcher reports the change.
	res = f.resolve(t, "./Button", importer)
	assert.Equal(t, f.path("src/Button.tsx")+"?__brand=acme", res.ID)

	before := f.session.Current().Seq
	assert.True(t, f.engine.Invalidator().Handle(ports.WatchEvent{Path: overlayPath, Operation: ports.OpAdd}))
	assert.Greater(t, f.session.Current().Seq, before)

	res = f.resolve(t, "./Button", importer)
	assert.Equal(t, overlayPath+"?__brand=acme", res.ID)
}

func TestInvalidator_IgnoresUnrelatedEvents(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "src/App.tsx", "src/brands/acme/logo.svg")

	before := f.session.Current().Seq
	assert.False(t, f.engine.Invalidator().Handle(ports.WatchEvent{Path: f.path("src/App.tsx"), Operation: ports.OpChange}))
	assert.False(t, f.engine.Invalidator().Handle(ports.WatchEvent{Path: f.path("dist/brands/acme/a.js"), Operation: ports.OpAdd}))
	assert.Equal(t, before, f.session.Current().Seq)
}

func TestInvalidator_LogsBrandChanges(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "src/brands/acme/logo.svg", "src/brands/initech/logo.svg")
	srcRoot := root + "/src"

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	var changes [][]any
	log.EXPECT().Info("brands changed", gomock.Any()).DoAndReturn(func(_ string, args ...any) {
		changes = append(changes, args)
	}).Times(1)

	session := cache.NewSession(fs.NewScanner(), fs.NewChecker(), metrics.Nop{})
	inv := overlay.NewInvalidator(session, srcRoot, log)
	inv.Prime(session.Snapshot().Brands(srcRoot))

	require.NoError(t, os.RemoveAll(srcRoot+"/brands/initech"))
	writeFiles(t, root, "src/brands/globex/logo.svg")
	require.True(t, inv.Handle(ports.WatchEvent{Path: srcRoot + "/brands/globex", Operation: ports.OpAddDir}))

	// Same brand set: no info log.
	require.True(t, inv.Handle(ports.WatchEvent{Path: srcRoot + "/brands/globex/logo.svg", Operation: ports.OpChange}))

	require.Len(t, changes, 1)
	assert.Equal(t, []any{"added", "globex", "removed", "initech", "brands", session.Snapshot().Brands(srcRoot).Fingerprint()}, changes[0])
}

func TestDevServerStart(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "src/App.tsx", "src/brands/acme/logo.svg")

	events := []ports.WatchEvent{
		{Path: f.path("src/App.tsx"), Operation: ports.OpChange},
		{Path: f.path("src/brands/acme/Button.tsx"), Operation: ports.OpAdd},
		{Path: f.path("src/brands/globex"), Operation: ports.OpAddDir},
	}
	writeFiles(t, f.root, "src/brands/globex/logo.svg")

	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)
	w.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](slices.Values(events)))

	before := f.session.Current().Seq
	require.NoError(t, f.engine.DevServerStart(context.Background(), w))
	assert.Equal(t, before+2, f.session.Current().Seq)
	assert.Equal(t, []string{"acme", "globex"}, f.engine.Brands().Sorted())
}

func TestDevServerStart_Cancelled(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "src/brands/acme/logo.svg")

	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)
	w.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](slices.Values([]ports.WatchEvent{
		{Path: f.path("src/brands/acme/a.css"), Operation: ports.OpAdd},
	})))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	before := f.session.Current().Seq
	err := f.engine.DevServerStart(ctx, w)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, before, f.session.Current().Seq)
}
