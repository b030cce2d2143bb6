package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"go.trai.ch/brandlay/internal/adapters/config"
	"go.trai.ch/brandlay/internal/adapters/fs"
	"go.trai.ch/brandlay/internal/adapters/metrics"
	"go.trai.ch/brandlay/internal/adapters/telemetry"
	"go.trai.ch/brandlay/internal/app"
	"go.trai.ch/brandlay/internal/core/domain"
	"go.trai.ch/brandlay/internal/core/ports/mocks"
)

func newComponents(ctrl *gomock.Controller) (*app.Components, *mocks.MockLogger) {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	application := app.New(
		config.NewLoader(log),
		config.NewFrontierLoader(log),
		fs.NewChecker(),
		log,
		telemetry.NewNoOpTracer(),
		metrics.NewRecorder(),
		nil,
	)
	return &app.Components{App: application, Logger: log}, log
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, _ := newComponents(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when
// the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	components, log := newComponents(ctrl)

	var logged error
	log.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	cfg := filepath.Join(t.TempDir(), "brandlay.yaml")
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"brands", "--config", cfg}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.ErrorContains(t, logged, domain.ErrSourceRootNotFound.Error())
}
