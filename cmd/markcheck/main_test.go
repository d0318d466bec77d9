package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/markcheck/internal/app"
	"go.trai.ch/markcheck/internal/core/domain"
	"go.trai.ch/markcheck/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newProvider(application *app.App, log *mocks.MockLogger) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(nil, mocks.NewMockInputResolver(ctrl), mocks.NewMockResponseCache(ctrl), nil, mockLogger)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, newProvider(application, mockLogger))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "markcheck version")
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockCache := mocks.NewMockResponseCache(ctrl)
	application := app.New(nil, mocks.NewMockInputResolver(ctrl), mockCache, nil, mockLogger)

	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockCache.EXPECT().Purge(domain.KindUnknown).Return(errors.Join(domain.ErrStorage, os.ErrPermission))
	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"clean"}, new(bytes.Buffer), new(bytes.Buffer),
		newProvider(application, mockLogger))

	assert.Equal(t, 1, exitCode)
}

// TestRun_ValidationFailure verifies that invalid documents exit 1 without logging an error.
func TestRun_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockResolver := mocks.NewMockInputResolver(ctrl)
	application := app.New(nil, mockResolver, mocks.NewMockResponseCache(ctrl), nil, mockLogger)

	mockResolver.EXPECT().ResolveInputs([]string{"missing.html"}, gomock.Any(), domain.KindUnknown).
		Return(nil, errors.Join(domain.ErrValidationFailed, domain.ErrInputNotFound))

	exitCode := run(context.Background(), []string{"check", "missing.html"}, new(bytes.Buffer), new(bytes.Buffer),
		newProvider(application, mockLogger))

	assert.Equal(t, 1, exitCode)
}

// TestRun_InvalidKind verifies that an unknown --kind value is reported through the logger.
func TestRun_InvalidKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := app.New(nil, mocks.NewMockInputResolver(ctrl), mocks.NewMockResponseCache(ctrl), nil, mockLogger)

	mockLogger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"check", "--kind", "svg"}, new(bytes.Buffer), new(bytes.Buffer),
		newProvider(application, mockLogger))

	assert.Equal(t, 1, exitCode)
}
