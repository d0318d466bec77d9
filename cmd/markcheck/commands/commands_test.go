package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/markcheck/cmd/markcheck/commands"
	"go.trai.ch/markcheck/internal/app"
	"go.trai.ch/markcheck/internal/build"
	"go.trai.ch/markcheck/internal/core/domain"
)

type mockApp struct {
	checkFunc func(ctx context.Context, patterns []string, opts app.CheckOptions) error
	cleanFunc func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Check(ctx context.Context, patterns []string, opts app.CheckOptions) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, patterns, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Check(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.CheckOptions
		var capturedPatterns []string

		mock := &mockApp{
			checkFunc: func(_ context.Context, patterns []string, opts app.CheckOptions) error {
				capturedOpts = opts
				capturedPatterns = patterns
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check", "site", "*.css", "--kind", "css", "--jobs", "3", "--watch"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, []string{"site", "*.css"}, capturedPatterns)
		assert.Equal(t, app.CheckOptions{Kind: domain.KindCSS, Jobs: 3, Watch: true}, capturedOpts)
	})

	t.Run("defaults to automatic kind", func(t *testing.T) {
		var capturedOpts app.CheckOptions
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ []string, opts app.CheckOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.KindUnknown, capturedOpts.Kind)
		assert.False(t, capturedOpts.Watch)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ []string, _ app.CheckOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"check", "--kind", "svg"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownKind.Error())
	})

	t.Run("returns error on check failure", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ []string, _ app.CheckOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"check", "index.html"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.Kind
	}{
		{name: "everything", args: []string{"clean"}, want: domain.KindUnknown},
		{name: "markup only", args: []string{"clean", "--kind", "markup"}, want: domain.KindMarkup},
		{name: "css only", args: []string{"clean", "-k", "css"}, want: domain.KindCSS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions
			called := false
			mock := &mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					captured = opts
					called = true
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.True(t, called)
			assert.Equal(t, tt.want, captured.Kind)
		})
	}

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"clean", "extra"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "markcheck version "+build.Version+"\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "markcheck version "+build.Version)
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}
