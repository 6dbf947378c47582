package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "gooze.dev/pkg/verdict/internal/adapter/mocks"
	domain "gooze.dev/pkg/verdict/internal/domain"
	m "gooze.dev/pkg/verdict/internal/model"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("runs scons once with deduplicated requirements", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)

		runner.EXPECT().Execute(mock.Anything,
			[]string{"scons", "-Y", "/ws", "mode=debug,release", "sample", "cctests"},
			time.Duration(0),
		).Return(m.CommandOutput{}, nil).Once()

		builder := domain.NewBuilder(runner, "/ws", nil)
		err := builder.Build(context.Background(), []string{"sample", "cctests", "sample"}, []string{"debug", "release"})

		require.NoError(t, err)
	})

	t.Run("nothing to build", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)

		err := domain.NewBuilder(runner, "/ws", nil).Build(context.Background(), nil, []string{"release"})

		require.NoError(t, err)
		runner.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("custom command", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)

		runner.EXPECT().Execute(mock.Anything, []string{"make", "-C", "/ws", "BUILD=release", "vm"}, time.Duration(0)).
			Return(m.CommandOutput{}, nil).Once()

		builder := domain.NewBuilder(runner, "/ws", []string{"make", "-C", "{workspace}", "BUILD={modes}"})

		require.NoError(t, builder.Build(context.Background(), []string{"vm"}, []string{"release"}))
	})

	t.Run("non-zero exit fails", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)

		runner.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
			Return(m.CommandOutput{ExitCode: 2, Stderr: "no rule to make target\n"}, nil).Once()

		err := domain.NewBuilder(runner, "/ws", nil).Build(context.Background(), []string{"vm"}, []string{"debug"})

		require.ErrorIs(t, err, domain.ErrBuildFailed)
		assert.Contains(t, err.Error(), "no rule to make target")
	})

	t.Run("runner error is returned", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		spawnErr := errors.New("scons: not found")

		runner.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
			Return(m.CommandOutput{}, spawnErr).Once()

		err := domain.NewBuilder(runner, "/ws", nil).Build(context.Background(), []string{"vm"}, []string{"debug"})

		assert.ErrorIs(t, err, spawnErr)
	})
}
