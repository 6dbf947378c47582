package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	adaptermocks "gooze.dev/pkg/verdict/internal/adapter/mocks"
	domain "gooze.dev/pkg/verdict/internal/domain"
	m "gooze.dev/pkg/verdict/internal/model"
)

func classified(path []string, command []string, outcomes ...m.Outcome) m.ClassifiedTest {
	return m.ClassifiedTest{
		Case:     &m.TestCase{Path: path, Command: command, Mode: "release"},
		Outcomes: outcomes,
	}
}

func TestOrchestrator_RunTest(t *testing.T) {
	t.Run("runs the case command under the timeout", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		test := classified([]string{"suite", "a"}, []string{"vm", "a.js"}, m.Pass)

		runner.EXPECT().Execute(mock.Anything, []string{"vm", "a.js"}, 5*time.Second).
			Return(m.CommandOutput{ExitCode: 1, Stdout: "out"}, nil).Once()

		output := domain.NewOrchestrator(runner, 5*time.Second).RunTest(context.Background(), test)

		assert.NoError(t, output.Err)
		assert.Equal(t, []string{"vm", "a.js"}, output.Command)
		assert.Equal(t, 1, output.Output.ExitCode)
		assert.Equal(t, "out", output.Output.Stdout)
		assert.True(t, output.HasFailed())
		assert.True(t, output.Unexpected())
		assert.GreaterOrEqual(t, output.Elapsed, time.Duration(0))
	})

	t.Run("timed out output is kept", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		test := classified([]string{"suite", "slow"}, []string{"vm"}, m.Timeout, m.Fail)

		runner.EXPECT().Execute(mock.Anything, mock.Anything, time.Second).
			Return(m.CommandOutput{ExitCode: -15, TimedOut: true}, nil).Once()

		output := domain.NewOrchestrator(runner, time.Second).RunTest(context.Background(), test)

		assert.True(t, output.Output.TimedOut)
		assert.False(t, output.Unexpected())
	})

	t.Run("spawn error fails the case", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		spawnErr := errors.New("no such file")
		test := classified([]string{"suite", "a"}, []string{"missing"}, m.Pass, m.Fail)

		runner.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
			Return(m.CommandOutput{}, spawnErr).Once()

		output := domain.NewOrchestrator(runner, time.Second).RunTest(context.Background(), test)

		assert.ErrorIs(t, output.Err, spawnErr)
		assert.True(t, output.Unexpected())
	})

	t.Run("cancelled context does not start the command", func(t *testing.T) {
		runner := adaptermocks.NewMockCommandRunner(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		output := domain.NewOrchestrator(runner, time.Second).RunTest(ctx, classified([]string{"suite", "a"}, []string{"vm"}, m.Pass))

		assert.ErrorIs(t, output.Err, context.Canceled)
		runner.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
	})
}
