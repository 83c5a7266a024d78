package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/docforge/sveltedocs/cmd/sveltedocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints related terms with relevance", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.SuggestCmd{Terms: []string{"state"}}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "$state")
		assert.Contains(t, output, "1.50")
	})

	t.Run("shows a message when no suggestions apply", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.SuggestCmd{Terms: []string{"zzzzzz"}}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "No suggestions")
	})
}
