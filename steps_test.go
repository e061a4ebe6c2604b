package cdpdoc_test

import (
	"testing"

	"github.com/askcdp/cdpdoc"
	"github.com/stretchr/testify/assert"
)

func TestExtractSteps(t *testing.T) {
	t.Parallel()

	t.Run("prefers numbered steps", func(t *testing.T) {
		t.Parallel()

		markdown := "To add a source:\n\n1. Open the workspace settings.\n2. Click Add Source.\n3. Choose a source type."

		steps := cdpdoc.ExtractSteps(markdown)

		assert.Equal(t, []string{
			"Open the workspace settings.",
			"Click Add Source.",
			"Choose a source type.",
		}, steps)
	})

	t.Run("falls back to bullet lists", func(t *testing.T) {
		t.Parallel()

		markdown := "Setup checklist:\n\n- Install the SDK\n- Configure the write key\n- Verify events arrive"

		steps := cdpdoc.ExtractSteps(markdown)

		assert.Equal(t, []string{
			"Install the SDK",
			"Configure the write key",
			"Verify events arrive",
		}, steps)
	})

	t.Run("falls back to sentences for prose", func(t *testing.T) {
		t.Parallel()

		markdown := "Navigate to the integrations catalog in your dashboard. Select the destination you want to enable. Short. Enter your credentials and save the configuration."

		steps := cdpdoc.ExtractSteps(markdown)

		assert.Equal(t, []string{
			"Navigate to the integrations catalog in your dashboard.",
			"Select the destination you want to enable.",
			"Enter your credentials and save the configuration.",
		}, steps)
	})

	t.Run("ignores numbered lines inside code blocks", func(t *testing.T) {
		t.Parallel()

		markdown := "```\n1. not a step\n2. also not a step\n```\n\n1. Real step one here.\n2. Real step two here."

		steps := cdpdoc.ExtractSteps(markdown)

		assert.Equal(t, []string{"Real step one here.", "Real step two here."}, steps)
	})

	t.Run("single numbered item does not count as a list", func(t *testing.T) {
		t.Parallel()

		markdown := "1. Only one item, which is not enough for a step list."

		steps := cdpdoc.ExtractSteps(markdown)

		// Falls through to sentence splitting.
		assert.Len(t, steps, 1)
	})

	t.Run("empty input yields no steps", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, cdpdoc.ExtractSteps(""))
	})
}
