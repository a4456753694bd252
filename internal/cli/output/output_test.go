package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintFunctions_WriteToConfiguredWriterWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	restore := SetWriter(&buf)
	defer restore()

	PrintSuccess("created")
	PrintError("failed")
	PrintWarning("careful")
	PrintStep("Creating " + Bold("env"))
	PrintSecondary("/tmp/env/bin/python")

	assert.Equal(t,
		"+ created\n"+
			"x failed\n"+
			"! careful\n"+
			"  -> Creating env\n"+
			"  -> /tmp/env/bin/python\n",
		buf.String())
}

func TestColorsEnabled_FalseForNonTerminalWriter(t *testing.T) {
	restore := SetWriter(&bytes.Buffer{})
	defer restore()

	assert.False(t, ColorsEnabled())
	assert.Equal(t, "text", Dim("text"))
}

func TestColorsEnabled_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, ColorsEnabled())
}
