package runner_test

import (
	"errors"
	"testing"

	"github.com/projexts/projexts/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDouble_RecordsCallsInOrder(t *testing.T) {
	d := runner.NewDouble()

	require.NoError(t, d.Run("/dir", "git", "add", "-A"))
	require.NoError(t, d.RunInteractive("", "make", "-j8"))

	assert.Equal(t, []string{"git add -A", "make -j8"}, d.CommandLines())
	assert.True(t, d.Calls[1].Interactive)
	assert.Equal(t, "/dir", d.Calls[0].Dir)
}

func TestDouble_Output_KeyedByFullCommandLine(t *testing.T) {
	d := runner.NewDouble()
	d.Outputs["git status --porcelain"] = []byte(" M x\n")

	out, err := d.Output("/dir", "git", "status", "--porcelain")
	require.NoError(t, err)
	assert.Equal(t, " M x\n", string(out))
}

func TestDouble_Fail_ByNameFallback(t *testing.T) {
	d := runner.NewDouble()
	d.Fail["git"] = errors.New("git not installed")

	err := d.Run("", "git", "push")
	assert.ErrorContains(t, err, "git not installed")
}
