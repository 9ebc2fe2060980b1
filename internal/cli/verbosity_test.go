package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/config"
)

func TestVerbosity_FirstWins(t *testing.T) {
	cases := []struct {
		args    []string
		level   string
		ignored []string
	}{
		{nil, "", nil},
		{[]string{"-v"}, config.LevelVerbose, nil},
		{[]string{"-d"}, config.LevelDebug, nil},
		{[]string{"-s"}, config.LevelSilent, nil},
		{[]string{"-vd"}, config.LevelVerbose, []string{"-d"}},
		{[]string{"-d", "-s", "-v"}, config.LevelDebug, []string{"-s", "-v"}},
		{[]string{"--silent", "--debug"}, config.LevelSilent, []string{"-d"}},
		{[]string{"--verbose=false", "-d"}, config.LevelDebug, nil},
	}
	for _, tc := range cases {
		var v verbosity
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		v.bind(fs)

		require.NoError(t, fs.Parse(tc.args), "args %v", tc.args)
		assert.Equal(t, tc.level, v.level, "args %v", tc.args)
		assert.Equal(t, tc.ignored, v.ignored, "args %v", tc.args)
	}
}

func TestVerbosity_BadValue(t *testing.T) {
	var v verbosity
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v.bind(fs)

	assert.Error(t, fs.Parse([]string{"--verbose=maybe"}))
	assert.Empty(t, v.level)
}

func TestClassify(t *testing.T) {
	assert.NoError(t, classify(nil))

	ee := &ExitError{Code: ExitIO, Message: "x"}
	assert.Same(t, ee, classify(ee))
}
