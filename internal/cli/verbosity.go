package cli

import (
	"strconv"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/salesman/config"
)

// verbosity records the first of -v, -d, -s given on the command line.
// Later ones are remembered so they can be reported once a logger exists.
type verbosity struct {
	level   string
	ignored []string
}

func (v *verbosity) choose(flag, level string) {
	if v.level == "" {
		v.level = level
		return
	}
	v.ignored = append(v.ignored, flag)
}

// levelFlag is the pflag.Value behind one verbosity switch.
type levelFlag struct {
	v     *verbosity
	name  string
	level string
	set   bool
}

var _ pflag.Value = (*levelFlag)(nil)

func (f *levelFlag) String() string { return strconv.FormatBool(f.set) }

func (f *levelFlag) Type() string { return "bool" }

func (f *levelFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		f.set = true
		f.v.choose(f.name, f.level)
	}

	return nil
}

// bind registers -v, -d and -s on fs.
func (v *verbosity) bind(fs *pflag.FlagSet) {
	for _, sw := range []struct {
		name, short, level, usage string
	}{
		{"verbose", "v", config.LevelVerbose, "verbose logging"},
		{"debug", "d", config.LevelDebug, "debug logging (implies verbose)"},
		{"silent", "s", config.LevelSilent, "log critical messages only"},
	} {
		f := fs.VarPF(&levelFlag{v: v, name: "-" + sw.short, level: sw.level}, sw.name, sw.short, sw.usage)
		f.NoOptDefVal = "true"
	}
}
