package minimakebin

import (
	"shanhu.io/minimake"
	"shanhu.io/misc/flagutil"
)

var cmdFlags = flagutil.NewFactory("minimake")

// buildOptions carries the command-line configuration of one invocation.
type buildOptions struct {
	dir    string
	config *minimake.Config
}

func newBuildOptions() *buildOptions {
	return &buildOptions{config: new(minimake.Config)}
}

func declareBuildFlags(flags *flagutil.FlagSet, opts *buildOptions) {
	flags.StringVar(
		&opts.dir, "dir", "",
		"work directory; defaults to the current directory",
	)
	flags.StringVar(&opts.config.File, "file", "", "rule file name")
	flags.StringVar(
		&opts.config.Shell, "shell", "", "shell to run commands with",
	)
}
