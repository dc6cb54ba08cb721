// Copyright (C) 2022  Shanhu Tech Inc.
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License
// for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package minimakebin

import (
	"os"
	"path/filepath"

	"shanhu.io/minimake"
	"shanhu.io/misc/errcode"
	"shanhu.io/text/lexing"
)

// newBuilder makes a builder for the work directory of opts, defaulting
// to the current directory, with that directory's optional workspace
// file applied underneath the command-line flags.
func newBuilder(opts *buildOptions) (
	*minimake.Builder, *minimake.Workspace, error,
) {
	dir := opts.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, errcode.Annotate(err, "get work dir")
		}
		dir = wd
	}

	ws, err := minimake.ReadWorkspace(
		filepath.Join(dir, minimake.WorkspaceFile),
	)
	if err != nil {
		return nil, nil, errcode.Annotate(err, "read workspace")
	}

	config := opts.config
	if config.File == "" {
		config.File = ws.File
	}
	if config.Shell == "" {
		config.Shell = ws.Shell
	}

	return minimake.NewBuilder(dir, config), ws, nil
}

func cmdBuild(args []string) error {
	flags := cmdFlags.New()
	opts := newBuildOptions()
	declareBuildFlags(flags, opts)
	args = flags.ParseArgs(args)

	b, ws, err := newBuilder(opts)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		// Fall back to the workspace default, then the first rule.
		args = []string{ws.Default}
	}
	for _, target := range args {
		if errs := b.Build(target); errs != nil {
			lexing.FprintErrs(os.Stderr, errs, "")
			return errcode.InvalidArgf("build got %d errors", len(errs))
		}
	}
	return nil
}
