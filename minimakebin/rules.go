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
	"fmt"
	"os"

	"shanhu.io/minimake"
	"shanhu.io/misc/errcode"
	"shanhu.io/misc/strutil"
	"shanhu.io/text/lexing"
)

func readRules(opts *buildOptions) (
	*minimake.Builder, *minimake.File, *minimake.Workspace, error,
) {
	b, ws, err := newBuilder(opts)
	if err != nil {
		return nil, nil, nil, err
	}
	f, errs := b.ReadRules()
	if errs != nil {
		lexing.FprintErrs(os.Stderr, errs, "")
		return nil, nil, nil, errcode.InvalidArgf(
			"parsing got %d errors", len(errs),
		)
	}
	return b, f, ws, nil
}

func cmdRules(args []string) error {
	flags := cmdFlags.New()
	opts := newBuildOptions()
	declareBuildFlags(flags, opts)
	flags.ParseArgs(args)

	_, f, _, err := readRules(opts)
	if err != nil {
		return err
	}

	for _, r := range f.Rules {
		fmt.Printf("rule: %s\n", r.Target)
		for _, dep := range r.Deps {
			fmt.Printf("  dependency: %s\n", dep)
		}
		for _, cmd := range r.Commands {
			fmt.Printf("  command: %s\n", cmd)
		}
	}
	return nil
}

func cmdResolve(args []string) error {
	flags := cmdFlags.New()
	opts := newBuildOptions()
	declareBuildFlags(flags, opts)
	args = flags.ParseArgs(args)

	b, _, ws, err := readRules(opts)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{ws.Default}
	}
	for _, target := range args {
		chain, errs := b.Resolve(target)
		if errs != nil {
			lexing.FprintErrs(os.Stderr, errs, "")
			return errcode.InvalidArgf("resolve got %d errors", len(errs))
		}
		for _, name := range chain {
			fmt.Printf("node: %s\n", name)
		}
	}
	return nil
}

func cmdTargets(args []string) error {
	flags := cmdFlags.New()
	opts := newBuildOptions()
	declareBuildFlags(flags, opts)
	flags.ParseArgs(args)

	_, f, _, err := readRules(opts)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	for _, r := range f.Rules {
		set[r.Target] = true
	}
	for _, target := range strutil.SortedList(set) {
		fmt.Println(target)
	}
	return nil
}
