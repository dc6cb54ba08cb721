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

package minimake

import (
	"shanhu.io/misc/errcode"
	"shanhu.io/misc/jsonx"
	"shanhu.io/misc/osutil"
)

// WorkspaceFile is the optional project file read from the working
// directory.
const WorkspaceFile = "minimake.jsonx"

// Workspace is the structure of the minimake.jsonx project file. It sets
// project-wide defaults that command-line flags override.
type Workspace struct {
	File    string `json:",omitempty"` // Rule file name.
	Shell   string `json:",omitempty"` // Shell that runs rule commands.
	Default string `json:",omitempty"` // Default target to build.
}

// ReadWorkspace reads the project file at f. A missing file is not an
// error; it yields an empty workspace.
func ReadWorkspace(f string) (*Workspace, error) {
	ok, err := osutil.IsRegular(f)
	if err != nil {
		return nil, errcode.Annotate(err, "check workspace file")
	}
	if !ok {
		return new(Workspace), nil
	}

	ws := new(Workspace)
	if err := jsonx.ReadFile(f, ws); err != nil {
		return nil, errcode.Annotate(err, "read workspace file")
	}
	return ws, nil
}
