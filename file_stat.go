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
	"os"

	"shanhu.io/misc/errcode"
)

// maxPathLen caps target and dependency names when they are used as
// filesystem paths.
const maxPathLen = 4096

// fileStat is the filesystem metadata of one target: its existence (a
// not-found error otherwise) and its mod time at whole-second
// resolution. Sub-second differences never count as newer.
type fileStat struct {
	ModTimestamp int64
}

func newFileStat(env *env, name string) (*fileStat, error) {
	if len(name) >= maxPathLen {
		return nil, errcode.InvalidArgf("path too long: %q", name)
	}

	info, err := os.Stat(env.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errcode.NotFoundf("%s not found", name)
		}
		return nil, err
	}

	return &fileStat{ModTimestamp: info.ModTime().Unix()}, nil
}
