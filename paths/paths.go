// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package paths contains functions to prepare paths to learningenv resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following will return the
// path to the preferences file.
//
//	pth, err := paths.ResourcePath("", paths.PreferencesFile)
//
// The policy of ResourcePath() is simple: if the base resource path,
// ".learningenv", is present in the program's current directory then that is
// the base path that will be used. If it is not present, then the user's
// config directory is used (see os.UserConfigDir()).
//
// On a modern Linux system, the path returned in the example above will be:
//
//	/home/user/.config/learningenv/preferences.yaml
package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/learningenv/curated"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function
const baseResourcePath = ".learningenv"

// Well known resource names.
const (
	PreferencesFile = "preferences.yaml"
	HiscoreDatabase = "hiscore.db"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base path. The directory part of the path is
// created if it does not exist.
func ResourcePath(subPth string, file string) (string, error) {
	pth := filepath.Join(getBasePath(), subPth)

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return filepath.Join(pth, file), nil
}

// getBasePath() returns baseResourcePath with the user's config directory
// prepended if the unadorned baseResourcePath cannot be found in the current
// directory.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(cfg, baseResourcePath[1:])
}
