// Copyright 2024 - 2026, the Weft contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets provides access to the binary's embedded data files: the
built-in plural ruleset directory and the example catalogs.
*/
package assets

import (
	"embed"
)

// FS provides access to the embedded file system.
var FS embed.FS
