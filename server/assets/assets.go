// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package assets holds the static files served by the router.

main assigns the embedded assets directory at startup. Tests may assign any
fs.FS, such as a fstest.MapFS.
*/
package assets

import "io/fs"

// FS is rooted one level above the "assets" directory.
var FS fs.FS
