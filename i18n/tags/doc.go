// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package tags provides display labels for research tags. These are separate
from the UI dictionaries: a tag's identity is always its raw value, and a
label only changes how the tag is shown.
*/
package tags
