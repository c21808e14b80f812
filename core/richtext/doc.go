// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package richtext renders the small markup subset allowed in bios and author
lists.

Input is parsed into a tree of [Text], [Bold], [Underline] and [Link] nodes,
then written back out as HTML. Links always open in a new browsing context
with rel="noopener noreferrer". The output passes through a bluemonday policy
that admits nothing beyond what the renderer emits.
*/
package richtext
