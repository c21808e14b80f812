// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package untrusted reads and writes state that the user agent controls.

Everything here comes back from the client and can be anything, so callers
must validate values before use.
*/
package untrusted
