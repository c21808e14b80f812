// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package listing pages and filters the lists shown on the home page.

Everything here is a pure function of its inputs. UI state travels in the URL
as a [Selection], so each request derives its visible items from scratch.
*/
package listing
