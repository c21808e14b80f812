// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package limiter rate limits requests per client network.

Clients are grouped by the network their address belongs to, using the
configured IPv4 and IPv6 prefix lengths, and every network shares one token
bucket. Buckets that have not been used for Limiter.IdleTimeout are dropped by
a background sweep started by Init and stopped by Fini.
*/
package limiter
