// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware holds the HTTP middleware shared by every route.

Middleware have the signature of Middleware and are chained by the router in
server/router. CatchError is different: it adapts the fallible handlers of
server/routes and renders the error page for them.
*/
package middleware
