/*
Package router routes requests made to the static host serving a signpost client.

[*Router] is a thin wrapper around [mux.Router].
A [Route] pairs a path and an HTTP method with an [http.HandlerFunc].
Before a request gets to a handler,
any middlewares added to the Route are called in the order they appear.

A client navigating in history mode writes real paths into the address bar,
so a reload or a shared link asks the server for a path only the client knows.
[*Router.HistoryFallback] answers those requests with the client's entry document,
using the same [route.Table] the client resolves against to pick the status code.
*/
package router
