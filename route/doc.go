/*
Package route defines the route table a signpost client resolves navigations against.

A [Route] binds a path to a named view.
A [Table] is an ordered, immutable set of Routes built once with [Register]:

	table, err := route.Register([]route.Route{
		{Path: "/", Name: "Home", View: view.NewHome()},
		{Path: "/cyk", Name: "CYK", View: view.NewCYK()},
		{Path: "/fsm", Name: "FSM", View: view.NewFSM()},
	})

Register checks the whole table before returning it.
A duplicate name, a duplicate path, a path not starting with "/", or a missing view
is a [*ConfigError], which wraps [signpost.ErrBadConfig].
Such a table is a programming error, and start-up ought to stop.

# Resolution

[*Table.Resolve] scans the Routes in the order they were registered
and returns the first whose path matches; the first registered wins any tie.
A single trailing slash is ignored, so "/cyk/" and "/cyk" resolve alike.
Not finding a Route is an expected outcome, reported by the second return value,
and it is up to the caller to present a not-found view.

Segments starting with ":" capture the matching segment of the requested path;
[*Table.Match] returns the captured values.

# Reverse lookup

[*Table.PathFor] returns the path registered under a name,
so links need not hard-code paths.
[*Table.Build] does the same for paths with parameters.

A Table is never modified after Register returns,
so it is safe for concurrent use without locking.
*/
package route
