/*
Package shell is the application shell of a signpost client.

A [Shell] is constructed with the route table the application built at start-up
and moves the client between that table's views:

	s, err := shell.New(table,
		shell.WithMode(signpost.ModeHistory),
		shell.WithFallback(view.NewNotFound()),
	)
	nav, err := s.Start(ctx, "https://example.com/cyk")
	nav, err = s.Navigate(ctx, "/fsm")
	nav, err = s.Back(ctx)

Each navigation resolves a path against the table, activates the matching view,
deactivates the previous one, and records the address in a [History].
In [signpost.ModeHistory] addresses are plain paths;
the host serving the client must answer those paths with the client's entry document.
In [signpost.ModeHash] the path lives in the fragment, e.g. /#/fsm.

Navigations are applied one at a time, and the latest one wins.
A navigation that a newer one overtakes returns [ErrSuperseded]
and leaves neither the active view nor the History changed.
*/
package shell
