package route_test

import (
	"fmt"

	"github.com/xy-planning-network/signpost/route"
	"github.com/xy-planning-network/signpost/view"
)

func Example() {
	table := route.MustRegister([]route.Route{
		{Path: "/", Name: "Home", View: view.NewHome()},
		{Path: "/cyk", Name: "CYK", View: view.NewCYK()},
	})

	for _, p := range []string{"/", "/cyk/", "/fsm"} {
		r, ok := table.Resolve(p)
		if !ok {
			fmt.Printf("%s -> no match\n", p)
			continue
		}
		fmt.Printf("%s -> %s\n", p, r.Name)
	}

	p, _ := table.PathFor("CYK")
	fmt.Println("CYK lives at", p)

	// Output:
	// / -> Home
	// /cyk/ -> CYK
	// /fsm -> no match
	// CYK lives at /cyk
}
