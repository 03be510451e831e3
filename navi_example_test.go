package navi_test

import (
	"fmt"

	"github.com/lestrrat-go/navi"
)

func ExampleEngine() {
	views := navi.NewViewSet("home", "user-page")
	hash := navi.NewMemoryHash("")

	e, err := navi.New(
		navi.WithViewLookup(views),
		navi.WithHash(hash),
		navi.WithRoutes(
			navi.Route("/").View("home"),
			navi.Route("user/[id]").View("user-page").
				Init(func(a *navi.Activation) {
					fmt.Println("init", a.Route)
				}).
				Hydrate(func(a *navi.Activation) {
					fmt.Println("hydrate user", a.Params.Get("id"))
				}),
		),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	// Traverse all routes
	e.Walk(navi.RouteVisitFunc(func(pattern string, spec *navi.RouteSpec) {
		fmt.Printf("Route: %s -> %s\n", pattern, spec.ViewID())
	}))

	if err := e.Start(); err != nil {
		fmt.Println(err)
		return
	}
	for _, path := range []string{"/user/42", "user/7/"} {
		if err := e.Navigate(path); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(hash.Fragment(), views.Visible("user-page"))
	}

	// OUTPUT:
	// Route: / -> home
	// Route: user/[id] -> user-page
	// hydrate user 42
	// init user/[id]
	// #/user/42 true
	// hydrate user 7
	// #/user/7 true
}
