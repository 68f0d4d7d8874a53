package view

// Route identifies a navigable screen. Paths mirror the frontend
// router: list at /, detail at /project/:id, create at /create, edit
// at /edit/:id.
type Route struct {
	Path string
}

func ListRoute() Route { return Route{Path: "/"} }

func DetailRoute(id string) Route { return Route{Path: "/project/" + id} }

func CreateRoute() Route { return Route{Path: "/create"} }

func EditRoute(id string) Route { return Route{Path: "/edit/" + id} }

// Navigator receives the navigation intent a store reports after a
// successful mutation: create lands on the list, update on the
// updated record's detail, delete on the list.
type Navigator interface {
	Navigate(Route)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(Route)

func (f NavigatorFunc) Navigate(r Route) { f(r) }

// discardNavigator is used when a store is built without a navigator.
type discardNavigator struct{}

func (discardNavigator) Navigate(Route) {}
