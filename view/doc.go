// Package view defines the renderable units a route table points at.
//
// A [View] is activated when navigation lands on its route and deactivated when navigation leaves it.
// Home, CYK, FSM, and NotFound are the views the signpost client ships with;
// a [Catalog] names them so route files can refer to them.
package view

//go:generate mockgen -destination viewmock/view.go -package viewmock . View
