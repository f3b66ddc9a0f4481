// Package service exposes a document over HTTP.
//
// A Store guards one *arrays.Container with a read-write lock and runs
// every mutation through an arrays.Builder. NewHandler maps the Store onto
// a small REST API where URL segments after /values/ form the key path
// ("/values/users/0/name" reads users, index 0, name). Request bodies for
// PUT are JSON or YAML.
//
// NewModule wires a Store, its handler and a Server into an Fx application:
//
//	fx.New(
//		service.SupplyDocument("documents", doc),
//		service.NewModule("documents", service.WithAddress(":8080")),
//	)
package service
