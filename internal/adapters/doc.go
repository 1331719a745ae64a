// Package adapters implements the Adapter structural design pattern: it
// bridges the interface mismatch between a client-expected capability and
// an existing, incompatible one without modifying either side.
//
// # Overview
//
// Three stateless behavioral units make up the core:
//
//  1. **Target**: the interface calling code expects — a single Request
//     operation returning a human-readable string. DefaultTarget is its
//     plain implementation.
//
//  2. **Adaptee**: an existing component with useful behavior behind an
//     incompatible interface. Its SpecificRequest operation serves its
//     sentence back-to-front, so callers must know to reverse it before
//     the value means anything.
//
//  3. **Adapter**: satisfies Target while delegating to an Adaptee. It
//     invokes SpecificRequest, restores natural reading order, and
//     prefixes a translation marker.
//
// # Design Pattern
//
//	// Target interface (what the client expects)
//	type Target interface {
//	    Request() string
//	}
//
//	// Adaptee (what we have)
//	type Adaptee struct{ ... }
//	func (a *Adaptee) SpecificRequest() string
//
//	// Adapter (bridges the gap)
//	type Adapter struct {
//	    adaptee *Adaptee
//	}
//
// The Adapter obtains both capabilities through composition rather than
// inheritance: it holds the Adaptee and separately declares conformance
// to Target, so there are no diamond concerns and the Adaptee never
// learns it is being wrapped.
//
// # Usage
//
//	adapter := adapters.NewAdapter(adapters.NewAdaptee())
//	var t adapters.Target = adapter
//	fmt.Println(t.Request())
//	// Adapter: (TRANSLATED) Special behavior of the Adaptee.
//
// Every operation in this package is pure: no inputs, no side effects,
// no error conditions, and repeated calls on the same instance yield
// byte-identical results.
//
// A second, independent illustration of the same pattern lives in
// units.go: an adapter exposing a metric distance source through an
// imperial-units interface.
package adapters
