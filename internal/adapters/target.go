package adapters

// DefaultTargetResponse is the fixed sentence DefaultTarget serves.
const DefaultTargetResponse = "Target: The default target's behavior."

// Target defines the domain-specific interface used by the client code.
type Target interface {
	Request() string
}

// DefaultTarget is the plain Target implementation. The zero value is
// ready to use.
type DefaultTarget struct{}

// Request returns the default target behavior description.
func (DefaultTarget) Request() string {
	return DefaultTargetResponse
}
