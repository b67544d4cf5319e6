package contracts

import "context"

// AuthorizationGate verifies that the current call carries proof of the
// asserted principal. Every command consults the gate exactly once before
// touching any state; a gate error aborts the command with no observable
// side effects.
type AuthorizationGate interface {
	Authorize(ctx context.Context, principal string) error
}
