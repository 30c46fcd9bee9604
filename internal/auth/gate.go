package auth

import (
	"context"

	"github.com/Vengatesh521/student-teacher-booking/internal/model"
)

// GateState is the access decision for the current auth state.
type GateState int

const (
	GateUnknown GateState = iota // auth state not resolved yet
	GateDenied                   // route to the login entry point
	GateGranted                  // render the requested view
)

func (s GateState) String() string {
	switch s {
	case GateDenied:
		return "denied"
	case GateGranted:
		return "granted"
	default:
		return "unknown"
	}
}

// ProfileResolver looks a profile up by principal id. A (nil, nil) result
// means the principal has no profile yet.
type ProfileResolver interface {
	Resolve(ctx context.Context, principalID string) (*model.Profile, error)
}

// Gate decides whether the current principal may proceed. It starts Unknown
// and settles on Granted or Denied after Evaluate; every auth-state change
// (login, logout, token expiry) must call Evaluate again, which is the only
// way to leave a settled state.
type Gate struct {
	resolver ProfileResolver
	state    GateState
}

func NewGate(resolver ProfileResolver) *Gate {
	return &Gate{resolver: resolver, state: GateUnknown}
}

// State returns the current decision.
func (g *Gate) State() GateState {
	return g.state
}

// Evaluate recomputes the decision for the given principal. An empty
// principal id means nobody is signed in. A principal without a profile is
// treated as unauthenticated (mid-registration race), as is a failed lookup.
func (g *Gate) Evaluate(ctx context.Context, principalID string) (GateState, *model.Profile) {
	if principalID == "" {
		g.state = GateDenied
		return g.state, nil
	}

	profile, err := g.resolver.Resolve(ctx, principalID)
	if err != nil || profile == nil {
		g.state = GateDenied
		return g.state, nil
	}

	g.state = GateGranted
	return g.state, profile
}
