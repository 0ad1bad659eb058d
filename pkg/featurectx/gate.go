package featurectx

// Decision is the gate's verdict for a route visit.
type Decision int

const (
	// DecisionWait: the context has no snapshot yet; render a neutral
	// waiting state, never a premature allow or deny.
	DecisionWait Decision = iota
	DecisionAllow
	// DecisionRedirectLogin: no session at all.
	DecisionRedirectLogin
	// DecisionRedirectUnauthorized: authenticated but denied; goes to an
	// explicit unauthorized page, never silently to the default route.
	DecisionRedirectUnauthorized
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "ALLOW"
	case DecisionRedirectLogin:
		return "REDIRECT_LOGIN"
	case DecisionRedirectUnauthorized:
		return "REDIRECT_UNAUTHORIZED"
	default:
		return "WAIT"
	}
}

// NavItem is one entry of a navigation model the gate can filter.
type NavItem struct {
	Code  string
	Label string
	Path  string
}

// Gate consumes the context's access verdicts for navigation rendering
// and route authorization.
type Gate struct {
	ctx *Client
}

func NewGate(ctx *Client) *Gate {
	return &Gate{ctx: ctx}
}

// Authorize decides a direct route visit. A refresh in flight does not
// force a Wait: the stale snapshot keeps deciding until the new one lands.
func (g *Gate) Authorize(code string) Decision {
	if g.ctx.Role() == "" {
		return DecisionRedirectLogin
	}
	if !g.ctx.hasVerdictBasis() {
		return DecisionWait
	}
	if g.ctx.CanAccess(code) {
		return DecisionAllow
	}
	return DecisionRedirectUnauthorized
}

// VisibleItems filters a navigation model down to accessible entries.
// While the first snapshot is still loading nothing is visible.
func (g *Gate) VisibleItems(items []NavItem) []NavItem {
	visible := make([]NavItem, 0, len(items))
	for _, item := range items {
		if g.ctx.CanAccess(item.Code) {
			visible = append(visible, item)
		}
	}
	return visible
}
