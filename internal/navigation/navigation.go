// Package navigation models the screens of the app as route values and keeps
// one push/pop stack per tab.
package navigation

import (
	"errors"
	"fmt"
)

// Screen names a destination.
type Screen int

const (
	HomeScreen Screen = iota
	OpportunitiesScreen
	OpportunityDetails
	VolunteerForm
	AboutScreen
)

func (s Screen) String() string {
	switch s {
	case HomeScreen:
		return "HomeScreen"
	case OpportunitiesScreen:
		return "OpportunitiesScreen"
	case OpportunityDetails:
		return "OpportunityDetails"
	case VolunteerForm:
		return "VolunteerForm"
	case AboutScreen:
		return "AboutScreen"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// Title is the header shown for the screen.
func (s Screen) Title() string {
	switch s {
	case HomeScreen:
		return "AjudaJá"
	case OpportunitiesScreen:
		return "Oportunidades"
	case OpportunityDetails:
		return "Detalhes"
	case VolunteerForm:
		return "Cadastro"
	case AboutScreen:
		return "Sobre"
	}
	return ""
}

// Route is a screen plus its parameters. OpportunityID is set only for
// OpportunityDetails and VolunteerForm.
type Route struct {
	Screen        Screen
	OpportunityID string
}

// Home, Opportunities, Details, Form and About build routes.
func Home() Route          { return Route{Screen: HomeScreen} }
func Opportunities() Route { return Route{Screen: OpportunitiesScreen} }
func About() Route         { return Route{Screen: AboutScreen} }

func Details(id string) Route {
	return Route{Screen: OpportunityDetails, OpportunityID: id}
}

func Form(id string) Route {
	return Route{Screen: VolunteerForm, OpportunityID: id}
}

func (r Route) validate() error {
	switch r.Screen {
	case OpportunityDetails, VolunteerForm:
		if r.OpportunityID == "" {
			return fmt.Errorf("navigation: %s requires an opportunity id", r.Screen)
		}
	case HomeScreen, OpportunitiesScreen, AboutScreen:
		if r.OpportunityID != "" {
			return fmt.Errorf("navigation: %s takes no parameters", r.Screen)
		}
	default:
		return fmt.Errorf("navigation: unknown screen %s", r.Screen)
	}
	return nil
}

// Tab is an entry in the bottom tab bar.
type Tab int

const (
	HomeTab Tab = iota
	OpportunitiesTab
	AboutTab
)

// Tabs lists the tab bar in display order.
var Tabs = []Tab{HomeTab, OpportunitiesTab, AboutTab}

func (t Tab) String() string {
	switch t {
	case HomeTab:
		return "Home"
	case OpportunitiesTab:
		return "Oportunidades"
	case AboutTab:
		return "Sobre"
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

// Root is the first route of the tab's stack.
func (t Tab) Root() Route {
	switch t {
	case OpportunitiesTab:
		return Opportunities()
	case AboutTab:
		return About()
	}
	return Home()
}

// allows reports whether route may be pushed on the tab's stack. The home and
// opportunities stacks can open details and the form; the about tab is a
// single screen.
func (t Tab) allows(r Route) bool {
	switch r.Screen {
	case OpportunityDetails, VolunteerForm:
		return t == HomeTab || t == OpportunitiesTab
	}
	return false
}

// ErrAtRoot is returned by Pop when the stack holds only its root.
var ErrAtRoot = errors.New("navigation: already at root")

// Navigator tracks the active tab and a stack per tab. The zero value is not
// usable; call New.
type Navigator struct {
	active Tab
	stacks map[Tab][]Route
}

// New returns a Navigator on the home tab with every stack at its root.
func New() *Navigator {
	n := &Navigator{stacks: make(map[Tab][]Route, len(Tabs))}
	for _, t := range Tabs {
		n.stacks[t] = []Route{t.Root()}
	}
	return n
}

// ActiveTab returns the selected tab.
func (n *Navigator) ActiveTab() Tab {
	return n.active
}

// Current returns the route on top of the active tab's stack.
func (n *Navigator) Current() Route {
	s := n.stacks[n.active]
	return s[len(s)-1]
}

// Stack returns a copy of the active tab's stack, root first.
func (n *Navigator) Stack() []Route {
	return append([]Route(nil), n.stacks[n.active]...)
}

// Depth returns the length of the active tab's stack.
func (n *Navigator) Depth() int {
	return len(n.stacks[n.active])
}

// Push opens route on top of the active tab's stack.
func (n *Navigator) Push(r Route) error {
	if err := r.validate(); err != nil {
		return err
	}
	if !n.active.allows(r) {
		return fmt.Errorf("navigation: %s cannot be opened from the %s tab", r.Screen, n.active)
	}
	n.stacks[n.active] = append(n.stacks[n.active], r)
	return nil
}

// Pop closes the top route of the active tab's stack and returns the route now
// on top.
func (n *Navigator) Pop() (Route, error) {
	s := n.stacks[n.active]
	if len(s) == 1 {
		return s[0], ErrAtRoot
	}
	n.stacks[n.active] = s[:len(s)-1]
	return n.Current(), nil
}

// PopToRoot clears the active tab's stack down to its root.
func (n *Navigator) PopToRoot() Route {
	n.stacks[n.active] = n.stacks[n.active][:1]
	return n.Current()
}

// SwitchTab selects t, keeping every stack as it was.
func (n *Navigator) SwitchTab(t Tab) error {
	if _, ok := n.stacks[t]; !ok {
		return fmt.Errorf("navigation: unknown tab %s", t)
	}
	n.active = t
	return nil
}

// ResetToStart returns to the home screen: the active tab's stack is cleared,
// the home tab is selected and its stack cleared too.
func (n *Navigator) ResetToStart() Route {
	n.PopToRoot()
	n.active = HomeTab
	return n.PopToRoot()
}
