// Package storefront selects the top-level view from the session state.
// Authenticated and login-form-visible are deliberately independent flags;
// the product page and the login form are driven by both, not one boolean.
package storefront

import "sync"

// View identifies the active top-level view.
type View string

const (
	ViewLogin View = "login"
	ViewStore View = "store"
	ViewGuest View = "guest"
)

// ViewState composes the session flag with the UI-only login-form toggle.
// With guest browsing enabled, the product page is reachable before
// sign-in and checkout intent defers to the login form.
type ViewState struct {
	mu            sync.Mutex
	authenticated bool
	showLoginForm bool
	guestBrowsing bool
}

// NewViewState creates a ViewState. guestBrowsing selects the variant where
// unauthenticated visitors see the store instead of the login form.
func NewViewState(guestBrowsing bool) *ViewState {
	return &ViewState{guestBrowsing: guestBrowsing}
}

// SetAuthenticated records a login or logout. A successful login also
// dismisses the login form.
func (v *ViewState) SetAuthenticated(authenticated bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.authenticated = authenticated
	if authenticated {
		v.showLoginForm = false
	}
}

// ShowLoginForm makes the login form the active view for guests.
func (v *ViewState) ShowLoginForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showLoginForm = true
}

// HideLoginForm returns a guest from the login form to the guest view.
func (v *ViewState) HideLoginForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showLoginForm = false
}

// RequestCheckout reports whether checkout may proceed. A guest's checkout
// intent is deferred to sign-in: the login form is shown and false is
// returned.
func (v *ViewState) RequestCheckout() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.authenticated {
		return true
	}
	v.showLoginForm = true
	return false
}

// ActiveView resolves the two flags into the view to render.
func (v *ViewState) ActiveView() View {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.authenticated {
		return ViewStore
	}
	if !v.guestBrowsing || v.showLoginForm {
		return ViewLogin
	}
	return ViewGuest
}
