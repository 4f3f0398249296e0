package view

import "strings"

// View names the four top-level views.
type View string

const (
	Home       View = "home"
	Profile    View = "profile"
	MyServices View = "my-services"
	Careers    View = "careers"
)

// Resolve maps an address fragment to a view. Pure: the same fragment
// always resolves to the same view, whatever came before. No fragment is
// rejected; unknown ones fall back to home.
func Resolve(fragment string) View {
	h := strings.TrimPrefix(fragment, "#")
	switch {
	case strings.HasPrefix(h, "/profile"):
		return Profile
	case strings.HasPrefix(h, "/my-services"):
		return MyServices
	case strings.HasPrefix(h, "/careers"):
		return Careers
	default:
		return Home
	}
}

// Fetch names a data fetch a view entry triggers.
type Fetch string

const (
	FetchUser           Fetch = "user"
	FetchProviderStatus Fetch = "provider-status"
	FetchMyServices     Fetch = "my-services"
)

// FetchesFor lists the fetches entering a view triggers. Views needing
// identity trigger nothing for a logged-out session; the view renders its
// blocked state instead of redirecting.
func FetchesFor(v View, signedIn bool) []Fetch {
	if !signedIn {
		return nil
	}
	switch v {
	case Profile:
		return []Fetch{FetchUser, FetchProviderStatus}
	case MyServices:
		return []Fetch{FetchMyServices}
	default:
		return nil
	}
}
