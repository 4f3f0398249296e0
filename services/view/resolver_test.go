package view_test

import (
	"testing"

	"servecure/services/view"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		fragment string
		want     view.View
	}{
		{"", view.Home},
		{"#", view.Home},
		{"#/", view.Home},
		{"#/profile", view.Profile},
		{"/profile", view.Profile},
		{"#/profile/settings", view.Profile},
		{"#/my-services", view.MyServices},
		{"#/my-services?filter=ongoing", view.MyServices},
		{"#/careers", view.Careers},
		{"#/careers/JOB003", view.Careers},
		{"#services", view.Home},
		{"#/unknown", view.Home},
		{"#footer", view.Home},
	}
	for _, tc := range tests {
		if got := view.Resolve(tc.fragment); got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.fragment, got, tc.want)
		}
	}
}

func TestResolveIsHistoryFree(t *testing.T) {
	// The same fragment resolves identically whatever was resolved before.
	view.Resolve("#/careers")
	view.Resolve("#/my-services")
	if got := view.Resolve("#/profile"); got != view.Profile {
		t.Fatalf("Resolve(#/profile) after other fragments = %q", got)
	}
}

func TestFetchesFor(t *testing.T) {
	tests := []struct {
		name     string
		v        view.View
		signedIn bool
		want     []view.Fetch
	}{
		{"profile signed in", view.Profile, true, []view.Fetch{view.FetchUser, view.FetchProviderStatus}},
		{"profile logged out", view.Profile, false, nil},
		{"my-services signed in", view.MyServices, true, []view.Fetch{view.FetchMyServices}},
		{"my-services logged out", view.MyServices, false, nil},
		{"home signed in", view.Home, true, nil},
		{"careers signed in", view.Careers, true, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := view.FetchesFor(tc.v, tc.signedIn)
			if len(got) != len(tc.want) {
				t.Fatalf("FetchesFor = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("FetchesFor = %v, want %v", got, tc.want)
				}
			}
		})
	}
}
