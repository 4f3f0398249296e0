package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"servecure/services/content"
)

func TestDefaultsCoverEveryCollection(t *testing.T) {
	svc := content.NewDefaultContentService("")
	if len(svc.Catalog()) == 0 {
		t.Errorf("default catalog is empty")
	}
	if len(svc.Jobs()) == 0 {
		t.Errorf("default jobs are empty")
	}
	if len(svc.Testimonials()) == 0 {
		t.Errorf("default testimonials are empty")
	}
	if len(svc.FAQs()) == 0 {
		t.Errorf("default FAQs are empty")
	}
	if len(svc.Stats()) == 0 {
		t.Errorf("default stats are empty")
	}
}

func TestSubServicesForMatchesCaseInsensitively(t *testing.T) {
	svc := content.NewDefaultContentService("")
	subs := svc.SubServicesFor("electrician")
	if len(subs) == 0 {
		t.Fatalf("SubServicesFor(electrician) returned nothing")
	}
	if svc.SubServicesFor("Astrologer") != nil {
		t.Errorf("unknown title should return nil")
	}
}

func TestStartingPriceFor(t *testing.T) {
	svc := content.NewDefaultContentService("")
	if got := svc.StartingPriceFor("Electrician"); got == "" {
		t.Errorf("StartingPriceFor(Electrician) = empty")
	}
	if got := svc.StartingPriceFor("Astrologer"); got != "" {
		t.Errorf("StartingPriceFor(unknown) = %q, want empty", got)
	}
}

func TestFixtureFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	fixture := `[{"title":"Gardening","sub_services":["Lawn Mowing"],"starting_price":"₹150"}]`
	if err := os.WriteFile(filepath.Join(dir, "catalog.json"), []byte(fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	svc := content.NewDefaultContentService(dir)
	if len(svc.Catalog()) != 1 || svc.Catalog()[0].Title != "Gardening" {
		t.Fatalf("catalog = %+v, want the fixture contents", svc.Catalog())
	}
	// Collections without a fixture file keep their defaults.
	if len(svc.Jobs()) == 0 {
		t.Errorf("jobs lost their defaults")
	}
}

func TestMalformedFixtureKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "catalog.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	svc := content.NewDefaultContentService(dir)
	if len(svc.Catalog()) == 0 {
		t.Fatalf("malformed fixture wiped the default catalog")
	}
}
