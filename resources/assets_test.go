package resources

import (
	"bytes"
	"testing"
)

func TestLogoLoadsAndCaches(t *testing.T) {
	first, err := Logo(AppLogo)
	if err != nil {
		t.Fatalf("Logo(%q): %v", AppLogo, err)
	}
	if !bytes.Contains(first.Content(), []byte("<svg")) {
		t.Error("logo is not SVG content")
	}
	second := MustLogo(AppLogo)
	if first != second {
		t.Error("second load did not hit the cache")
	}
}

func TestLogoMissing(t *testing.T) {
	if _, err := Logo("missing.svg"); err == nil {
		t.Fatal("expected error for missing logo")
	}
}
