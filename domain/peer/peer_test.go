package peer

import "testing"

func TestPlatform_Valid(t *testing.T) {
	for _, p := range []Platform{Android, IOS, Linux, Mac, Windows} {
		if !p.Valid() {
			t.Errorf("%q.Valid() = false, want true", p)
		}
	}
}

func TestPlatform_Invalid(t *testing.T) {
	for _, p := range []Platform{"", "commodore64", "Linux"} {
		if p.Valid() {
			t.Errorf("%q.Valid() = true, want false", p)
		}
	}
}
