package version

import "testing"

func TestVersion(t *testing.T) {
	defer func(original string) { appBuild = original }(appBuild)

	tests := []struct {
		build    string
		expected string
	}{
		{"", "0.1.0"},
		{"dev-42", "0.1.0-dev-42"},
		{"bad build", "0.1.0"},
		{"bad.build", "0.1.0"},
	}

	for _, test := range tests {
		appBuild = test.build
		if Version() != test.expected {
			t.Errorf("build %q: expected %s, got %s", test.build, test.expected, Version())
		}
	}
}
