package version

import (
	"fmt"
	"strings"
)

// validCharacters is a list of characters valid in the appBuild string
const validCharacters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/kaspanet/powledger/version.appBuild=foo"' if needed.
// It MUST only contain characters from validCharacters.
var appBuild string

// Version returns the application version as a properly formed string
func Version() string {
	version := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)

	// The build metadata string is not appended if it contains invalid characters.
	if appBuild != "" && strings.Trim(appBuild, validCharacters) == "" {
		version = fmt.Sprintf("%s-%s", version, appBuild)
	}
	return version
}
