package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FormatVersion is the config file format version this loader supports.
// Documents may carry a format_version key; it must be valid semver, share
// this major version, and not be newer than this version.
const FormatVersion = "1.0.0"

// checkFormatVersion validates an optional format_version value. The empty
// string is accepted (the key is optional).
func checkFormatVersion(version string) error {
	if version == "" {
		return nil
	}

	// Accept a leading 'v', but require full MAJOR.MINOR.PATCH
	// (NewVersion would silently auto-complete "1.0" to "1.0.0").
	parsed, err := semver.StrictNewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("invalid format version: %w", err)
	}

	supported := semver.MustParse(FormatVersion)
	if parsed.Major() != supported.Major() {
		return fmt.Errorf("format version %s is incompatible with supported version %s", version, FormatVersion)
	}
	if parsed.GreaterThan(supported) {
		return fmt.Errorf("format version %s is newer than supported version %s", version, FormatVersion)
	}

	return nil
}
