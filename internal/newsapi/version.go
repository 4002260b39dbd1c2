package newsapi

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// MinVersion is the oldest News app release the client talks to.
const MinVersion = "8.8.2"

// CheckVersion fails with ErrVersionTooOld when version is older than
// MinVersion. Versions are compared as semver; missing minor or patch
// parts count as zero.
func CheckVersion(version string) error {
	v := canonicalVersion(version)
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q", ErrInvalidVersion, version)
	}
	if semver.Compare(v, canonicalVersion(MinVersion)) < 0 {
		return fmt.Errorf("%w: %s < %s", ErrVersionTooOld, version, MinVersion)
	}
	return nil
}

func canonicalVersion(version string) string {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
