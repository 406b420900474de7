package database

import (
	"fmt"
	"strconv"
	"strings"
)

// versionsWithinMinorLevel reports whether two semantic versions share
// the same major and minor level. Patch releases read each other's
// databases; anything larger requires a fresh setup.
func versionsWithinMinorLevel(lhs, rhs string) (bool, error) {
	leftMajor, leftMinor, err := parseMajorMinor(lhs)
	if err != nil {
		return false, err
	}
	rightMajor, rightMinor, err := parseMajorMinor(rhs)
	if err != nil {
		return false, err
	}

	return leftMajor == rightMajor && leftMinor == rightMinor, nil
}

func parseMajorMinor(version string) (int, int, error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return 0, 0, fmt.Errorf("invalid version %q", version)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid version %q: %w", version, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid version %q: %w", version, err)
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return 0, 0, fmt.Errorf("invalid version %q: %w", version, err)
	}

	return major, minor, nil
}
