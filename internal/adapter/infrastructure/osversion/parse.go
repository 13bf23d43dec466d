package osversion

import (
	"fmt"
	"strconv"
	"strings"

	"golang-netshare/internal/types"
)

// ParseVersion parses "major.minor" or "major.minor.build", e.g. "10.0.22631".
func ParseVersion(s string) (types.OSVersion, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return types.OSVersion{}, fmt.Errorf("invalid OS version %q: expected major.minor[.build]", s)
	}

	nums := make([]uint32, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return types.OSVersion{}, fmt.Errorf("invalid OS version %q: %w", s, err)
		}
		nums[i] = uint32(n)
	}

	return types.OSVersion{Major: nums[0], Minor: nums[1], Build: nums[2]}, nil
}
