// Package profile maps operating system selections to network profiles.
package profile

import (
	"fmt"
	"strings"

	"golang-netshare/internal/port"
	"golang-netshare/internal/types"
)

// SelectorAuto asks the resolver to detect the running operating system.
const SelectorAuto = "auto"

// windows11FirstBuild is the first Windows 11 build; both releases report version 10.0.
const windows11FirstBuild = 22000

// table is the only place profiles are defined. Adding a profile means adding a row.
var table = []types.NetworkProfile{
	{
		ID:            types.ProfileWindows10,
		DisplayName:   "Windows 10",
		InterfaceName: "Ethernet",
		StaticAddress: "192.168.0.10",
		SubnetMask:    "255.255.255.0",
	},
	{
		ID:            types.ProfileWindows11,
		DisplayName:   "Windows 11",
		InterfaceName: "Wi-Fi",
		StaticAddress: "192.168.0.11",
		SubnetMask:    "255.255.255.0",
	},
}

// aliases maps accepted spellings (including the legacy menu numbers) to profile IDs.
var aliases = map[string]types.ProfileID{
	"1":          types.ProfileWindows10,
	"win10":      types.ProfileWindows10,
	"windows10":  types.ProfileWindows10,
	"windows 10": types.ProfileWindows10,
	"2":          types.ProfileWindows11,
	"win11":      types.ProfileWindows11,
	"windows11":  types.ProfileWindows11,
	"windows 11": types.ProfileWindows11,
}

// All returns every supported profile in table order.
func All() []types.NetworkProfile {
	profiles := make([]types.NetworkProfile, len(table))
	copy(profiles, table)
	return profiles
}

// Lookup returns the profile registered under id.
func Lookup(id types.ProfileID) (types.NetworkProfile, error) {
	for _, p := range table {
		if p.ID == id {
			return p, nil
		}
	}
	return types.NetworkProfile{}, fmt.Errorf("%w: %q", types.ErrUnsupportedProfile, id)
}

// Parse resolves an explicit user selection such as "windows10", "Windows 11" or "2".
func Parse(selection string) (types.NetworkProfile, error) {
	key := strings.ToLower(strings.TrimSpace(selection))
	id, ok := aliases[key]
	if !ok {
		id = types.ProfileID(key)
	}
	return Lookup(id)
}

// FromVersion resolves a detected operating system version.
func FromVersion(v types.OSVersion) (types.NetworkProfile, error) {
	if v.Major != 10 || v.Minor != 0 {
		return types.NetworkProfile{}, fmt.Errorf("%w: operating system version %s", types.ErrUnsupportedProfile, v)
	}
	if v.Build >= windows11FirstBuild {
		return Lookup(types.ProfileWindows11)
	}
	return Lookup(types.ProfileWindows10)
}

// Resolver resolves selectors, falling back to OS detection for SelectorAuto.
type Resolver struct {
	versionProvider port.OSVersionProvider
}

// NewResolver creates a resolver that uses versionProvider for automatic detection.
func NewResolver(versionProvider port.OSVersionProvider) *Resolver {
	return &Resolver{versionProvider: versionProvider}
}

// Resolve returns the profile for selector. Detection only happens for an explicit
// SelectorAuto; an empty selector is unsupported like any other unknown input.
func (r *Resolver) Resolve(selector string) (types.NetworkProfile, error) {
	key := strings.ToLower(strings.TrimSpace(selector))
	if key != SelectorAuto {
		return Parse(key)
	}

	if r.versionProvider == nil {
		return types.NetworkProfile{}, fmt.Errorf("%w: no version detector available", types.ErrUnsupportedProfile)
	}

	version, err := r.versionProvider.DetectVersion()
	if err != nil {
		return types.NetworkProfile{}, fmt.Errorf("%w: failed to detect operating system: %v", types.ErrUnsupportedProfile, err)
	}
	return FromVersion(version)
}
