// Package netsh builds the netsh command lines used to switch network states.
package netsh

import (
	"fmt"

	"golang-netshare/internal/types"
)

// Firewall rule groups toggled together with the address mode.
const (
	RuleGroupFileAndPrinterSharing = "File and Printer Sharing"
	RuleGroupNetworkDiscovery      = "Network Discovery"
)

// Step is one command issued while realizing a state.
type Step struct {
	Name    string
	Command string
}

// SetStaticAddress assigns a static IPv4 address and mask to the named interface.
func SetStaticAddress(interfaceName, address, mask string) string {
	return fmt.Sprintf("netsh interface ip set address %s static %s %s", quote(interfaceName), address, mask)
}

// ResetToDHCP returns the named interface to dynamic addressing.
func ResetToDHCP(interfaceName string) string {
	return fmt.Sprintf("netsh interface ip set address %s dhcp", quote(interfaceName))
}

// SetRuleGroup enables or disables every firewall rule in group.
func SetRuleGroup(group string, enable bool) string {
	return fmt.Sprintf("netsh advfirewall firewall set rule group=%s new enable=%s", quote(group), yesNo(enable))
}

// SetFirewallState turns the firewall on or off for all profiles.
func SetFirewallState(on bool) string {
	state := "off"
	if on {
		state = "on"
	}
	return "netsh advfirewall set allprofiles state " + state
}

// Plan returns the ordered steps for moving profile into state.
// Every profile and known state has a non-empty plan; unknown states are rejected.
func Plan(profile types.NetworkProfile, state types.NetworkState) ([]Step, error) {
	switch state {
	case types.StateEnabled:
		return []Step{
			{Name: "set-static-address", Command: SetStaticAddress(profile.InterfaceName, profile.StaticAddress, profile.SubnetMask)},
			{Name: "enable-file-and-printer-sharing", Command: SetRuleGroup(RuleGroupFileAndPrinterSharing, true)},
			{Name: "enable-network-discovery", Command: SetRuleGroup(RuleGroupNetworkDiscovery, true)},
			{Name: "firewall-off", Command: SetFirewallState(false)},
		}, nil
	case types.StateDisabled:
		return []Step{
			{Name: "reset-dhcp", Command: ResetToDHCP(profile.InterfaceName)},
			{Name: "disable-file-and-printer-sharing", Command: SetRuleGroup(RuleGroupFileAndPrinterSharing, false)},
			{Name: "disable-network-discovery", Command: SetRuleGroup(RuleGroupNetworkDiscovery, false)},
			{Name: "firewall-on", Command: SetFirewallState(true)},
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", types.ErrUnknownState, state)
}

// quote wraps s in double quotes the way cmd.exe expects; no escaping is applied.
func quote(s string) string {
	return "\"" + s + "\""
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
