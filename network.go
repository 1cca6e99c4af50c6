package hwid

import (
	"net"
	"sort"
	"strings"
)

// primaryInterfaceNames is the fixed allow-list of conventional primary
// NIC names. Only exact matches are considered; wildcard matching would
// pull in transient interfaces and destabilize the fingerprint.
var primaryInterfaceNames = map[string]struct{}{
	"en0":    {},
	"eth0":   {},
	"enp0s1": {},
}

// zeroMAC is the all-zero hardware address some virtual or unconfigured
// interfaces report. Never a usable identity.
const zeroMAC = "00:00:00:00:00:00"

// InterfaceLister enumerates the network interfaces exposed by the OS.
// The default is [net.Interfaces]; tests inject synthetic lists via
// [Collector.WithInterfaces].
type InterfaceLister func() ([]net.Interface, error)

// selectPrimaryInterface narrows an interface list to at most one entry:
// keep allow-listed names with a non-empty, non-zero MAC, sort the
// survivors by MAC address string, and retain the first. The sort makes
// the truncation deterministic when several primary-name interfaces
// coexist. Retained interfaces are marked up; link state is not verified
// independently.
func selectPrimaryInterface(interfaces []net.Interface) []NetworkInterface {
	var kept []NetworkInterface

	for _, iface := range interfaces {
		if _, ok := primaryInterfaceNames[iface.Name]; !ok {
			continue
		}

		mac := iface.HardwareAddr.String()
		if mac == "" || mac == zeroMAC {
			continue
		}

		kept = append(kept, NetworkInterface{
			Name:       iface.Name,
			MACAddress: mac,
			IsUp:       true,
			Type:       classifyInterface(iface.Name),
		})
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].MACAddress < kept[j].MACAddress
	})

	if len(kept) > 1 {
		kept = kept[:1]
	}

	return kept
}

// classifyInterface maps an interface name prefix to its type.
func classifyInterface(name string) InterfaceType {
	switch {
	case strings.HasPrefix(name, "en"), strings.HasPrefix(name, "eth"):
		return InterfaceEthernet
	case strings.HasPrefix(name, "wl"), strings.HasPrefix(name, "wifi"):
		return InterfaceWiFi
	default:
		return InterfaceUnknown
	}
}
