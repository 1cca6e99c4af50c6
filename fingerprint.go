package hwid

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// hashSeparator delimits the primary identity fields from the secondary
// descriptor in the hash input. It can never occur inside the UTF-8
// encoded fields around it.
const hashSeparator = 0xFF

// Derive turns a snapshot into its fingerprint: four 4-character
// lowercase-hex groups joined by dashes, e.g. "03df-8cea-815d-851d".
//
// The motherboard serial and motherboard UUID are mandatory; if either is
// empty, Derive fails with an error wrapping [ErrMissingCriticalData].
// The digest input is order-sensitive and unsalted:
//
//  1. motherboard serial
//  2. motherboard UUID
//  3. the retained interface's MAC address, if the interface is present,
//     marked up, and the MAC is non-empty
//  4. a single 0xFF separator byte
//  5. "{cpu_physical_id}:{motherboard_product_name}:{disk_model}"
//
// MD5 is used as a 128-bit mixing function, not for security; the goal is
// stable identity, not tamper resistance. Truncating to 16 hex digits
// trades collision resistance for a short, human-typeable code, which is
// acceptable for telling individual machines apart.
//
// Derive is a pure function: the same snapshot always yields the same
// code.
func Derive(snap *HardwareSnapshot) (string, error) {
	if snap.MotherboardSerial == "" {
		return "", fmt.Errorf("%w: motherboard serial is empty", ErrMissingCriticalData)
	}

	if snap.MotherboardUUID == "" {
		return "", fmt.Errorf("%w: motherboard UUID is empty", ErrMissingCriticalData)
	}

	h := md5.New()
	io.WriteString(h, snap.MotherboardSerial)
	io.WriteString(h, snap.MotherboardUUID)

	for _, iface := range snap.NetworkInterfaces {
		if iface.IsUp && iface.MACAddress != "" {
			io.WriteString(h, iface.MACAddress)
		}
	}

	h.Write([]byte{hashSeparator})
	fmt.Fprintf(h, "%s:%s:%s", snap.CPUPhysicalID, snap.MotherboardProductName, snap.DiskModel)

	digest := hex.EncodeToString(h.Sum(nil))

	return formatFingerprint(digest), nil
}

// formatFingerprint renders the first 16 hex digits of a digest as four
// dash-separated groups of four.
func formatFingerprint(digest string) string {
	return strings.Join([]string{
		digest[0:4],
		digest[4:8],
		digest[8:12],
		digest[12:16],
	}, "-")
}
