package hwid

import (
	"context"
	"net"
	"runtime"
)

// platformProbe is the per-OS strategy behind a [Collector]. Each method
// produces one raw hardware attribute; implementations report "" when the
// source is readable but the attribute is absent, and an error only when
// the underlying I/O failed.
type platformProbe interface {
	CPUInfo(ctx context.Context) (string, error)
	CPUPhysicalID(ctx context.Context) (string, error)
	MotherboardSerial(ctx context.Context) (string, error)
	MotherboardUUID(ctx context.Context) (string, error)
	MotherboardManufacturer(ctx context.Context) (string, error)
	MotherboardProductName(ctx context.Context) (string, error)
	DiskSerial(ctx context.Context) (string, error)
	DiskModel(ctx context.Context) (string, error)
	DiskFirmware(ctx context.Context) (string, error)
	BIOSVersion(ctx context.Context) (string, error)
	BIOSVendor(ctx context.Context) (string, error)
	BIOSReleaseDate(ctx context.Context) (string, error)
	MemorySerial(ctx context.Context) (string, error)
	MACAddress(ctx context.Context) (string, error)
	OSInfo(ctx context.Context) (string, error)
}

// Collector assembles a [HardwareSnapshot] from the local machine.
// The platform strategy is selected once, from the configured OS, on the
// first call to [Collector.Collect]. A Collector holds no state between
// runs; every call constructs a fresh snapshot.
type Collector struct {
	system     System
	interfaces InterfaceLister
	goos       string
}

// New creates a Collector for the running operating system, using real
// system commands and file reads.
func New() *Collector {
	return &Collector{
		system:     &defaultSystem{Timeout: defaultTimeout},
		interfaces: net.Interfaces,
		goos:       runtime.GOOS,
	}
}

// WithSystem replaces the [System] port, enabling deterministic testing
// without real commands or files.
func (c *Collector) WithSystem(sys System) *Collector {
	c.system = sys

	return c
}

// WithInterfaces replaces the network interface lister.
func (c *Collector) WithInterfaces(lister InterfaceLister) *Collector {
	c.interfaces = lister

	return c
}

// WithOS overrides the operating system the platform strategy is selected
// for. Combined with [Collector.WithSystem], this lets any host exercise
// any platform's probes.
func (c *Collector) WithOS(goos string) *Collector {
	c.goos = goos

	return c
}

// probeFor returns the platform strategy for the given GOOS.
func probeFor(goos string, sys System) (platformProbe, error) {
	switch goos {
	case "linux":
		return &linuxProbe{sys: sys}, nil
	case "darwin":
		return &darwinProbe{sys: sys}, nil
	case "windows":
		return &windowsProbe{sys: sys}, nil
	default:
		return nil, &UnsupportedSystemError{OS: goos}
	}
}

// Collect queries every hardware attribute strictly sequentially and
// returns the assembled snapshot.
//
// Collection fails fast: the first probe I/O failure aborts the whole run
// with a *CommandError or *FileError, and no partial snapshot is ever
// returned. A snapshot silently missing fields would produce a different
// fingerprint for the same machine across runs, which is worse than an
// explicit failure. Values that are merely absent from readable sources
// become empty strings.
func (c *Collector) Collect(ctx context.Context) (*HardwareSnapshot, error) {
	probe, err := probeFor(c.goos, c.system)
	if err != nil {
		return nil, err
	}

	snap := &HardwareSnapshot{}

	steps := []struct {
		dst *string
		fn  func(context.Context) (string, error)
	}{
		{&snap.CPUInfo, probe.CPUInfo},
		{&snap.CPUPhysicalID, probe.CPUPhysicalID},
		{&snap.MotherboardSerial, probe.MotherboardSerial},
		{&snap.MotherboardUUID, probe.MotherboardUUID},
		{&snap.MotherboardManufacturer, probe.MotherboardManufacturer},
		{&snap.MotherboardProductName, probe.MotherboardProductName},
		{&snap.DiskSerial, probe.DiskSerial},
		{&snap.DiskModel, probe.DiskModel},
		{&snap.DiskFirmware, probe.DiskFirmware},
		{&snap.BIOSVersion, probe.BIOSVersion},
		{&snap.BIOSVendor, probe.BIOSVendor},
		{&snap.BIOSReleaseDate, probe.BIOSReleaseDate},
		{&snap.MemorySerial, probe.MemorySerial},
		{&snap.MACAddress, probe.MACAddress},
		{&snap.OSInfo, probe.OSInfo},
	}

	for _, step := range steps {
		value, err := step.fn(ctx)
		if err != nil {
			return nil, err
		}

		*step.dst = singleLine(value)
	}

	interfaces, err := c.interfaces()
	if err != nil {
		return nil, &CommandError{Command: "interfaces", Err: err}
	}

	snap.NetworkInterfaces = selectPrimaryInterface(interfaces)

	return snap, nil
}

// Fingerprint collects a snapshot and derives its fingerprint in one step.
func (c *Collector) Fingerprint(ctx context.Context) (string, error) {
	snap, err := c.Collect(ctx)
	if err != nil {
		return "", err
	}

	return Derive(snap)
}

// Validate reports whether the provided code matches the fingerprint of
// the current machine.
func (c *Collector) Validate(ctx context.Context, code string) (bool, error) {
	current, err := c.Fingerprint(ctx)
	if err != nil {
		return false, err
	}

	return current == code, nil
}
