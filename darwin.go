package hwid

import "context"

// appleVendor is reported for attributes macOS does not expose through a
// query: Apple is the sole manufacturer of its boards and firmware.
const appleVendor = "Apple Inc."

// darwinProbe collects hardware attributes through the macOS
// hardware-profile tools: system_profiler, sysctl, diskutil, and sw_vers.
type darwinProbe struct {
	sys System
}

// spHardware runs the hardware profile report and extracts the value on
// the first line containing label.
func (p *darwinProbe) spHardware(ctx context.Context, label string) (string, error) {
	output, err := runCommand(ctx, p.sys, "system_profiler", "SPHardwareDataType")
	if err != nil {
		return "", err
	}

	return containedValue(output, label, ":"), nil
}

// diskutilInfo runs `diskutil info disk0` and extracts the value on the
// first line containing label.
func (p *darwinProbe) diskutilInfo(ctx context.Context, label string) (string, error) {
	output, err := runCommand(ctx, p.sys, "diskutil", "info", "disk0")
	if err != nil {
		return "", err
	}

	return containedValue(output, label, ":"), nil
}

func (p *darwinProbe) CPUInfo(ctx context.Context) (string, error) {
	return runCommand(ctx, p.sys, "sysctl", "-n", "machdep.cpu.brand_string")
}

// CPUPhysicalID returns the CPU brand string; macOS exposes no separate
// physical-package identifier.
func (p *darwinProbe) CPUPhysicalID(ctx context.Context) (string, error) {
	return runCommand(ctx, p.sys, "sysctl", "-n", "machdep.cpu.brand_string")
}

func (p *darwinProbe) MotherboardSerial(ctx context.Context) (string, error) {
	return p.spHardware(ctx, "Serial Number")
}

func (p *darwinProbe) MotherboardUUID(ctx context.Context) (string, error) {
	return p.spHardware(ctx, "Hardware UUID")
}

func (p *darwinProbe) MotherboardManufacturer(ctx context.Context) (string, error) {
	return appleVendor, nil
}

func (p *darwinProbe) MotherboardProductName(ctx context.Context) (string, error) {
	return p.spHardware(ctx, "Model Identifier")
}

func (p *darwinProbe) DiskSerial(ctx context.Context) (string, error) {
	return p.diskutilInfo(ctx, "Serial Number")
}

func (p *darwinProbe) DiskModel(ctx context.Context) (string, error) {
	return p.diskutilInfo(ctx, "Device / Media Name")
}

func (p *darwinProbe) DiskFirmware(ctx context.Context) (string, error) {
	output, err := runCommand(ctx, p.sys, "system_profiler", "SPNVMeDataType")
	if err != nil {
		return "", err
	}

	return containedValue(output, "Firmware Version", ":"), nil
}

func (p *darwinProbe) BIOSVersion(ctx context.Context) (string, error) {
	return p.spHardware(ctx, "Boot ROM Version")
}

func (p *darwinProbe) BIOSVendor(ctx context.Context) (string, error) {
	return appleVendor, nil
}

// BIOSReleaseDate returns the Boot ROM version: macOS publishes no
// firmware release date, and the Boot ROM version is the closest stable
// analogue.
func (p *darwinProbe) BIOSReleaseDate(ctx context.Context) (string, error) {
	return p.spHardware(ctx, "Boot ROM Version")
}

func (p *darwinProbe) MemorySerial(ctx context.Context) (string, error) {
	output, err := runCommand(ctx, p.sys, "system_profiler", "SPMemoryDataType")
	if err != nil {
		return "", err
	}

	return containedValue(output, "Serial Number:", ":"), nil
}

func (p *darwinProbe) MACAddress(ctx context.Context) (string, error) {
	output, err := runCommand(ctx, p.sys, "ifconfig")
	if err != nil {
		return "", err
	}

	return fieldNear(output, "ether", 1), nil
}

func (p *darwinProbe) OSInfo(ctx context.Context) (string, error) {
	name, err := runCommand(ctx, p.sys, "sw_vers", "-productName")
	if err != nil {
		return "", err
	}

	version, err := runCommand(ctx, p.sys, "sw_vers", "-productVersion")
	if err != nil {
		return "", err
	}

	return name + " " + version, nil
}
