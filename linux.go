package hwid

import (
	"context"
	"strings"
)

// DMI attribute files exposed by the kernel.
const (
	linuxBoardSerialPath  = "/sys/class/dmi/id/board_serial"
	linuxProductUUIDPath  = "/sys/class/dmi/id/product_uuid"
	linuxBoardVendorPath  = "/sys/class/dmi/id/board_vendor"
	linuxBoardNamePath    = "/sys/class/dmi/id/board_name"
	linuxBIOSVersionPath  = "/sys/class/dmi/id/bios_version"
	linuxBIOSVendorPath   = "/sys/class/dmi/id/bios_vendor"
	linuxBIOSDatePath     = "/sys/class/dmi/id/bios_date"
	linuxCPUInfoPath      = "/proc/cpuinfo"
	linuxDiskFirmwarePath = "/sys/class/block/sda/device/firmware_rev"
	linuxOSReleasePath    = "/etc/os-release"
)

// linuxProbe collects hardware attributes from DMI files under /sys,
// /proc/cpuinfo, and a handful of device enumeration commands.
type linuxProbe struct {
	sys System
}

func (p *linuxProbe) CPUInfo(ctx context.Context) (string, error) {
	content, err := readFile(p.sys, linuxCPUInfoPath)
	if err != nil {
		return "", err
	}

	return prefixedValue(content, "model name", ":"), nil
}

func (p *linuxProbe) CPUPhysicalID(ctx context.Context) (string, error) {
	content, err := readFile(p.sys, linuxCPUInfoPath)
	if err != nil {
		return "", err
	}

	return prefixedValue(content, "physical id", ":"), nil
}

func (p *linuxProbe) MotherboardSerial(ctx context.Context) (string, error) {
	return p.readDMI(linuxBoardSerialPath)
}

func (p *linuxProbe) MotherboardUUID(ctx context.Context) (string, error) {
	return p.readDMI(linuxProductUUIDPath)
}

func (p *linuxProbe) MotherboardManufacturer(ctx context.Context) (string, error) {
	return p.readDMI(linuxBoardVendorPath)
}

func (p *linuxProbe) MotherboardProductName(ctx context.Context) (string, error) {
	return p.readDMI(linuxBoardNamePath)
}

func (p *linuxProbe) DiskSerial(ctx context.Context) (string, error) {
	output, err := runCommand(ctx, p.sys, "udevadm", "info", "--query=property", "--name=/dev/sda")
	if err != nil {
		return "", err
	}

	return prefixedValue(output, "ID_SERIAL=", "="), nil
}

func (p *linuxProbe) DiskModel(ctx context.Context) (string, error) {
	output, err := runCommand(ctx, p.sys, "lsblk", "-no", "MODEL")
	if err != nil {
		return "", err
	}

	return lineAt(output, 0), nil
}

func (p *linuxProbe) DiskFirmware(ctx context.Context) (string, error) {
	return p.readDMI(linuxDiskFirmwarePath)
}

func (p *linuxProbe) BIOSVersion(ctx context.Context) (string, error) {
	return p.readDMI(linuxBIOSVersionPath)
}

func (p *linuxProbe) BIOSVendor(ctx context.Context) (string, error) {
	return p.readDMI(linuxBIOSVendorPath)
}

func (p *linuxProbe) BIOSReleaseDate(ctx context.Context) (string, error) {
	return p.readDMI(linuxBIOSDatePath)
}

// MemorySerial reads the DIMM serial from the DMI memory table.
// dmidecode needs root, so the command runs under sudo.
func (p *linuxProbe) MemorySerial(ctx context.Context) (string, error) {
	output, err := runCommand(ctx, p.sys, "sudo", "dmidecode", "-t", "memory")
	if err != nil {
		return "", err
	}

	return containedValue(output, "Serial Number:", ":"), nil
}

func (p *linuxProbe) MACAddress(ctx context.Context) (string, error) {
	output, err := runCommand(ctx, p.sys, "ip", "link", "show")
	if err != nil {
		return "", err
	}

	return fieldNear(output, "link/ether", 1), nil
}

func (p *linuxProbe) OSInfo(ctx context.Context) (string, error) {
	content, err := readFile(p.sys, linuxOSReleasePath)
	if err != nil {
		return "", err
	}

	return strings.Trim(prefixedValue(content, "PRETTY_NAME=", "="), `"`), nil
}

// readDMI reads a single-value DMI attribute file and trims it.
func (p *linuxProbe) readDMI(path string) (string, error) {
	content, err := readFile(p.sys, path)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(content), nil
}
