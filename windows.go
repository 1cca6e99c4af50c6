package hwid

import (
	"context"
	"strings"
)

// windowsProbe collects hardware attributes through device-management
// queries (wmic, getmac). wmic prints a header line followed by the value,
// so every extraction takes the second line of the trimmed output.
type windowsProbe struct {
	sys System
}

// wmic runs a wmic query and returns the value below the header line.
func (p *windowsProbe) wmic(ctx context.Context, args ...string) (string, error) {
	output, err := runCommand(ctx, p.sys, "wmic", args...)
	if err != nil {
		return "", err
	}

	return lineAt(output, 1), nil
}

func (p *windowsProbe) CPUInfo(ctx context.Context) (string, error) {
	return p.wmic(ctx, "cpu", "get", "name")
}

func (p *windowsProbe) CPUPhysicalID(ctx context.Context) (string, error) {
	return p.wmic(ctx, "cpu", "get", "processorid")
}

func (p *windowsProbe) MotherboardSerial(ctx context.Context) (string, error) {
	return p.wmic(ctx, "baseboard", "get", "serialnumber")
}

func (p *windowsProbe) MotherboardUUID(ctx context.Context) (string, error) {
	return p.wmic(ctx, "csproduct", "get", "uuid")
}

func (p *windowsProbe) MotherboardManufacturer(ctx context.Context) (string, error) {
	return p.wmic(ctx, "baseboard", "get", "manufacturer")
}

func (p *windowsProbe) MotherboardProductName(ctx context.Context) (string, error) {
	return p.wmic(ctx, "baseboard", "get", "product")
}

func (p *windowsProbe) DiskSerial(ctx context.Context) (string, error) {
	return p.wmic(ctx, "diskdrive", "get", "serialnumber")
}

func (p *windowsProbe) DiskModel(ctx context.Context) (string, error) {
	return p.wmic(ctx, "diskdrive", "get", "model")
}

func (p *windowsProbe) DiskFirmware(ctx context.Context) (string, error) {
	return p.wmic(ctx, "diskdrive", "get", "firmwarerevision")
}

func (p *windowsProbe) BIOSVersion(ctx context.Context) (string, error) {
	return p.wmic(ctx, "bios", "get", "version")
}

func (p *windowsProbe) BIOSVendor(ctx context.Context) (string, error) {
	return p.wmic(ctx, "bios", "get", "manufacturer")
}

func (p *windowsProbe) BIOSReleaseDate(ctx context.Context) (string, error) {
	return p.wmic(ctx, "bios", "get", "releasedate")
}

func (p *windowsProbe) MemorySerial(ctx context.Context) (string, error) {
	return p.wmic(ctx, "memorychip", "get", "serialnumber")
}

func (p *windowsProbe) MACAddress(ctx context.Context) (string, error) {
	output, err := runCommand(ctx, p.sys, "getmac")
	if err != nil {
		return "", err
	}

	fields := strings.Fields(lineAt(output, 0))
	if len(fields) == 0 {
		return "", nil
	}

	return fields[0], nil
}

func (p *windowsProbe) OSInfo(ctx context.Context) (string, error) {
	caption, err := p.wmic(ctx, "os", "get", "caption")
	if err != nil {
		return "", err
	}

	version, err := p.wmic(ctx, "os", "get", "version")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(caption + " " + version), nil
}
