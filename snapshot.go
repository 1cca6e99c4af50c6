package hwid

// InterfaceType classifies a network interface by its name prefix.
type InterfaceType string

// Interface classifications produced by the collector.
const (
	InterfaceEthernet InterfaceType = "Ethernet"
	InterfaceWiFi     InterfaceType = "Wi-Fi"
	InterfaceUnknown  InterfaceType = "Unknown"
)

// NetworkInterface describes one network interface retained by the
// collector. Instances are created during collection and never mutated
// afterwards.
type NetworkInterface struct {
	Name       string        `json:"name" yaml:"name"`
	MACAddress string        `json:"mac_address" yaml:"mac_address"` // colon-hex, lowercase
	IsUp       bool          `json:"is_up" yaml:"is_up"`
	Type       InterfaceType `json:"interface_type" yaml:"interface_type"`
}

// HardwareSnapshot is the complete set of hardware attributes collected in
// one run. Every string field is a trimmed, single-line value or the empty
// string — absence is always represented as "" and never as a pointer, so
// critical-field validation in [Derive] is a plain emptiness check.
//
// A snapshot is constructed once by [Collector.Collect], consumed by
// [Derive], and never mutated. The struct tags exist for callers that
// render a snapshot; the package itself defines no persisted layout.
type HardwareSnapshot struct {
	CPUInfo                 string             `json:"cpu_info" yaml:"cpu_info"`
	CPUPhysicalID           string             `json:"cpu_physical_id" yaml:"cpu_physical_id"`
	MotherboardSerial       string             `json:"motherboard_serial" yaml:"motherboard_serial"`
	MotherboardUUID         string             `json:"motherboard_uuid" yaml:"motherboard_uuid"`
	MotherboardManufacturer string             `json:"motherboard_manufacturer" yaml:"motherboard_manufacturer"`
	MotherboardProductName  string             `json:"motherboard_product_name" yaml:"motherboard_product_name"`
	DiskSerial              string             `json:"disk_serial" yaml:"disk_serial"`
	DiskModel               string             `json:"disk_model" yaml:"disk_model"`
	DiskFirmware            string             `json:"disk_firmware" yaml:"disk_firmware"`
	BIOSVersion             string             `json:"bios_version" yaml:"bios_version"`
	BIOSVendor              string             `json:"bios_vendor" yaml:"bios_vendor"`
	BIOSReleaseDate         string             `json:"bios_release_date" yaml:"bios_release_date"`
	MemorySerial            string             `json:"memory_serial" yaml:"memory_serial"`
	MACAddress              string             `json:"mac_address" yaml:"mac_address"`
	OSInfo                  string             `json:"os_info" yaml:"os_info"`
	NetworkInterfaces       []NetworkInterface `json:"network_interfaces" yaml:"network_interfaces"`
}
