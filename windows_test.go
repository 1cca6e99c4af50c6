package hwid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wmicOutput mimics wmic's header-then-value shape, including the carriage
// returns wmic emits.
func wmicOutput(header, value string) string {
	return header + "  \r\n" + value + "  \r\n\r\n"
}

// newWindowsSystem returns a fake with every Windows probe source populated.
func newWindowsSystem() *fakeSystem {
	return &fakeSystem{
		commands: map[string]string{
			"wmic cpu get name":                   wmicOutput("Name", "Intel(R) Core(TM) i7-9700K CPU @ 3.60GHz"),
			"wmic cpu get processorid":            wmicOutput("ProcessorId", "BFEBFBFF000906ED"),
			"wmic baseboard get serialnumber":     wmicOutput("SerialNumber", "MB-0042-XYZ"),
			"wmic csproduct get uuid":             wmicOutput("UUID", "4C4C4544-0042-5A10-8054-B3C04F564433"),
			"wmic baseboard get manufacturer":     wmicOutput("Manufacturer", "ASUSTeK COMPUTER INC."),
			"wmic baseboard get product":          wmicOutput("Product", "PRIME Z390-A"),
			"wmic diskdrive get serialnumber":     wmicOutput("SerialNumber", "S3Z8NB0K123456"),
			"wmic diskdrive get model":            wmicOutput("Model", "Samsung SSD 860 EVO 1TB"),
			"wmic diskdrive get firmwarerevision": wmicOutput("FirmwareRevision", "RVT04B6Q"),
			"wmic bios get version":               wmicOutput("Version", "ALASKA - 1072009"),
			"wmic bios get manufacturer":          wmicOutput("Manufacturer", "American Megatrends Inc."),
			"wmic bios get releasedate":           wmicOutput("ReleaseDate", "20191127000000.000000+000"),
			"wmic memorychip get serialnumber":    wmicOutput("SerialNumber", "0F1A2B3C"),
			"wmic os get caption":                 wmicOutput("Caption", "Microsoft Windows 11 Pro"),
			"wmic os get version":                 wmicOutput("Version", "10.0.22631"),
			"getmac":                              "3C-52-82-1A-2B-3C   \\Device\\Tcpip_{1A2B3C4D}\r\n",
		},
		files: map[string]string{},
	}
}

func TestWindowsProbe(t *testing.T) {
	probe := &windowsProbe{sys: newWindowsSystem()}
	ctx := context.Background()

	tests := []struct {
		name string
		fn   func(context.Context) (string, error)
		want string
	}{
		{"cpu info", probe.CPUInfo, "Intel(R) Core(TM) i7-9700K CPU @ 3.60GHz"},
		{"cpu physical id", probe.CPUPhysicalID, "BFEBFBFF000906ED"},
		{"motherboard serial", probe.MotherboardSerial, "MB-0042-XYZ"},
		{"motherboard uuid", probe.MotherboardUUID, "4C4C4544-0042-5A10-8054-B3C04F564433"},
		{"motherboard manufacturer", probe.MotherboardManufacturer, "ASUSTeK COMPUTER INC."},
		{"motherboard product name", probe.MotherboardProductName, "PRIME Z390-A"},
		{"disk serial", probe.DiskSerial, "S3Z8NB0K123456"},
		{"disk model", probe.DiskModel, "Samsung SSD 860 EVO 1TB"},
		{"disk firmware", probe.DiskFirmware, "RVT04B6Q"},
		{"bios version", probe.BIOSVersion, "ALASKA - 1072009"},
		{"bios vendor", probe.BIOSVendor, "American Megatrends Inc."},
		{"bios release date", probe.BIOSReleaseDate, "20191127000000.000000+000"},
		{"memory serial", probe.MemorySerial, "0F1A2B3C"},
		{"mac address", probe.MACAddress, "3C-52-82-1A-2B-3C"},
		{"os info", probe.OSInfo, "Microsoft Windows 11 Pro 10.0.22631"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowsProbeHeaderOnlyOutput(t *testing.T) {
	// wmic printed a header but no value line: empty attribute, no error.
	sys := newWindowsSystem()
	sys.commands["wmic baseboard get product"] = "Product  \r\n"
	probe := &windowsProbe{sys: sys}

	product, err := probe.MotherboardProductName(context.Background())
	require.NoError(t, err)
	assert.Empty(t, product)
}

func TestWindowsProbeCommandError(t *testing.T) {
	sys := newWindowsSystem()
	delete(sys.commands, "wmic csproduct get uuid")
	probe := &windowsProbe{sys: sys}

	_, err := probe.MotherboardUUID(context.Background())

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "wmic", cmdErr.Command)
}

func TestCollectWindowsSnapshot(t *testing.T) {
	collector := New().
		WithSystem(newWindowsSystem()).
		WithInterfaces(fakeInterfaces(en0Interface())).
		WithOS("windows")

	snap, err := collector.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "MB-0042-XYZ", snap.MotherboardSerial)
	assert.Equal(t, "4C4C4544-0042-5A10-8054-B3C04F564433", snap.MotherboardUUID)
	assert.Equal(t, "Microsoft Windows 11 Pro 10.0.22631", snap.OSInfo)
	require.Len(t, snap.NetworkInterfaces, 1)
}
