package hwid

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSystem is a deterministic System backed by canned command outputs
// and file contents. Missing entries fail, which is exactly how a probe
// I/O failure is simulated.
type fakeSystem struct {
	commands map[string]string // "name arg1 arg2 ..." -> stdout
	files    map[string]string // path -> contents
}

func (f *fakeSystem) RunCommand(_ context.Context, name string, args ...string) (string, error) {
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	output, ok := f.commands[key]
	if !ok {
		return "", fmt.Errorf("command not available: %s", key)
	}

	return strings.TrimSpace(output), nil
}

func (f *fakeSystem) ReadFile(path string) (string, error) {
	content, ok := f.files[path]
	if !ok {
		return "", fmt.Errorf("open %s: no such file or directory", path)
	}

	return content, nil
}

// fakeInterfaces returns a lister serving a fixed interface list.
func fakeInterfaces(list ...net.Interface) InterfaceLister {
	return func() ([]net.Interface, error) { return list, nil }
}

func en0Interface() net.Interface {
	return net.Interface{
		Name:         "en0",
		HardwareAddr: net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
	}
}

func TestCollectUnsupportedOS(t *testing.T) {
	collector := New().WithSystem(newLinuxSystem()).WithOS("plan9")

	snap, err := collector.Collect(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap)

	var unsupported *UnsupportedSystemError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "plan9", unsupported.OS)
}

func TestCollectCommandFailureAborts(t *testing.T) {
	sys := newLinuxSystem()
	delete(sys.commands, "lsblk -no MODEL")

	collector := New().
		WithSystem(sys).
		WithInterfaces(fakeInterfaces(en0Interface())).
		WithOS("linux")

	snap, err := collector.Collect(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "lsblk", cmdErr.Command)
}

func TestCollectFileFailureAborts(t *testing.T) {
	sys := newLinuxSystem()
	delete(sys.files, linuxBoardSerialPath)

	collector := New().
		WithSystem(sys).
		WithInterfaces(fakeInterfaces(en0Interface())).
		WithOS("linux")

	snap, err := collector.Collect(context.Background())
	require.Error(t, err)
	assert.Nil(t, snap)

	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, linuxBoardSerialPath, fileErr.Path)
}

func TestCollectInterfaceListerFailureAborts(t *testing.T) {
	listerErr := errors.New("netlink unavailable")
	collector := New().
		WithSystem(newLinuxSystem()).
		WithInterfaces(func() ([]net.Interface, error) { return nil, listerErr }).
		WithOS("linux")

	snap, err := collector.Collect(context.Background())
	require.ErrorIs(t, err, listerErr)
	assert.Nil(t, snap)
}

func TestCollectMissingAttributeIsEmptyString(t *testing.T) {
	// A readable source without the wanted line is an empty attribute,
	// not an error.
	sys := newLinuxSystem()
	sys.files[linuxCPUInfoPath] = "processor\t: 0\nvendor_id\t: GenuineIntel\n"

	collector := New().
		WithSystem(sys).
		WithInterfaces(fakeInterfaces(en0Interface())).
		WithOS("linux")

	snap, err := collector.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.CPUInfo)
	assert.Empty(t, snap.CPUPhysicalID)
	assert.NotEmpty(t, snap.MotherboardSerial)
}

func TestCollectValuesAreSingleLine(t *testing.T) {
	for _, snap := range collectAllPlatforms(t) {
		for _, value := range []string{
			snap.CPUInfo, snap.CPUPhysicalID, snap.MotherboardSerial,
			snap.MotherboardUUID, snap.MotherboardManufacturer,
			snap.MotherboardProductName, snap.DiskSerial, snap.DiskModel,
			snap.DiskFirmware, snap.BIOSVersion, snap.BIOSVendor,
			snap.BIOSReleaseDate, snap.MemorySerial, snap.MACAddress,
			snap.OSInfo,
		} {
			assert.NotContains(t, value, "\n")
			assert.Equal(t, strings.TrimSpace(value), value)
		}
	}
}

// collectAllPlatforms collects one snapshot per supported OS using the
// canned fixtures.
func collectAllPlatforms(t *testing.T) map[string]*HardwareSnapshot {
	t.Helper()

	systems := map[string]System{
		"linux":   newLinuxSystem(),
		"darwin":  newDarwinSystem(),
		"windows": newWindowsSystem(),
	}

	snaps := make(map[string]*HardwareSnapshot, len(systems))
	for goos, sys := range systems {
		collector := New().
			WithSystem(sys).
			WithInterfaces(fakeInterfaces(en0Interface())).
			WithOS(goos)

		snap, err := collector.Collect(context.Background())
		require.NoError(t, err, "collect on %s", goos)
		snaps[goos] = snap
	}

	return snaps
}

func TestFingerprintFromFakeHardware(t *testing.T) {
	for goos, sys := range map[string]System{
		"linux":   newLinuxSystem(),
		"darwin":  newDarwinSystem(),
		"windows": newWindowsSystem(),
	} {
		t.Run(goos, func(t *testing.T) {
			collector := New().
				WithSystem(sys).
				WithInterfaces(fakeInterfaces(en0Interface())).
				WithOS(goos)

			code, err := collector.Fingerprint(context.Background())
			require.NoError(t, err)
			assert.Regexp(t, `^[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}$`, code)

			// A second, independent collector over the same machine state
			// reproduces the code.
			again, err := New().
				WithSystem(sys).
				WithInterfaces(fakeInterfaces(en0Interface())).
				WithOS(goos).
				Fingerprint(context.Background())
			require.NoError(t, err)
			assert.Equal(t, code, again)
		})
	}
}

func TestValidate(t *testing.T) {
	newCollector := func() *Collector {
		return New().
			WithSystem(newLinuxSystem()).
			WithInterfaces(fakeInterfaces(en0Interface())).
			WithOS("linux")
	}

	code, err := newCollector().Fingerprint(context.Background())
	require.NoError(t, err)

	valid, err := newCollector().Validate(context.Background(), code)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = newCollector().Validate(context.Background(), "0000-0000-0000-0000")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestNewDefaults(t *testing.T) {
	collector := New()
	assert.NotNil(t, collector.system)
	assert.NotNil(t, collector.interfaces)
	assert.NotEmpty(t, collector.goos)
}
