// Package hwid derives a stable, hardware-bound identifier for the local
// machine. It probes OS-native sources (DMI files on Linux, system_profiler
// and friends on macOS, wmic on Windows), assembles the results into an
// immutable [HardwareSnapshot], and hashes a fixed subset of the snapshot
// into a short, human-typeable fingerprint such as "03df-8cea-815d-851d".
//
// The same physical machine reproduces the same fingerprint across runs;
// different machines do not collide in practice. The fingerprint is meant
// for machine-locking (licensing, device registration). It is not a
// security credential: there is no anti-spoofing, no signing, and no
// network verification.
//
// # Overview
//
// A [Collector] gathers every hardware attribute through a platform
// strategy chosen once at construction from the running OS. Collection is
// strictly sequential and fails fast: any probe I/O error aborts the run,
// because a partially populated snapshot would silently produce a
// different fingerprint for the same machine. Attribute extraction that
// merely finds nothing in otherwise readable output yields an empty
// string instead.
//
// [Derive] is a pure function over the snapshot. It requires the
// motherboard serial and motherboard UUID to be present, hashes a
// documented byte sequence with MD5, and formats the first 16 hex digits
// as four dash-separated groups.
//
// # Quick Start
//
//	snap, err := hwid.New().Collect(ctx)
//	if err != nil {
//		return err
//	}
//	code, err := hwid.Derive(snap)
//
// Or in one step:
//
//	code, err := hwid.New().Fingerprint(ctx)
//
// # Network Interfaces
//
// At most one network interface contributes to the fingerprint. The
// collector keeps only interfaces named en0, eth0, or enp0s1 whose MAC is
// non-empty and not all zeros, sorts the survivors by MAC address, and
// retains the first. The retained MAC is mixed into the hash; everything
// else about the interface is informational.
//
// # Validation
//
// [Collector.Validate] regenerates the fingerprint and compares it to a
// previously stored code:
//
//	valid, err := hwid.New().Validate(ctx, storedCode)
//
// # Testing
//
// All OS access goes through the [System] port ([System.RunCommand] and
// [System.ReadFile]) plus an injectable interface lister. Inject fakes
// with [Collector.WithSystem] and [Collector.WithInterfaces], and force a
// platform strategy with [Collector.WithOS], to exercise every probe on
// any host with deterministic outputs.
//
// # Errors
//
// Failures are a closed set: [CommandError], [FileError], [ParseError],
// [UnsupportedSystemError], and [ErrMissingCriticalData]. Every error is
// terminal for that invocation; callers may retry a whole run later.
//
// # Platform Support
//
// Supported operating systems: Linux, macOS (darwin), and Windows. Any
// other GOOS yields [UnsupportedSystemError].
//
// # CLI Tool
//
// A ready-to-use command-line tool is provided in cmd/hwid:
//
//	hwid fingerprint
//	hwid snapshot -o yaml
//	hwid validate 03df-8cea-815d-851d
//	hwid version
package hwid
