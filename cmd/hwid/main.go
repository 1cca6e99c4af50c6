package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/machinelock/hwid"
	"github.com/machinelock/hwid/internal/version"
)

const applicationName = "hwid"

var (
	debugFlag bool
	timeout   time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:          applicationName,
		Short:        "Derive a stable, hardware-bound fingerprint for this machine",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetLevel(logrus.InfoLevel)
			if debugFlag {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "Per-probe command timeout")

	rootCmd.AddCommand(fingerprintCmd())
	rootCmd.AddCommand(snapshotCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newCollector builds a collector honoring the global timeout flag.
func newCollector() *hwid.Collector {
	return hwid.New().WithSystem(hwid.NewSystem(timeout))
}

func fingerprintCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Collect hardware attributes and print the machine fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			logrus.Debug("collecting hardware attributes")

			code, err := newCollector().Fingerprint(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to generate fingerprint: %w", err)
			}

			logrus.WithField("fingerprint", code).Debug("fingerprint generated")

			switch output {
			case "json":
				return printJSON(cmd.OutOrStdout(), map[string]string{"fingerprint": code})
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), code)
				return nil
			default:
				return fmt.Errorf("unsupported output format %q; valid values are text, json", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or json")

	return cmd
}

func snapshotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Collect and display the full hardware snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := newCollector().Collect(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to collect hardware info: %w", err)
			}

			return renderSnapshot(cmd.OutOrStdout(), snap, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, or yaml")

	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <code>",
		Short: "Check a fingerprint against the current machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid, err := newCollector().Validate(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if !valid {
				color.New(color.FgRed).Fprintln(cmd.OutOrStdout(), "invalid: fingerprint does not match this machine")
				os.Exit(1)
			}

			color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "valid: fingerprint matches this machine")

			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if version.Version == "0.0.0" {
				if info, ok := debug.ReadBuildInfo(); ok {
					fmt.Fprintf(out, "%s version: %s\n", applicationName, info.Main.Version)
					return
				}
			}

			fmt.Fprintf(out, "%s version: %s\n", applicationName, version.Version)
			fmt.Fprintf(out, "Build date: %s, Git commit: %s, Go version: %s\n",
				version.BuildDate, version.GitCommit, version.GoVersion)
		},
	}
}

// renderSnapshot writes the snapshot in the requested format.
func renderSnapshot(w io.Writer, snap *hwid.HardwareSnapshot, format string) error {
	switch format {
	case "json":
		return printJSON(w, snap)
	case "yaml":
		data, err := yaml.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		_, err = w.Write(data)
		return err
	case "text":
		renderSnapshotText(w, snap)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q; valid values are text, json, yaml", format)
	}
}

// renderSnapshotText writes a human-oriented key/value listing.
func renderSnapshotText(w io.Writer, snap *hwid.HardwareSnapshot) {
	label := color.New(color.FgCyan).SprintFunc()

	rows := []struct {
		name  string
		value string
	}{
		{"CPU", snap.CPUInfo},
		{"CPU physical ID", snap.CPUPhysicalID},
		{"Motherboard serial", snap.MotherboardSerial},
		{"Motherboard UUID", snap.MotherboardUUID},
		{"Motherboard manufacturer", snap.MotherboardManufacturer},
		{"Motherboard product", snap.MotherboardProductName},
		{"Disk serial", snap.DiskSerial},
		{"Disk model", snap.DiskModel},
		{"Disk firmware", snap.DiskFirmware},
		{"BIOS version", snap.BIOSVersion},
		{"BIOS vendor", snap.BIOSVendor},
		{"BIOS release date", snap.BIOSReleaseDate},
		{"Memory serial", snap.MemorySerial},
		{"MAC address", snap.MACAddress},
		{"OS", snap.OSInfo},
	}

	for _, row := range rows {
		value := row.value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%s: %s\n", label(row.name), value)
	}

	for _, iface := range snap.NetworkInterfaces {
		fmt.Fprintf(w, "%s: %s (%s, %s)\n", label("Primary interface"), iface.Name, iface.MACAddress, iface.Type)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
