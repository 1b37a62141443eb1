/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	upsline "github.com/allbin/go-upsline"
	"github.com/allbin/go-upsline/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables that mirror the flags,
// e.g. UPSLINE_OUTPUT=json
const envPrefix = "UPSLINE"

// Process exit codes
const (
	ExitOK                  = 0
	ExitUsage               = 1
	ExitAccessDenied        = 2
	ExitMetadataUnavailable = 3
	ExitNotACharacterDevice = 4
	ExitOpenFailed          = 5
	ExitControlQueryFailed  = 6
)

// exitError carries the process exit code out of a command
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type signalReader interface {
	ReadSignals(path string) (upsline.SignalMask, error)
}

// readerFactory builds the reader used by the root command
type readerFactory func(opts ...upsline.Option) (signalReader, error)

func hostReader(opts ...upsline.Option) (signalReader, error) {
	r, err := upsline.NewReader(opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Execute runs the command line and exits the process
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, hostReader))
}

func run(args []string, stdout, stderr io.Writer, newReader readerFactory) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(viper.New(), newReader)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitUsage
}

func newRootCmd(v *viper.Viper, newReader readerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "upsline <device-path>",
		Short: "Read UPS status from serial modem control lines",
		Long: `Read the state of a UPS attached through a serial "UPS to USB" cable.

The cable reports UPS state on the RS-232 modem control lines:
  CTS - Clear To Send       - UPS On
  DCD - Data Carrier Detect - UPS Battery Low
  RI  - Ring Indicator      - UPS Utility Fail
  DSR - Data Set Ready      - UPS Bypass

One read is performed per invocation. Exit codes:
  0 success, 1 usage, 2 not readable, 3 cannot stat,
  4 not a character device, 5 cannot open, 6 TIOCMGET failed
(--legacy-exit makes every read exit 0).

Every flag can also be set from the environment, e.g. UPSLINE_OUTPUT=json.

Examples:
  upsline /dev/ttyUSB0
  upsline --output json /dev/ttyS0
  upsline --follow-symlinks /dev/serial/by-id/usb-FTDI_UPS-if00-port0`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, v, newReader, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP("output", "o", string(report.FormatText), "Output format: text, table, json, yaml")
	flags.Bool("color", false, "Style SET/CLEAR states in text and table output")
	flags.Bool("follow-symlinks", false, "Follow a symbolic link to the device (stat instead of lstat)")
	flags.Bool("legacy-exit", false, "Always exit 0 after a read attempt, for monitoring scripts that expect it")
	flags.BoolP("verbose", "v", false, "Log each step of the read to stderr")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	rootCmd.AddCommand(newListCmd())
	return rootCmd
}

func runRead(cmd *cobra.Command, v *viper.Viper, newReader readerFactory, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if len(args) == 0 {
		printUsage(stderr, cmd.CommandPath())
		return &exitError{code: ExitUsage}
	}
	device := args[0]

	format, err := report.ParseFormat(v.GetString("output"))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return &exitError{code: ExitUsage}
	}
	opts := report.Options{Format: format, Color: v.GetBool("color")}
	follow := v.GetBool("follow-symlinks")
	log := newLogger(stderr, v.GetBool("verbose"))

	reader, err := newReader(upsline.WithFollowSymlinks(follow))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return &exitError{code: ExitUsage}
	}

	log.WithFields(logrus.Fields{
		"device":          device,
		"follow_symlinks": follow,
		"output":          format,
	}).Debug("reading modem control lines")

	mask, err := reader.ReadSignals(device)
	if err != nil {
		entry := log.WithField("device", device).WithError(err)
		if kind, ok := upsline.KindOf(err); ok {
			entry = entry.WithField("kind", kind.String())
		}
		entry.Debug("read failed")

		// structured failures go where the structured successes go
		out := stderr
		if format == report.FormatJSON || format == report.FormatYAML {
			out = stdout
		}
		if werr := report.WriteFailure(out, device, err, opts); werr != nil {
			return werr
		}

		if v.GetBool("legacy-exit") {
			return nil
		}
		return &exitError{code: exitCode(err)}
	}

	log.WithFields(logrus.Fields{
		"device":  device,
		"mask":    int(mask),
		"signals": mask.String(),
	}).Debug("read complete")

	return report.Write(stdout, device, mask, opts)
}

// exitCode maps a read failure to its process exit code
func exitCode(err error) int {
	kind, ok := upsline.KindOf(err)
	if !ok {
		return ExitUsage
	}
	switch kind {
	case upsline.AccessDenied:
		return ExitAccessDenied
	case upsline.MetadataUnavailable:
		return ExitMetadataUnavailable
	case upsline.NotACharacterDevice:
		return ExitNotACharacterDevice
	case upsline.OpenFailed:
		return ExitOpenFailed
	case upsline.ControlQueryFailed:
		return ExitControlQueryFailed
	default:
		return ExitUsage
	}
}

func printUsage(w io.Writer, program string) {
	fmt.Fprintln(w, "Not enough arguments.")
	for i, example := range upsline.ExamplePorts {
		prefix := "Example Usage: "
		if i > 0 {
			prefix = strings.Repeat(" ", len(prefix))
		}
		fmt.Fprintf(w, "%s%s %s\n", prefix, program, example)
	}

	ports, err := upsline.ListPorts()
	if err != nil || len(ports) == 0 {
		return
	}
	fmt.Fprintln(w, "\nSerial ports on this host:")
	for _, p := range ports {
		fmt.Fprintf(w, "  %s (%s)\n", p.Path, p.Description)
	}
}

// newLogger traces the read at debug level when verbose; otherwise only
// warnings and above reach stderr
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
