package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ashokshau/ticketqr"
	"github.com/ashokshau/ticketqr/booking"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// formatEnv overrides the default --format.
const formatEnv = "TICKETQR_FORMAT"

// Exit codes.
const (
	exitFailure  = 1
	exitRejected = 2
	exitUsage    = 3
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// encodeFlags holds the parsed flags for the encode command.
type encodeFlags struct {
	format  string
	out     string
	size    int
	scale   int
	booking bool
	invert  bool
}

func main() {
	root := newRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitFailure)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var verbose bool
	logger := zap.NewNop()

	root := &cobra.Command{
		Use:     "ticketqr",
		Short:   "Encode booking tickets as QR-style symbols",
		Version: version,
		// main reports errors itself, with the exit code attached.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			logger = newLogger(cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.SetOut(stdout)
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log processing steps to stderr")

	defaultFormat := os.Getenv(formatEnv)
	if defaultFormat == "" {
		defaultFormat = "svg"
	}

	var flags encodeFlags
	encodeCmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text, or a booking id with --booking, into a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd.OutOrStdout(), args[0], flags, logger)
		},
	}
	f := encodeCmd.Flags()
	f.StringVar(&flags.format, "format", defaultFormat, "Output format: svg, png or text (default from $"+formatEnv+")")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.IntVar(&flags.size, "size", 220, "SVG width and height in pixels")
	f.IntVar(&flags.scale, "scale", 10, "PNG pixels per module")
	f.BoolVar(&flags.booking, "booking", false, "Treat the argument as a booking id and encode its ticket payload")
	f.BoolVar(&flags.invert, "invert", false, "Invert text output for dark terminals")

	parseCmd := &cobra.Command{
		Use:   "parse <scanned-text>",
		Short: "Extract the booking id from scanned ticket text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), args[0], logger)
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print the fixed symbol layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout())
		},
	}

	root.AddCommand(encodeCmd, parseCmd, infoCmd)
	return root
}

// newLogger returns a development console logger writing to w.
func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core, zap.Development())
}

func runEncode(stdout io.Writer, arg string, flags encodeFlags, logger *zap.Logger) error {
	if err := validateFlags(flags); err != nil {
		return codeError(exitUsage, "invalid flags: %s", err)
	}

	content := arg
	if flags.booking {
		if err := booking.Validate(arg); err != nil {
			return codeError(exitRejected, "%s", err)
		}
		content = booking.Payload(arg)
	}
	logger.Info("encoding", zap.Int("payload_len", len(content)), zap.Bool("booking", flags.booking))

	qr, err := ticketqr.NewQRCode(content)
	if err != nil {
		return codeError(exitRejected, "%s", err)
	}
	logger.Debug("symbol built", zap.Int("size", qr.Size), zap.Int("dark", qr.DarkCount()), zap.Int("codewords", len(qr.Codewords)))

	var buf bytes.Buffer
	switch flags.format {
	case "svg":
		err = qr.WriteSVG(&buf, flags.size)
	case "png":
		err = qr.WritePNG(&buf, flags.scale)
	case "text":
		_, err = buf.WriteString(qr.ToSmallString(flags.invert))
	}
	if err != nil {
		return codeError(exitFailure, "rendering %s: %s", flags.format, err)
	}
	logger.Info("rendered", zap.String("format", flags.format), zap.Int("bytes", buf.Len()))

	if flags.out != "" {
		if err := os.WriteFile(flags.out, buf.Bytes(), 0o644); err != nil {
			return codeError(exitUsage, "writing output file: %s", err)
		}
		logger.Info("wrote output", zap.String("path", flags.out))
		return nil
	}
	if _, err := stdout.Write(buf.Bytes()); err != nil {
		return codeError(exitUsage, "writing output: %s", err)
	}
	return nil
}

func runParse(stdout io.Writer, scanned string, logger *zap.Logger) error {
	id, ok := booking.ParseScan(scanned)
	if !ok {
		logger.Debug("not a booking payload", zap.String("scanned", scanned))
		return codeError(exitRejected, "not a booking ticket: %q", scanned)
	}
	logger.Info("parsed booking", zap.String("id", id))
	_, err := fmt.Fprintln(stdout, id)
	return err
}

func runInfo(stdout io.Writer) error {
	_, err := fmt.Fprintf(stdout,
		"size: %d\ncodewords: %d (data %d, correction %d)\nmax payload: %d bytes\nmax booking id: %d bytes\n",
		ticketqr.Size, ticketqr.TotalCodewords, ticketqr.DataCodewords, ticketqr.ECCodewords,
		ticketqr.MaxPayloadLen, booking.MaxIDLen)
	return err
}

// validateFlags returns an error if any flag value is invalid.
func validateFlags(flags encodeFlags) error {
	switch flags.format {
	case "svg", "png", "text":
	default:
		return fmt.Errorf("--format must be svg, png or text, got %q", flags.format)
	}
	if flags.size < ticketqr.Size {
		return fmt.Errorf("--size must be at least %d, got %d", ticketqr.Size, flags.size)
	}
	if flags.scale < 1 {
		return fmt.Errorf("--scale must be > 0, got %d", flags.scale)
	}
	if flags.format == "png" && flags.out == "" {
		return errors.New("--format png requires --out")
	}
	return nil
}
