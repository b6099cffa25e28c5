package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	stdlog "log"

	"github.com/dforsyth/raftfmt/formatter"
	"github.com/dforsyth/raftfmt/log"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	formatter string
	truncate  int
	logger    string
	level     string
	hex       bool
}

// UnknownNameError is returned when a flag names something that does not
// exist, such as a formatter or an enum value.
type UnknownNameError struct {
	Kind, Name string
}

func (e UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

func NewCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "raftfmtctl",
		Short:        "Render raft records the way raftfmt logs them",
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.formatter, "formatter", "default", "payload formatter: default, hex or redact")
	flags.IntVar(&opts.truncate, "truncate", -1, "show at most this many bytes of each payload (-1 for all)")
	flags.StringVar(&opts.logger, "logger", "stdout", "output: stdout, zap, logrus, hclog or std")
	flags.StringVar(&opts.level, "level", "info", "level to log at when --logger is not stdout")
	flags.BoolVar(&opts.hex, "hex", false, "payload flags are hex encoded")

	rootCmd.AddCommand(EntryCmd(opts))
	rootCmd.AddCommand(ConfChangeCmd(opts))
	rootCmd.AddCommand(ConfChangeV2Cmd(opts))
	rootCmd.AddCommand(SnapshotCmd(opts))
	rootCmd.AddCommand(MessageCmd(opts))

	return rootCmd
}

func (o *options) customFormatter() (formatter.CustomFormatter, error) {
	var f formatter.CustomFormatter
	switch o.formatter {
	case "default":
		f = formatter.DefaultFormatter{}
	case "hex":
		f = formatter.HexFormatter
	case "redact":
		f = formatter.RedactFormatter
	default:
		return nil, errors.WithStack(UnknownNameError{Kind: "formatter", Name: o.formatter})
	}
	if o.truncate >= 0 {
		f = formatter.Truncate(f, o.truncate)
	}
	return f, nil
}

func (o *options) newLogger(w io.Writer) (log.Logger, error) {
	switch o.logger {
	case "zap":
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(w),
			zapcore.DebugLevel,
		)
		return log.NewZap(zap.New(core).Named("raftfmtctl")), nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		l.SetLevel(logrus.TraceLevel)
		return log.NewLogrus(l), nil
	case "hclog":
		return log.NewHclog(hclog.New(&hclog.LoggerOptions{
			Name:   "raftfmtctl",
			Output: w,
			Level:  hclog.Trace,
		})), nil
	case "std":
		return log.NewStd(stdlog.New(w, "", stdlog.LstdFlags)), nil
	}
	return nil, errors.WithStack(UnknownNameError{Kind: "logger", Name: o.logger})
}

func (o *options) payload(s string) ([]byte, error) {
	if !o.hex {
		return []byte(s), nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding payload %q", s)
	}
	return b, nil
}

// emit renders a record with the configured formatter and writes it to the
// configured output.
func (o *options) emit(cmd *cobra.Command, render func(formatter.Bound) string) error {
	f, err := o.customFormatter()
	if err != nil {
		return err
	}
	b := formatter.Bound{Formatter: f}

	if o.logger == "stdout" {
		fmt.Fprintln(cmd.OutOrStdout(), render(b))
		return nil
	}

	lvl, err := log.ParseLevel(o.level)
	if err != nil {
		return err
	}
	logger, err := o.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	log.Log(logger, lvl, render(b))
	return nil
}

func lookup(kind string, table map[string]int32, name string) (int32, error) {
	v, ok := table[name]
	if !ok {
		return 0, errors.WithStack(UnknownNameError{Kind: kind, Name: name})
	}
	return v, nil
}
