package main

import (
	"io"
	"os"
	"strings"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/internal/config"
	"github.com/npillmayer/braille/internal/errs"
	"github.com/npillmayer/braille/internal/logging"
	"github.com/npillmayer/braille/tablefile"
	"github.com/spf13/cobra"
)

// app holds state shared by all sub-commands, set up before any of them runs.
type app struct {
	configPath string
	verbose    int

	cfg *config.Config
	tc  *braille.Transcoder
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "braille",
		Short: "Spanish text to six-dot Braille and back",
		Long: `braille transcribes Spanish text to six-dot Braille cells and reads cells
back to text.

Examples:
  braille encode "Hola 123"            # 46|125|135|123|1|_|3456|1|12|14
  braille encode -f unicode "Hola"     # ⠨⠓⠕⠇⠁
  braille decode "46|125|135|123|1"    # Hola
  braille render -o hola.png "Hola"
  braille table --format yaml
  braille serve`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: /etc/braille, ~/.braille, ./braille.toml)")
	root.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (-v info, -vv debug)")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newRenderCmd(a),
		newTableCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration, initializes logging and builds the
// transcoder.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	level := cfg.Log.Level
	switch {
	case a.verbose >= 2:
		level = "debug"
	case a.verbose == 1:
		level = "info"
	case cmd.Name() != "serve":
		level = "warn" // keep command output clean
	}
	if err := logging.Initialize(logging.Options{Level: level, JSON: cfg.Log.JSON}); err != nil {
		return errs.Wrap(err, "failed to initialize logger")
	}
	table, err := loadTable(cfg.Table.Overrides)
	if err != nil {
		return err
	}
	a.tc = braille.New(table)
	return nil
}

// loadTable returns the standard table, with the overrides file applied if
// one is configured.
func loadTable(path string) (*braille.SymbolTable, error) {
	if path == "" {
		return braille.BuildSymbolTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.WithHint(errs.Wrap(err, "cannot open table overrides"),
			"check table.overrides in the configuration")
	}
	defer f.Close()
	table, err := tablefile.Load(path, f)
	if err != nil {
		return nil, errs.Wrapf(err, "table overrides %s", path)
	}
	return table, nil
}

// input returns the arguments joined by spaces, or all of stdin if there are
// no arguments.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
