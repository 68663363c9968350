package generate

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mpapenbr/fmtune-formatter/log"
	"github.com/mpapenbr/fmtune-formatter/pkg/config"
	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/report"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "creates a forum or chat document from a setup file",
		Example: `  fmtune generate -f setup.yml --target chat --units imperial
  cat setup.json | fmtune generate -f - --link https://example.com/t/1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(config.Current(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&config.InputFile,
		"file",
		"f",
		"",
		"setup document (yaml or json), - reads stdin")
	cmd.Flags().StringVarP(&config.OutputFile,
		"out-file",
		"o",
		"",
		"write the document to this file instead of stdout")
	cmd.Flags().StringVarP(&config.Target,
		"target",
		"t",
		string(report.Forum),
		"document flavour (forum, chat)")
	cmd.Flags().StringVarP(&config.UnitSystem,
		"units",
		"u",
		"metric",
		"unit system for the stats block (metric, imperial)")
	cmd.Flags().StringVar(&config.ShareLink,
		"link",
		"",
		"link to the published tune")
	cmd.Flags().BoolVar(&config.Preview,
		"preview",
		false,
		"render forum markdown for the terminal")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// Run loads the setup named by cfg, renders it and writes the result.
// Output goes to stdout unless cfg.OutputFile is set.
func Run(cfg config.Config, stdin io.Reader, stdout io.Writer) error {
	logger := log.Default().Named("generate")

	target, err := report.ParseTarget(cfg.Target)
	if err != nil {
		return err
	}
	system, err := units.ParseGlobalUnitSystem(cfg.UnitSystem)
	if err != nil {
		return err
	}
	setup, err := loadSetup(cfg.InputFile, stdin)
	if err != nil {
		return err
	}
	logger.Debug("setup loaded",
		log.String("file", cfg.InputFile),
		log.String("title", setup.Title()),
		log.String("version", setup.Version))

	doc, err := report.Generate(target, setup, system, cfg.ShareLink)
	if err != nil {
		return err
	}
	if cfg.Preview {
		if target != report.Forum {
			logger.Warn("preview is only available for forum documents",
				log.String("target", string(target)))
		} else if doc, err = preview(doc); err != nil {
			return err
		}
	}

	if cfg.OutputFile == "" {
		_, err = fmt.Fprintln(stdout, doc)
		return err
	}
	if err := os.WriteFile(cfg.OutputFile, []byte(doc+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.OutputFile, err)
	}
	logger.Info("document written",
		log.String("file", cfg.OutputFile),
		log.String("target", string(target)))
	return nil
}

func loadSetup(name string, stdin io.Reader) (*model.FMSetup, error) {
	if name == "" || name == "-" {
		setup, err := model.Load(stdin)
		if err != nil {
			return nil, fmt.Errorf("read setup from stdin: %w", err)
		}
		return setup, nil
	}
	setup, err := model.LoadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read setup %s: %w", name, err)
	}
	return setup, nil
}

func preview(doc string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}
	out, err := renderer.Render(doc)
	if err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}
	return out, nil
}
