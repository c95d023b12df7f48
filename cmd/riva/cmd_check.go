package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/riva/parser"
	"github.com/dhamidi/riva/project"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newCheckCmd() *cobra.Command {
	var verbose int

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Syntax-check Riva source files",
		Long: "Syntax-check the given files, or the files of the project in the\n" +
			"current directory (riva.yaml manifest, falling back to all .riva\n" +
			"files). A failing file does not stop the remaining checks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)
			log := commonlog.GetLogger("riva.check")

			files := args
			if len(files) == 0 {
				proj, err := project.Load()
				if err != nil {
					return fmt.Errorf("load project: %w", err)
				}
				files, err = proj.SourceFiles()
				if err != nil {
					return fmt.Errorf("resolve sources: %w", err)
				}
			}
			if len(files) == 0 {
				return fmt.Errorf("no source files found")
			}

			failed := 0
			for _, file := range files {
				data, err := os.ReadFile(file)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
					failed++
					continue
				}
				if _, err := parser.Parse(data); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
					failed++
					continue
				}
				log.Debugf("%s: ok", file)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(files))
			}
			log.Infof("%d files ok", len(files))
			return nil
		},
	}

	cmd.Flags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	return cmd
}
