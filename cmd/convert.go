package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewhowdencom/mdpress/internal/convert"
	"github.com/andrewhowdencom/mdpress/internal/http"
	"github.com/andrewhowdencom/mdpress/internal/worker"
)

var (
	outFile string
	outDir  string
	dryRun  bool
	watch   bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert INPUT",
	Short: "Convert a Markdown file or directory to HTML",
	Long: `Convert a Markdown file, or every Markdown file under a directory,
to standalone HTML documents. With --watch, keep converting as the
input changes until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		if outFile != "" && outDir != "" {
			return fmt.Errorf("--output and --out-dir are mutually exclusive")
		}

		conv, err := convert.New(convert.Options{
			OutFile:      outFile,
			OutDir:       outDir,
			TemplatePath: viper.GetString("convert.template"),
		})
		if err != nil {
			return err
		}

		if dryRun {
			return printPlan(cmd, conv, input)
		}

		if watch {
			if port := viper.GetInt("watch.port"); port != 0 {
				go http.Start(port, previewDir(conv, input))
			}
			w := worker.New(conv, input, viper.GetDuration("watch.debounce"))
			return w.Run(cmd.Context())
		}

		written, err := conv.Tree(cmd.Context(), input)
		if err != nil {
			return err
		}
		for _, out := range written {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

// printPlan lists what a conversion would read and write, without writing
// anything.
func printPlan(cmd *cobra.Command, conv *convert.Converter, input string) error {
	inputs, err := convert.Discover(input)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Input", "Output")
	for _, in := range inputs {
		table.Append([]string{in, conv.OutputPath(in)})
	}
	table.Render()
	return nil
}

// previewDir picks the directory the preview server should serve: the
// output directory when set, otherwise wherever the converted output of the
// input lands.
func previewDir(conv *convert.Converter, input string) string {
	if outDir != "" {
		return outDir
	}
	return filepath.Dir(conv.OutputPath(input))
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file (single input only)")
	convertCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory to write output files into")
	convertCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the conversion plan without writing")
	convertCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-convert whenever the input changes")

	convertCmd.Flags().String("template", "", "Custom document shell template")
	viper.BindPFlag("convert.template", convertCmd.Flags().Lookup("template"))

	viper.SetDefault("watch.debounce", "200ms")
	viper.SetDefault("watch.port", 0)
}
