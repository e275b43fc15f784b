package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/logandonley/font-inspector/pkg/fontfile"
	"github.com/logandonley/font-inspector/pkg/inspect"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fi",
	Short: "fi inspects font files",
	Long: `A font inspector that classifies font files and resolves where they live.

Examples:
  # Classify a font file
  fi analyze ~/fonts/FiraCode-Regular.ttf

  # Classify a font straight from a URL
  fi analyze https://example.com/font.ttf

  # Print the resolved location of a font file
  fi path ~/fonts/FiraCode-Regular.ttf

  # Report on every installed font
  fi scan`,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files or URLs...]",
	Short: "Classify one or more font files",
	Long: `Classify one or more font files: container format, face format,
and number of faces. Arguments can mix local paths and URLs; URLs are
downloaded and inspected in memory.

Examples:
  # Classify local files
  fi analyze FiraCode-Regular.ttf Menlo.ttc

  # Classify a remote font without installing it
  fi analyze https://example.com/font.ttf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed []string
		for _, arg := range args {
			var report inspect.Report
			var err error
			if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
				report, err = inspect.InspectRemote(cmd.Context(), arg)
			} else {
				report, err = inspect.Inspect(arg)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error inspecting %s: %v\n", arg, err)
				failed = append(failed, arg)
				continue
			}
			printReport(report)
		}

		if len(failed) > 0 {
			return fmt.Errorf("failed to inspect %d of %d files", len(failed), len(args))
		}
		return nil
	},
}

func printReport(r inspect.Report) {
	fmt.Printf("%s\n", r.URI)
	if !r.Supported {
		fmt.Printf("  unsupported format (%s)\n", r.Container)
		return
	}
	if r.Family != "" {
		fmt.Printf("  family:    %s\n", r.Family)
	}
	fmt.Printf("  container: %s\n", r.Container)
	fmt.Printf("  faces:     %d (%s)\n", r.Faces, r.Face)
}

var pathCmd = &cobra.Command{
	Use:   "path [files...]",
	Short: "Print the resolved location of font files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			f := fontfile.Open(arg)
			uri, err := f.URIPath()
			f.Close()
			if err != nil {
				return fmt.Errorf("resolving %s: %w", arg, err)
			}
			fmt.Println(uri)
		}
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Report on every installed font",
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := inspect.NewScanner()
		reports, err := scanner.Scan(cmd.Context())
		if err != nil {
			return fmt.Errorf("scanning fonts: %w", err)
		}

		if len(reports) == 0 {
			fmt.Println("No fonts found")
			return nil
		}

		supported := 0
		for _, r := range reports {
			if r.Supported {
				supported++
				name := r.Family
				if name == "" {
					name = "unknown family"
				}
				fmt.Printf("  - %s (%s, %d face(s)): %s\n", name, r.Container, r.Faces, r.URI)
			} else {
				fmt.Printf("  - unsupported (%s): %s\n", r.Container, r.URI)
			}
		}

		fmt.Printf("\nScanned %d font files, %d supported\n", len(reports), supported)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(scanCmd)
}
