package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"yapl/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the yapl version",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("full", false, "include the git commit and build date")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return err
	}
	color, err := switchFlag(cmd.Root().PersistentFlags(), "color")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(outFormat) {
	case "json":
		payload := versionPayload{Tool: "yapl", Version: version.String()}
		if full {
			payload.GitCommit = valueOrUnknown(version.GitCommit)
			payload.BuildDate = valueOrUnknown(version.BuildDate)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "pretty":
		renderVersionPretty(out, color.enabled(out), full)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", outFormat)
	}
}

func renderVersionPretty(out io.Writer, useColor, full bool) {
	fmt.Fprintf(out, "yapl %s\n", version.Colored(useColor))
	if full {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
	}
}

func valueOrUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return s
}
