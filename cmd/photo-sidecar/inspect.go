// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/photo-sidecar/internal/caption"
	"github.com/pdiddy/photo-sidecar/internal/exifdata"
	"github.com/pdiddy/photo-sidecar/internal/normalize"
	"github.com/pdiddy/photo-sidecar/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <image>",
	Short: "Print the decoded metadata for an image without writing a note",
	Long: `Inspect decodes an image's metadata and prints the raw tag tree, the
resolved caption, and the canonical record as YAML. Nothing is written;
useful for checking what a sidecar note would contain.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("tags", false, "print only the raw tag tree")

	rootCmd.AddCommand(inspectCmd)
}

// inspectOutput is the YAML document printed by inspect.
type inspectOutput struct {
	Caption string         `yaml:"caption"`
	Record  types.Record   `yaml:"record"`
	Tags    *types.TagTree `yaml:"tags"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	imagePath := args[0]
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	tree, err := exifdata.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding metadata: %w", err)
	}

	tagsOnly, _ := cmd.Flags().GetBool("tags")
	var doc any
	if tagsOnly {
		doc = tree
	} else {
		base := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
		cfg := pipelineConfig()
		doc = inspectOutput{
			Caption: caption.Resolve(tree),
			Record:  normalize.Normalize(tree, base, cfg.Note),
			Tags:    tree,
		}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
