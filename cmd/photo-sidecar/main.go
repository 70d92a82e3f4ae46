// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the photo-sidecar CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the photo-sidecar CLI.
var rootCmd = &cobra.Command{
	Use:   "photo-sidecar",
	Short: "Create metadata sidecar notes for JPEG images",
	Long: `photo-sidecar extracts embedded metadata (EXIF, XMP, IPTC, GPS, file
properties) from JPEG images and writes a companion Markdown note per image:
a strictly ordered metadata header plus a rendered body with the image embed
and resolved caption. An image that already has a sidecar note is left alone.

Use process for explicit images, or watch to handle new images as they
appear in a folder.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./photo-sidecar.yaml or ~/.config/photo-sidecar/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("photo-sidecar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "photo-sidecar"))
		}
	}

	viper.SetEnvPrefix("PHOTO_SIDECAR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
