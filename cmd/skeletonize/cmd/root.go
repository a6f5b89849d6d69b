// Package cmd wires the skeletonize engine into a cobra command tree. It is
// the CLI host described in spec §6: it owns image I/O (via internal/volume),
// the default distance-transform ordering (via the distance package), and
// command-line/config-file parsing, none of which the core package ever
// imports.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command, following the same PersistentFlags +
// sub-command layout as the teacher's cmd/cli/cmd.rootCmd.
var rootCmd = &cobra.Command{
	Use:   "skeletonize",
	Short: "Topology-preserving thinning of a binary n-D volume",
	Long: `skeletonize reduces a binary n-D raw volume to a one-voxel-wide
skeleton, preserving the topology of both the foreground and the
background. It is driven by a scalar ordering image (by default a
chessboard distance-to-background transform) that dictates the order in
which border voxels are considered for removal.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional; overrides defaults, overridden by flags)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress notifications as the thinning loop runs")
	rootCmd.AddCommand(runCmd)
}

// bindViper creates a fresh viper instance for one command invocation,
// reading cfgFile if set and binding the command's own flags on top of it
// so explicit flags always win over the config file.
func bindViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		_ = v.ReadInConfig() // a missing/unreadable config file is not fatal: defaults and flags still apply
	}
	_ = v.BindPFlags(cmd.Flags())
	return v
}
