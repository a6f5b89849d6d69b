package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glehmann/skeletonize/connectivity"
	"github.com/glehmann/skeletonize/distance"
	"github.com/glehmann/skeletonize/internal/volume"
	"github.com/glehmann/skeletonize/skeletonize"
	"github.com/glehmann/skeletonize/voxel"
)

var dimsFlag string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Skeletonize a raw n-D binary volume in place",
	Example: `  # thin a 7x7x7 volume of bytes under 26-connectivity
  skeletonize run --input shell.raw --output skeleton.raw --dims 7,7,7 --conn-n 3 --conn-k 0`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("input", "", "path to a flat, headerless byte volume")
	runCmd.Flags().String("output", "", "path to write the thinned volume (defaults to overwriting --input)")
	runCmd.Flags().StringVar(&dimsFlag, "dims", "", "comma-separated per-axis sizes, e.g. 7,7,7")
	runCmd.Flags().Int("conn-n", 2, "foreground connectivity dimension n")
	runCmd.Flags().Int("conn-k", 0, "foreground connectivity cell dimension k (0 <= k < n)")
	runCmd.Flags().Int("foreground", 1, "foreground pixel value")
	runCmd.Flags().Int("background", 0, "background pixel value")
	runCmd.Flags().Int("progress-batch", 256, "deletions between progress notifications (0 disables reporting)")
}

// bindRunFlags maps each dash-named flag onto the underscore-named
// mapstructure key loadRunConfig expects, so the config file and the flags
// agree on one vocabulary.
func bindRunFlags(v *viper.Viper, cmd *cobra.Command) error {
	aliases := map[string]string{
		"input":          "input",
		"output":         "output",
		"conn-n":         "conn_n",
		"conn-k":         "conn_k",
		"foreground":     "foreground",
		"background":     "background",
		"progress-batch": "progress_batch",
	}
	for flagName, key := range aliases {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flagName)); err != nil {
			return fmt.Errorf("cmd: binding --%s: %w", flagName, err)
		}
	}
	return nil
}

func runRun(cmd *cobra.Command, args []string) error {
	v := bindViper(cmd)
	if err := bindRunFlags(v, cmd); err != nil {
		return err
	}
	cfg, err := loadRunConfig(v, dimsFlag)
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		cfg.Output = cfg.Input
	}

	dims := make(voxel.Index, len(cfg.Dims))
	copy(dims, cfg.Dims)

	img, err := volume.Load(cfg.Input, dims)
	if err != nil {
		return err
	}

	fg := byte(cfg.Foreground)
	bg := byte(cfg.Background)

	conn, err := connectivity.New(cfg.ConnN, cfg.ConnK)
	if err != nil {
		return fmt.Errorf("cmd: building connectivity: %w", err)
	}

	ord, err := distance.Chessboard[byte](img, fg)
	if err != nil {
		return fmt.Errorf("cmd: computing distance transform: %w", err)
	}

	opts := []skeletonize.Option[byte, uint32]{
		skeletonize.WithProgressBatch[byte, uint32](cfg.ProgressBatch),
	}
	if verbose {
		opts = append(opts, skeletonize.WithProgressObserver[byte, uint32](func(runID string, fraction float64) {
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %.1f%% thinned\n", runID, fraction*100)
		}))
	}

	if err := skeletonize.Run[byte, uint32](img, ord, conn, fg, bg, opts...); err != nil {
		return fmt.Errorf("cmd: skeletonize: %w", err)
	}

	return volume.Save(cfg.Output, img)
}
