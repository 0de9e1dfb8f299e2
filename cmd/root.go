package cmd

import (
	"fmt"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomatch/director/random"
	"github.com/they4kman/gomatch/director/recall"
	"github.com/they4kman/gomatch/game"
	"github.com/they4kman/gomatch/ui"
	"os"
	"time"
)

var gameConfig = game.NewGameConfig()
var directorName = ""
var snapshotPath = ""
var logLevel = "info"

var rootCmd = &cobra.Command{
	Use:   "gomatch",
	Short: "Play a memory-matching card game, by hand or by computer",
	Long: `gomatch deals sixteen cards, eight animal pairs, face down on a
4x4 grid. Turn two over; a pair stays up, anything else turns back after
half a second. Find all eight pairs as fast as you can.

Run with no arguments to play manually
	gomatch

Use the director flag to make the computer play for you
	gomatch --director recall
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		if gameConfig.Seed == 0 {
			gameConfig.Seed = time.Now().UnixNano()
		}

		director, err := newDirector(directorName, gameConfig.Seed)
		if err != nil {
			return err
		}
		gameConfig.Director = director

		if snapshotPath != "" {
			snapshot, err := game.LoadSnapshotFile(snapshotPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		pixelgl.Run(func() {
			ui.Run(gameConfig)
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newDirector(name string, seed int64) (game.Director, error) {
	switch name {
	case "":
		return nil, nil
	case "random":
		return random.NewDirector(seed), nil
	case "recall":
		return recall.NewDirector(seed), nil
	default:
		return nil, fmt.Errorf("invalid director %q (want random or recall)", name)
	}
}

func init() {
	rootCmd.Flags().Int64VarP(&gameConfig.Seed, "seed", "s", 0, "Seed for dealing boards (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&gameConfig.Preview, "preview", "p", true, "Show every card for 2 seconds before the clock starts")
	rootCmd.Flags().UintVar(&gameConfig.CellSize, "cell-size", 100, "Size of a card on screen, in pixels")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "", `Make the computer play
random: turn over random face-down cards
recall: remember every card seen and complete known pairs`)
	rootCmd.Flags().DurationVar(&gameConfig.DirectorInterval, "director-interval", 400*time.Millisecond, "Delay between the director's clicks")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Load the board layout from a saved snapshot")
	rootCmd.Flags().StringVar(&gameConfig.SavedSnapshotsDir, "snapshots-dir", "", "Directory to save snapshots of won boards into")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
