package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type GameConfig struct {
	// Size of a card on screen, in pixels
	CellSize uint

	Seed int64

	// Show every face for PreviewDuration before play starts
	Preview bool

	// Snapshot to load the board layout from, for every game of the run
	Snapshot *BoardSnapshot

	Director         Director
	DirectorInterval time.Duration

	// Path to directory where snapshots of won boards should be saved
	SavedSnapshotsDir string
}

func NewGameConfig() GameConfig {
	return GameConfig{
		CellSize:         100,
		Preview:          true,
		Director:         nil,
		DirectorInterval: 400 * time.Millisecond,
		Snapshot:         nil,
	}
}

func (config GameConfig) createBoard(seed int64) Board {
	if config.Snapshot == nil {
		return NewBoard(seed)
	}

	board, err := config.Snapshot.CreateBoard()
	if err != nil {
		logrus.WithError(err).Warn("could not load snapshot; dealing a random board")
		return NewBoard(seed)
	}
	return board
}

func (config GameConfig) onGameEnd(state State) {
	if err := config.saveSnapshot(state, time.Now()); err != nil {
		logrus.WithError(err).Error("could not save snapshot")
	}
}

func (config GameConfig) saveSnapshot(state State, t time.Time) error {
	if config.SavedSnapshotsDir == "" {
		return nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrap(err, "stat snapshots dir")
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return errors.Wrap(err, "create snapshots dir")
		}
	} else if !stat.Mode().IsDir() {
		return errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	path := filepath.Join(config.SavedSnapshotsDir, config.generateSnapshotFilename(state, t))

	// TODO: prevent duplicate filenames when two games are won within a second
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create snapshot file")
	}
	defer file.Close()

	if _, err := file.WriteString(state.snapshot().Serialize()); err != nil {
		return errors.Wrap(err, "write snapshot")
	}

	logrus.WithField("path", path).Info("saved snapshot")
	return nil
}

func (config GameConfig) generateSnapshotFilename(state State, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	if state.Session.IsWon() {
		filenameBuilder.WriteString("win")
	} else {
		filenameBuilder.WriteString("other")
	}

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
