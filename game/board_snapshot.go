package game

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"strings"
)

type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	ElapsedTicks    int    `yaml:"elapsed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (state State) snapshot() *BoardSnapshot {
	return &BoardSnapshot{
		Seed:            state.Board.Seed(),
		ElapsedTicks:    state.Session.ElapsedTicks,
		SerializedBoard: state.Board.serialize(),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// CreateBoard rebuilds the dealt layout. Matched markers are dropped, so
// the board always starts a fresh game.
func (snapshot *BoardSnapshot) CreateBoard() (Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")
	if len(rows) != GridHeight {
		return Board{}, errors.Errorf("snapshot has %d rows, want %d", len(rows), GridHeight)
	}

	faces := make([]Symbol, 0, NumCards)
	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len([]rune(row)) != GridWidth {
			return Board{}, errors.Errorf("snapshot row %d has %d cards, want %d", y, len([]rune(row)), GridWidth)
		}

		for x, c := range []rune(row) {
			var card Card
			if !card.deserialize(c) {
				return Board{}, errors.Errorf("unknown card %q at (%d, %d)", c, x, y)
			}
			faces = append(faces, card.face)
		}
	}

	board, err := BoardFromFaces(snapshot.Seed, faces)
	if err != nil {
		return Board{}, errors.Wrap(err, "invalid snapshot board")
	}
	return board, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parse snapshot")
	}
	if _, err := snapshot.CreateBoard(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func LoadSnapshotFile(path string) (*BoardSnapshot, error) {
	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read snapshot %s", path)
	}

	snapshot, err := LoadSnapshot(string(contents))
	if err != nil {
		return nil, errors.Wrapf(err, "load snapshot %s", path)
	}
	return snapshot, nil
}
