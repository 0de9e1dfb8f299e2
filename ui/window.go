package ui

import (
	"fmt"
	"github.com/benbjohnson/clock"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/they4kman/gomatch/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
	"image/color"
	"time"
)

const (
	headerHeight = 50
	cardPadding  = 4
)

type layout struct {
	cellSize float64
}

func (l layout) boardHeight() float64 {
	return l.cellSize * game.GridHeight
}

func (l layout) bounds() pixel.Rect {
	return pixel.R(0, 0, l.cellSize*game.GridWidth, l.boardHeight()+headerHeight)
}

func (l layout) cardRect(x, y int) pixel.Rect {
	min := pixel.V(float64(x)*l.cellSize, float64(game.GridHeight-1-y)*l.cellSize)
	return pixel.R(
		min.X+cardPadding, min.Y+cardPadding,
		min.X+l.cellSize-cardPadding, min.Y+l.cellSize-cardPadding,
	)
}

// screenToCard maps a window position to a card index; ok is false over the
// status header
func (l layout) screenToCard(pos pixel.Vec) (idx int, ok bool) {
	if pos.X < 0 || pos.Y < 0 || pos.Y >= l.boardHeight() || pos.X >= l.cellSize*game.GridWidth {
		return game.NoCard, false
	}
	x := int(pos.X / l.cellSize)
	y := game.GridHeight - 1 - int(pos.Y/l.cellSize)
	return y*game.GridWidth + x, true
}

func (l layout) inHeader(pos pixel.Vec) bool {
	return pos.Y >= l.boardHeight()
}

// Run opens the game window and plays until it is closed. It must be called
// from within pixelgl.Run.
func Run(config game.GameConfig) {
	l := layout{cellSize: float64(config.CellSize)}

	cfg := pixelgl.WindowConfig{
		Title:  "gomatch",
		Bounds: l.bounds(),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	clk := clock.New()
	controller := game.NewController(config, clk)
	controller.Start()
	defer controller.Stop()

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	statusText := text.New(pixel.V(20, l.boardHeight()+headerHeight/2-5), basicAtlas)
	cardText := text.New(pixel.ZV, basicAtlas)

	var mismatchShown time.Time

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	for !win.Closed() {
		win.Update()
		controller.Pump()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		if win.JustPressed(pixelgl.MouseButtonLeft) {
			pos := win.MousePosition()
			if idx, ok := l.screenToCard(pos); ok {
				controller.ClickCard(idx)
			} else if l.inHeader(pos) {
				controller.ClickStatus()
			}
		}

		// Start a new game with Enter once won
		if win.JustPressed(pixelgl.KeyEnter) {
			controller.ClickStatus()
		}

		state := controller.State()
		if state.Session.Phase == game.MismatchReveal {
			if mismatchShown.IsZero() {
				mismatchShown = clk.Now()
			}
		} else {
			mismatchShown = time.Time{}
		}

		win.Clear(colornames.Gainsboro)

		statusText.Clear()
		statusText.Color = colornames.Black
		if state.Session.IsWon() {
			statusText.Color = colornames.Green
		}
		fmt.Fprint(statusText, state.StatusText())
		statusText.Draw(win, pixel.IM)

		cards := state.Board.Cards()

		imd := imdraw.New(nil)
		for _, card := range cards {
			imd.Color = cardColor(state, card, clk.Since(mismatchShown))
			rect := l.cardRect(card.X(), card.Y())
			imd.Push(rect.Min, rect.Max)
			imd.Rectangle(0) // 0 = filled
		}
		imd.Draw(win)

		for _, card := range cards {
			label := cardLabel(state, card)

			cardText.Clear()
			cardText.Color = colornames.Black
			fmt.Fprint(cardText, label)

			center := l.cardRect(card.X(), card.Y()).Center()
			offset := cardText.BoundsOf(label).Center()
			cardText.Draw(win, pixel.IM.Moved(center.Sub(offset)))
		}
	}
}

func cardLabel(state game.State, card game.Card) string {
	if state.FaceShown(card.Index()) {
		return card.Face().Name()
	}
	return game.FaceDownText
}

func cardColor(state game.State, card game.Card, sinceMismatch time.Duration) color.Color {
	switch {
	case card.IsMatched():
		return colornames.Palegreen
	case state.Session.Phase == game.MismatchReveal && card.IsRevealed():
		progress := float64(sinceMismatch) / float64(game.MismatchDelay)
		if progress > 1 {
			progress = 1
		}
		// Fade from the warning tint towards the face-down color as the
		// cards are about to turn back
		fade := InOutCubic(progress)
		from := pixel.ToRGBA(colornames.Lightcoral)
		to := pixel.ToRGBA(colornames.Steelblue)
		return from.Scaled(1 - fade).Add(to.Scaled(fade))
	case state.FaceShown(card.Index()):
		return colornames.Lightyellow
	default:
		return colornames.Steelblue
	}
}

func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	} else {
		t -= 2
		return 0.5 * (t*t*t + 2)
	}
}
