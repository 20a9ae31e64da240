package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridcaster/internal/game"
	"gridcaster/internal/game/keytracker"
)

// Input samples keyboard and mouse into a game.Intent once per tick.
type Input struct {
	keys     *keytracker.Set
	width    int
	border   int
	lastX    int
	haveLast bool
}

// NewInput creates an input sampler for a screen width pixels wide.
func NewInput(width, border int) *Input {
	return &Input{
		keys:   keytracker.NewSet(ebiten.KeyEscape, ebiten.KeyR, ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyQ),
		width:  width,
		border: border,
	}
}

// Read builds this tick's intent. over is true when the round has ended,
// which lets Enter restart.
func (in *Input) Read(over bool) game.Intent {
	intent := game.Intent{
		Forward: game.Axis(ebiten.IsKeyPressed(ebiten.KeyS), ebiten.IsKeyPressed(ebiten.KeyW)),
		Strafe:  game.Axis(ebiten.IsKeyPressed(ebiten.KeyA), ebiten.IsKeyPressed(ebiten.KeyD)),
		Turn:    game.Axis(ebiten.IsKeyPressed(ebiten.KeyLeft), ebiten.IsKeyPressed(ebiten.KeyRight)),
		Fire:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || in.keys.JustPressed(ebiten.KeySpace),
		Pause:   in.keys.JustPressed(ebiten.KeyEscape),
	}
	restart := in.keys.JustPressed(ebiten.KeyR)
	enter := in.keys.JustPressed(ebiten.KeyEnter)
	intent.Restart = restart || (over && enter)
	intent.MouseDX = in.mouseDelta()
	return intent
}

// Quit reports the quit key.
func (in *Input) Quit() bool {
	return in.keys.JustPressed(ebiten.KeyQ)
}

// mouseDelta returns horizontal motion since the last call. With a visible
// cursor, motion inside the border band is ignored.
func (in *Input) mouseDelta() float64 {
	x, _ := ebiten.CursorPosition()
	defer func() {
		in.lastX = x
		in.haveLast = true
	}()
	if !in.haveLast {
		return 0
	}
	if ebiten.CursorMode() != ebiten.CursorModeCaptured && game.OutsideBorder(x, in.width, in.border) {
		return 0
	}
	return float64(x - in.lastX)
}
