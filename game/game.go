package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/meghashyamc/vectors/config"
	"github.com/meghashyamc/vectors/geometry"
	"github.com/meghashyamc/vectors/logger"
	"github.com/meghashyamc/vectors/scene"
	"github.com/meghashyamc/vectors/sprite"
	"github.com/meghashyamc/vectors/vectors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/meghashyamc/vectors/assets"
)

type GameState int

const (
	GameStateRunning GameState = iota
	GameStatePaused
)

type Game struct {
	cfg         *config.Config
	bounds      geometry.Rect
	bodies      []*Body
	selected    int
	rotateTimer *Timer
	state       GameState
	scenePath   string
	logger      logger.Logger
	userMessage string
}

func NewGame(cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:         cfg,
		bounds:      geometry.NewRect(0, 0, float64(cfg.GetWindowWidth()), float64(cfg.GetWindowHeight())),
		rotateTimer: NewTimer(time.Duration(cfg.GetRotateIntervalMs()) * time.Millisecond),
		state:       GameStateRunning,
		scenePath:   cfg.GetSceneFile(),
		logger:      logger.New(cfg.GetLogLevel()),
	}

	if err := g.loadScene(); err != nil {
		g.logger.Error("failed to load scene", "path", g.scenePath, "err", err)
		return nil, err
	}

	g.logger.Info("game initialized",
		"bodies", len(g.bodies),
		"rotate_degrees", cfg.GetRotateDegrees(),
		"rotate_interval_ms", cfg.GetRotateIntervalMs(),
	)
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

// loadScene replaces the bodies with the ones described by the scene file.
// Without a scene file a single body is placed in the middle of the window.
func (g *Game) loadScene() error {
	var sprites []*sprite.Sprite
	if len(g.scenePath) == 0 {
		center := g.bounds.Center()
		s := sprite.New("ball", center.X, center.Y)
		vectors.ToSpriteProperty(s, sprite.Velocity, vectors.New(150, 100))
		sprites = append(sprites, s)
	} else {
		sc, err := scene.Load(g.scenePath)
		if err != nil {
			return fmt.Errorf("failed to load scene %s: %w", g.scenePath, err)
		}
		sprites = sc.Build()
	}

	g.bodies = make([]*Body, 0, len(sprites))
	for _, s := range sprites {
		g.bodies = append(g.bodies, NewBody(s))
		g.logger.Debug("body created", "name", s.Name, "position", vectors.FromSpriteProperty(s, sprite.Position))
	}
	g.selected = 0
	return nil
}

func (g *Game) saveScene() error {
	sprites := make([]*sprite.Sprite, 0, len(g.bodies))
	for _, b := range g.bodies {
		sprites = append(sprites, b.sprite)
	}

	path := savedScenePath(g.scenePath)
	if err := scene.Snapshot(sprites).Save(path); err != nil {
		return fmt.Errorf("failed to save scene: %w", err)
	}
	g.logger.Info("scene saved", "path", path, "bodies", len(sprites))
	return nil
}

func (g *Game) Update() error {
	g.handleKeys()

	switch g.state {
	case GameStateRunning:
		return g.updateRunning()
	case GameStatePaused:
		return nil
	}
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if g.state == GameStateRunning {
			g.state = GameStatePaused
		} else {
			g.state = GameStateRunning
		}
		g.logger.Debug("state changed", "state", g.state)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.selectNext()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := g.saveScene(); err != nil {
			g.logger.Error("error saving scene", "err", err)
			g.userMessage = "Save failed"
			return
		}
		g.userMessage = "Scene saved"
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		if body := g.selectedBody(); body != nil {
			body.AimAt(getCurrentMousePosition())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		if body := g.selectedBody(); body != nil {
			body.Rotate(-90)
		}
	}
}

func (g *Game) updateRunning() error {
	cursor := getCurrentMousePosition()

	g.rotateTimer.Update()
	rotate := g.rotateTimer.IsReady()
	if rotate {
		g.rotateTimer.Reset()
		g.logger.Debug("rotating velocities", "degrees", g.cfg.GetRotateDegrees())
	}

	for i, body := range g.bodies {
		if rotate {
			body.Rotate(g.cfg.GetRotateDegrees())
		}

		if i == g.selected && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			body.FollowCursor(cursor, g.cfg.GetFollowRate())
		}

		body.Update(g.bounds)
		body.UpdateHover(cursor)
	}

	return nil
}

func (g *Game) selectNext() {
	if len(g.bodies) == 0 {
		return
	}
	g.selected = (g.selected + 1) % len(g.bodies)
	g.logger.Debug("body selected", "name", g.bodies[g.selected].sprite.Name)
}

func (g *Game) selectedBody() *Body {
	if g.selected < 0 || g.selected >= len(g.bodies) {
		return nil
	}
	return g.bodies[g.selected]
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Clear screen with black background (terminal-like)
	screen.Fill(color.RGBA{0, 0, 0, 255})

	for i, body := range g.bodies {
		body.Draw(screen, i == g.selected)
	}

	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines(getCurrentMousePosition())
	if g.state == GameStatePaused {
		lines = append(lines, "PAUSED")
	}
	if len(g.userMessage) > 0 {
		lines = append(lines, g.userMessage)
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(20, 30+float64(i)*24)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, assets.HUDFont, op)
	}

	// Draw instructions
	instructionText := "Drag: move  Tab: select  E: aim  Q: turn  Space: pause  S: save  R: reset"
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, g.bounds.Height-30)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, instructionText, assets.HUDFont, op)
}

// hudLines describes the selected body relative to the cursor.
func (g *Game) hudLines(cursor vectors.Vector2) []string {
	body := g.selectedBody()
	if body == nil {
		return []string{"No bodies"}
	}

	position := body.Position()
	velocity := body.Velocity()
	toCursor := cursor.Subtract(position)
	xAxis := vectors.New(1, 0)

	return []string{
		fmt.Sprintf("%s at %v", body.sprite.Name, position),
		fmt.Sprintf("Speed: %.1f  Heading: %.1f°", velocity.Magnitude(), velocity.Angle(xAxis)),
		fmt.Sprintf("Horizontal part: %v", velocity.Project(xAxis)),
		fmt.Sprintf("Cursor distance: %.1f  Alignment: %.2f", position.Distance(cursor), velocity.NormalizedDot(toCursor)),
		fmt.Sprintf("Next turn: %.0f%%", g.rotateTimer.Progress()*100),
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}

func (g *Game) Reset() {
	g.logger.Debug("resetting game")
	if err := g.loadScene(); err != nil {
		g.logger.Error("error reloading scene", "err", err)
		g.userMessage = "Reload failed"
		return
	}
	g.rotateTimer.Reset()
	g.state = GameStateRunning
	g.userMessage = ""
	g.logger.Debug("game reset complete", "state", g.state)
}
