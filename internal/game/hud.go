package game

import (
	"fmt"
	"time"

	"github.com/graeme-lockley/cursor-asteroids/internal/draw"
)

// drawUI draws the text overlay for the current phase. Text fields use
// fixed-width formatting so shrinking values don't leave residual
// characters on screen.
func (g *Game) drawUI(cw *draw.ChunkWriter, termWidth, termHeight int) {
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch g.Phase {
	case PhaseTitle:
		g.drawTitleScreen(cw, centerX, centerY)
	case PhasePlaying, PhaseGameOverPending:
		g.drawPlayingHUD(cw, termWidth)
		if g.Paused {
			msg := "~ PAUSED ~"
			cw.WriteAt(centerX-len(msg)/2, centerY, msg)
		}
	case PhaseGameOver:
		g.drawPlayingHUD(cw, termWidth)
		g.drawGameOverScreen(cw, centerX, centerY)
	}
}

// drawTitleScreen draws the title screen.
func (g *Game) drawTitleScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	titleArt := []string{
		`    _   ___ _____ ___ ___  ___ ___ ___  ___  `,
		`   /_\ / __|_   _| __| _ \/ _ \_ _|   \/ __| `,
		`  / _ \\__ \ | | | _||   / (_) | || |) \__ \ `,
		` /_/ \_\___/ |_| |___|_|_\\___/___|___/|___/ `,
		`                                             `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	titleStartY := centerY - 7
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	if g.HighScore > 0 {
		hs := fmt.Sprintf("High Score: %d", g.HighScore)
		cw.WriteAt(centerX-len(hs)/2, titleStartY+len(titleArt)+1, hs)
	}

	controlsY := titleStartY + len(titleArt) + 3
	controlHeader := "Controls"
	cw.WriteAt(centerX-len(controlHeader)/2, controlsY, controlHeader)

	controlLines := []string{
		"W / Up  . . . . Thrust",
		"A D / < >  . .  Rotate",
		"SPACE  . . . . . Shoot",
		"P  . . . . . . . Pause",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		cw.WriteAt(centerX-len(line)/2, controlsY+1+i, line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press SPACE to Start  <<"
		cw.WriteAt(centerX-len(prompt)/2, controlsY+len(controlLines)+2, prompt)
	}
}

// drawPlayingHUD draws score, high score, lives and wave.
func (g *Game) drawPlayingHUD(cw *draw.ChunkWriter, termWidth int) {
	cw.WriteAt(2, 1, fmt.Sprintf("Score: %-8d", g.Score))

	hsText := fmt.Sprintf("High: %-8d", g.HighScore)
	cw.WriteAt(termWidth/2-len(hsText)/2, 1, hsText)

	livesText := fmt.Sprintf("Lives: %-3d", g.Lives)
	cw.WriteAt(termWidth-len(livesText)-1, 1, livesText)

	waveText := fmt.Sprintf("Wave: %-3d", g.Wave)
	cw.WriteAt(termWidth-len(waveText)-1, 2, waveText)
}

// drawGameOverScreen draws the game-over overlay with the final score.
func (g *Game) drawGameOverScreen(cw *draw.ChunkWriter, centerX, centerY int) {
	if !g.GameOverVisible {
		return
	}

	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
		`                                              `,
	}

	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	titleStartY := centerY - 5
	for i, line := range titleArt {
		cw.WriteAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	scoreText := fmt.Sprintf("Score: %d", g.Score)
	cw.WriteAt(centerX-len(scoreText)/2, titleStartY+len(titleArt)+1, scoreText)

	if g.Score >= g.HighScore && g.Score > 0 {
		best := "New high score!"
		cw.WriteAt(centerX-len(best)/2, titleStartY+len(titleArt)+2, best)
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press any key to Restart  <<"
		cw.WriteAt(centerX-len(prompt)/2, titleStartY+len(titleArt)+4, prompt)
	}
}
