//go:build ebiten

package ui

import (
	"image/color"

	"wrapsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 14

// HUD draws the game's status lines in the top-left corner of the board.
type HUD struct {
	status core.StatusProvider
}

// NewHUD constructs a HUD for the provided game. Games without status lines
// get an empty HUD.
func NewHUD(game core.Game) *HUD {
	h := &HUD{}
	if sp, ok := game.(core.StatusProvider); ok {
		h.status = sp
	}
	return h
}

// Draw renders the status lines onto dst.
func (h *HUD) Draw(dst *ebiten.Image) {
	if h.status == nil {
		return
	}
	face := basicfont.Face7x13
	y := lineHeight
	for _, s := range h.status.Status() {
		text.Draw(dst, s.Label+": "+s.Value, face, 4, y, color.White)
		y += lineHeight
	}
}
