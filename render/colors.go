package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 22, 18)    // Dusty night
	RgbFieldFloor = tcell.NewRGBColor(40, 32, 24)    // Packed dirt
	RgbObstacle   = tcell.NewRGBColor(120, 100, 80)  // Sandstone
	RgbPlayer     = tcell.NewRGBColor(255, 210, 90)  // Brass
	RgbEnemy      = tcell.NewRGBColor(220, 60, 60)   // Bandit red
	RgbPlayerShot = tcell.NewRGBColor(255, 255, 200) // Muzzle white
	RgbEnemyShot  = tcell.NewRGBColor(255, 120, 40)  // Hot orange

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbAmmoBg     = tcell.NewRGBColor(200, 170, 90)  // Cartridge
	RgbScoreBg    = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbTicksText  = tcell.NewRGBColor(150, 150, 150) // Gray

	RgbStatePlaying = tcell.NewRGBColor(144, 238, 144) // Light green
	RgbStatePaused  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStateMenu    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStateOver    = tcell.NewRGBColor(200, 50, 50)   // Red

	RgbTitle   = tcell.NewRGBColor(255, 200, 60)
	RgbMenu    = tcell.NewRGBColor(220, 220, 220)
	RgbMenuDim = tcell.NewRGBColor(130, 130, 130)
	RgbBanter  = tcell.NewRGBColor(255, 240, 200)
)

// GetHealthBarColor returns the fill color at health ratio 0.0 to 1.0: red, through yellow, to green
func GetHealthBarColor(ratio float64) tcell.Color {
	ratio = min(max(ratio, 0), 1)

	if ratio < 0.5 { // Red to Yellow
		t := ratio / 0.5
		return tcell.NewRGBColor(220, int32(50+(215-50)*t), 40)
	}
	// Yellow to Green
	t := (ratio - 0.5) / 0.5
	return tcell.NewRGBColor(int32(220-(220-60)*t), int32(215-(215-200)*t), int32(40+(80-40)*t))
}

// FadeColor scales c toward the background by alpha in [0, 1]
func FadeColor(c tcell.Color, alpha float64) tcell.Color {
	alpha = min(max(alpha, 0), 1)
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(fg, bgc int32) int32 {
		return bgc + int32(float64(fg-bgc)*alpha)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
