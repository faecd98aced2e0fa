package constants

// Terminal layout
const (
	// HudRows is the number of screen rows reserved above the field for the status bar
	HudRows = 1

	// BanterRows is the number of screen rows reserved below the field for subtitles
	BanterRows = 1

	// HealthBarWidth is the cell width of the HUD health bar
	HealthBarWidth = 20

	// MinScreenWidth and MinScreenHeight are the smallest usable terminal
	MinScreenWidth  = 40
	MinScreenHeight = 12

	// MaxUsernameLength caps the name typed on the menu
	MaxUsernameLength = 16
)

// Glyphs
const (
	PlayerChar     = '@'
	EnemyChar      = 'X'
	PlayerShotChar = '•'
	EnemyShotChar  = '*'
	ObstacleChar   = '▓'
	BarFullChar    = '█'
	BarEmptyChar   = '░'
)
