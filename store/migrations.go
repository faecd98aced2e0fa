package store

// Migration is one ordered schema step
type Migration struct {
	ID          int
	Description string
	SQLite      string
	Postgres    string
}

const schemaVersionDDL = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

// migrations contains all schema migrations in order
var migrations = []Migration{
	{
		ID:          1,
		Description: "Create history table",
		SQLite: `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	score INTEGER NOT NULL,
	ammo INTEGER NOT NULL,
	bullets_missed INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
		Postgres: `
CREATE TABLE IF NOT EXISTS history (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL,
	score INTEGER NOT NULL,
	ammo INTEGER NOT NULL,
	bullets_missed INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`,
	},
	{
		ID:          2,
		Description: "Index history by score",
		SQLite:      `CREATE INDEX IF NOT EXISTS idx_history_score ON history(score DESC)`,
		Postgres:    `CREATE INDEX IF NOT EXISTS idx_history_score ON history(score DESC)`,
	},
}

// SchemaVersion is the version after all migrations are applied
func SchemaVersion() int {
	return migrations[len(migrations)-1].ID
}
