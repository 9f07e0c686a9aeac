package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tags (
	id         TEXT PRIMARY KEY,
	label      TEXT NOT NULL UNIQUE,
	color      TEXT NOT NULL DEFAULT '',
	position   INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	location   TEXT NOT NULL DEFAULT '',
	dates      TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'Planning'
		CHECK(status IN ('Active', 'Planning', 'Archived')),
	sort_order INTEGER NOT NULL DEFAULT 0,
	tags       TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS stands (
	id         TEXT PRIMARY KEY,
	project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	company    TEXT NOT NULL,
	position   INTEGER NOT NULL DEFAULT 0,
	tags       TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_projects_sort_order ON projects(sort_order);
CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
CREATE INDEX IF NOT EXISTS idx_stands_project_id ON stands(project_id);
CREATE INDEX IF NOT EXISTS idx_tags_position ON tags(position);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
