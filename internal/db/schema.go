package db

// SchemaSQL is the complete schema for fresh labops installs.
//
// This is the single source of truth for the database layout. All
// repository tests load it via GetSchemaSQL() so test schemas cannot
// drift from production: if repository code references a column that is
// not declared here, tests fail immediately with "no such column".
//
// Item lists are stored as JSON text. Imported rows carry arbitrary
// spreadsheet columns, so per-item fields cannot be modeled as columns.
const SchemaSQL = `
-- Lab personnel (testers and assistants)
CREATE TABLE IF NOT EXISTS testers (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	team TEXT NOT NULL CHECK(team IN ('testers', 'assistants')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Test mapping table: (description, variant) -> grid column
CREATE TABLE IF NOT EXISTS test_mappings (
	id TEXT PRIMARY KEY,
	description TEXT NOT NULL,
	variant TEXT NOT NULL DEFAULT '',
	header_group TEXT NOT NULL,
	header_sub TEXT NOT NULL,
	sort_order INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Pool task groups, including returned-pool entries
CREATE TABLE IF NOT EXISTS task_groups (
	id TEXT PRIMARY KEY,
	request_id TEXT NOT NULL,
	category TEXT NOT NULL CHECK(category IN ('Urgent', 'Normal', 'PoCat', 'Manual', 'Other')) DEFAULT 'Normal',
	sort_order INTEGER,
	is_returned_pool INTEGER NOT NULL DEFAULT 0,
	return_reason TEXT,
	returned_by TEXT,
	shift TEXT,
	items TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_task_groups_category ON task_groups(category);
CREATE INDEX IF NOT EXISTS idx_task_groups_request ON task_groups(request_id);

-- Execution assignments (tester, date, shift)
CREATE TABLE IF NOT EXISTS assigned_tasks (
	id TEXT PRIMARY KEY,
	request_id TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT 'Normal',
	tester_id TEXT NOT NULL,
	date TEXT NOT NULL,
	shift TEXT NOT NULL CHECK(shift IN ('day', 'night')),
	status TEXT NOT NULL DEFAULT 'Pending',
	items TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_assigned_tasks_date_shift ON assigned_tasks(date, shift);
CREATE INDEX IF NOT EXISTS idx_assigned_tasks_tester ON assigned_tasks(tester_id);

-- Preparation assignments (assistant, date, shift), linked to origin group
CREATE TABLE IF NOT EXISTS assigned_prepare_tasks (
	id TEXT PRIMARY KEY,
	request_id TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT 'Normal',
	assistant_id TEXT NOT NULL,
	date TEXT NOT NULL,
	shift TEXT NOT NULL CHECK(shift IN ('day', 'night')),
	original_doc_id TEXT,
	original_indices TEXT NOT NULL DEFAULT '[]',
	items TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_prepare_tasks_date_shift ON assigned_prepare_tasks(date, shift);
CREATE INDEX IF NOT EXISTS idx_prepare_tasks_assistant ON assigned_prepare_tasks(assistant_id);

-- Daily schedules, one record per date
CREATE TABLE IF NOT EXISTS daily_schedules (
	date TEXT PRIMARY KEY,
	day_testers TEXT NOT NULL DEFAULT '[]',
	night_testers TEXT NOT NULL DEFAULT '[]',
	day_assistants TEXT NOT NULL DEFAULT '[]',
	night_assistants TEXT NOT NULL DEFAULT '[]'
);

-- End-of-shift housekeeping reports, keyed {date}_{shift}
CREATE TABLE IF NOT EXISTS shift_reports (
	id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	shift TEXT NOT NULL CHECK(shift IN ('day', 'night')),
	instrument_health TEXT,
	waste_level TEXT,
	cleanliness TEXT,
	notes TEXT,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create the modern schema directly and mark all
		// migrations as applied so they never run.
		if _, err = db.Exec(SchemaSQL); err != nil {
			return err
		}
		if _, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
