package sqlite

var pragmas = []string{
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = OFF",
}

// Timestamps are stored as fixed-width UTC text so ORDER BY on them is chronological.
const (
	createItems = `CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createItemDetails = `CREATE TABLE IF NOT EXISTS item_details (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT,
    category TEXT,
    priority TEXT,
    status TEXT,
    assignee TEXT,
    location TEXT,
    workflow_stage TEXT,
    tags TEXT,
    custom_fields TEXT,
    metadata TEXT,
    dependencies TEXT,
    external_refs TEXT,
    linked_items TEXT,
    reminder_settings TEXT,
    attachment_ids TEXT,
    due_date TEXT,
    estimated_hours REAL,
    budget REAL,
    approval_required INTEGER NOT NULL DEFAULT 0,
    template_id INTEGER,
    parent_item_id INTEGER,
    created_by TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createItemDetailHistory = `CREATE TABLE IF NOT EXISTS item_detail_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id INTEGER NOT NULL,
    version INTEGER NOT NULL,
    action TEXT NOT NULL,
    actor TEXT,
    changes TEXT,
    created_at TEXT NOT NULL,
    UNIQUE (item_id, version)
);`

	indexItemsCreatedAt       = `CREATE INDEX IF NOT EXISTS idx_items_created_at ON items (created_at);`
	indexItemDetailsCreatedAt = `CREATE INDEX IF NOT EXISTS idx_item_details_created_at ON item_details (created_at);`
	indexItemDetailsParent    = `CREATE INDEX IF NOT EXISTS idx_item_details_parent ON item_details (parent_item_id);`
	indexHistoryItem          = `CREATE INDEX IF NOT EXISTS idx_item_detail_history_item ON item_detail_history (item_id);`
)

var schema = []string{
	createItems,
	createItemDetails,
	createItemDetailHistory,
	indexItemsCreatedAt,
	indexItemDetailsCreatedAt,
	indexItemDetailsParent,
	indexHistoryItem,
}
