package sqlite

// Schema DDL for the models table. The autoincrement position column
// preserves insertion order across process restarts; model_id is a UUID v7
// so rows stay addressable for targeted DELETEs.
const schemaDDL = `CREATE TABLE IF NOT EXISTS models (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    model_id TEXT NOT NULL UNIQUE,
    body TEXT NOT NULL
);`
