package mysql

// One row per collection: the payload column holds the same JSON array the
// file backend writes, so the two backends stay byte-compatible.

const createCollectionsSQL = `
CREATE TABLE IF NOT EXISTS collections (
  name       VARCHAR(32) NOT NULL PRIMARY KEY,
  payload    MEDIUMTEXT  NOT NULL,
  updated_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)
`

const upsertCollectionSQL = `
INSERT INTO collections (name, payload)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE
  payload    = VALUES(payload),
  updated_at = CURRENT_TIMESTAMP
`

const selectCollectionSQL = `
SELECT payload FROM collections WHERE name = ?
`
