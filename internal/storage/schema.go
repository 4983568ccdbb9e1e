package storage

const settingDefaultCurrency = "default_currency"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    expense_id  TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    amount      REAL NOT NULL,
    currency    TEXT NOT NULL,
    date        TEXT NOT NULL,
    tag_id      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tags (
    tag_id  TEXT PRIMARY KEY,
    name    TEXT NOT NULL,
    color   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settings (
    key    TEXT PRIMARY KEY,
    value  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);
CREATE INDEX IF NOT EXISTS idx_expenses_tag ON expenses(tag_id);
`
