package migrations

import "embed"

// FS holds the campaign schema: campaign headers, the append-only
// ledger_entries journal and the custody_accounts balances. internal/db
// applies it through golang-migrate's iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
