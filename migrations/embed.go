package migrations

import "embed"

// Files holds the forward-only SQL migrations compiled into the binary, so
// a deployment is a single executable plus its database file.
//
//go:embed *.sql
var Files embed.FS
