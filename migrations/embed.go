package migrations

import "embed"

// FS holds the schema migrations of both apps, one directory per app.
//
//go:embed orders/*.sql blog/*.sql
var FS embed.FS

const (
	OrdersDir = "orders"
	BlogDir   = "blog"
)
