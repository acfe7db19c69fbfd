package points

import "time"

const (
	// Path is the remote node the main screen writes.
	Path = "pontos"
	// Placeholder is the value written to Path.
	Placeholder = "100"
)

// Node is one path/value pair in the remote database.
type Node struct {
	Path      string
	Value     string
	UpdatedAt time.Time
}
