package names

// Name is a row of the read-only stage-name reference table
type Name struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
