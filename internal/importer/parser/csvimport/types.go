package csvimport

// Column positions in the CSV file.
const (
	Title int = iota
	Type
	Value
	Category
)

// columns is the number of columns used. Additional columns are ignored.
const columns = 4
