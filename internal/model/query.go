package model

type QueryRequest struct {
	SQLQuery string `json:"sql_query" binding:"required"`
}

// Record is one result row keyed by column name.
type Record map[string]any

// ResultSet keeps rows in the order the engine produced them.
type ResultSet []Record
