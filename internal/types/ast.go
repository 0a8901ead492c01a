package types

// Operation is the kind of statement being assembled.
type Operation string

const (
	OpNone   Operation = ""
	OpSelect Operation = "SELECT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// JoinType is the keyword placed before JOIN.
type JoinType string

const (
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
	OuterJoin JoinType = "FULL OUTER"
	CrossJoin JoinType = "CROSS"
)
