package roster

// Known role values. Role is an open enumeration; these are the values the
// default roster uses and the shell offers as dropdown options.
const (
	RolePlayer = "Player"
	RoleCoach  = "Coach"
	RoleStaff  = "Staff"
)

// Known type (side) values.
const (
	TypeOffense = "Offense"
	TypeDefense = "Defense"
)

// NotAvailable is the literal used by the roster file for empty fields.
const NotAvailable = "N/A"

// "No filter" dropdown options.
const (
	AllFilter = "All"
	AllRoles  = "All Roles"
	AllTypes  = "All Types"
)

// Record is one roster entry (player, coach, or staff member).
// ID is assigned by the store in load order and never consulted by Query.
type Record struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Position string `json:"position"`
	Number   string `json:"number"`
	Type     string `json:"type"`
}

// Criteria is the current search/filter/sort selection driving a query.
type Criteria struct {
	SearchText string  `json:"search"`
	RoleFilter string  `json:"role"`
	TypeFilter string  `json:"type"`
	SortKey    SortKey `json:"sort"`
}
