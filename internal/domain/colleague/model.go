package colleague

// Colleague is an internal user identity used for login selection and
// change attribution only; there is no credential check.
type Colleague struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultNames seeds the colleague list on first start.
var DefaultNames = []string{
	"Felix",
	"Kris",
	"Michael",
	"Pascal",
	"Heidi V.",
	"Heidi D.",
	"Marie-Roos",
	"Jelle",
	"Quinten",
	"Rik",
}
