package catalog

// SectionID identifies one architecture layer. The set of ids is closed.
type SectionID string

const (
	FrontendModel      SectionID = "frontend-model"
	FrontendView       SectionID = "frontend-view"
	FrontendController SectionID = "frontend-controller"
	BackendController  SectionID = "backend-controller"
	BackendService     SectionID = "backend-service"
	BackendModel       SectionID = "backend-model"
	BackendPersistence SectionID = "backend-persistence"
)

// Category groups sections into the two architecture tiers.
type Category string

const (
	Frontend Category = "frontend"
	Backend  Category = "backend"
)

var allIDs = []SectionID{
	FrontendModel,
	FrontendView,
	FrontendController,
	BackendController,
	BackendService,
	BackendModel,
	BackendPersistence,
}

// IDs returns every section id in canonical order.
func IDs() []SectionID {
	out := make([]SectionID, len(allIDs))
	copy(out, allIDs)
	return out
}

// Valid reports whether id belongs to the closed enumeration.
func (id SectionID) Valid() bool {
	for _, known := range allIDs {
		if id == known {
			return true
		}
	}
	return false
}

func (id SectionID) String() string { return string(id) }

// ParseID converts raw input (a URL segment, a flag, a tool argument) into a
// SectionID. The second result is false for anything outside the enumeration.
func ParseID(s string) (SectionID, bool) {
	id := SectionID(s)
	return id, id.Valid()
}

// Valid reports whether c is one of the two tiers.
func (c Category) Valid() bool {
	return c == Frontend || c == Backend
}
