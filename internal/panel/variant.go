package panel

// Identifiers assigned by the host to the supported navigation panels.
const (
	IDProjectsLogical  = "projectTabLogical_tc"
	IDProjectsPhysical = "projectTab_tc"
	IDFavorites        = "favorites"
)

// Variant classifies a panel by its host identifier.
type Variant int

const (
	Unsupported Variant = iota
	ProjectsLogical
	ProjectsPhysical
	Favorites
)

// Classify maps a host identifier to its variant.
func Classify(id string) Variant {
	switch id {
	case IDProjectsLogical:
		return ProjectsLogical
	case IDProjectsPhysical:
		return ProjectsPhysical
	case IDFavorites:
		return Favorites
	default:
		return Unsupported
	}
}

// KnownIDs lists the identifiers of every supported panel.
func KnownIDs() []string {
	return []string{IDProjectsLogical, IDProjectsPhysical, IDFavorites}
}

func (v Variant) Supported() bool {
	return v != Unsupported
}

func (v Variant) IsProjects() bool {
	return v == ProjectsLogical || v == ProjectsPhysical
}

// ID returns the host identifier for v, or "" for Unsupported.
func (v Variant) ID() string {
	switch v {
	case ProjectsLogical:
		return IDProjectsLogical
	case ProjectsPhysical:
		return IDProjectsPhysical
	case Favorites:
		return IDFavorites
	default:
		return ""
	}
}

func (v Variant) String() string {
	switch v {
	case ProjectsLogical:
		return "projects-logical"
	case ProjectsPhysical:
		return "projects-physical"
	case Favorites:
		return "favorites"
	default:
		return "unsupported"
	}
}
