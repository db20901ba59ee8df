package resolver

// Capability categories and identifiers looked up in the host.
const (
	CategoryProject = "Project"
	CategorySelect  = "Window/SelectDocumentNode"

	CollapseAllID       = "project.ui.collapseAllNodes"
	SelectInProjectsID  = "project.ui.SelectInProjects"
	SelectInFilesID     = "project.ui.SelectInFiles"
	SelectInFavoritesID = "favorites.Select"
)

// Action kinds, used in trace output.
const (
	KindCollapse = "collapse-all"
	KindSync     = "sync-selection"
)
