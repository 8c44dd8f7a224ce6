package domain

// AdViewState is the state of a single ad interaction.
type AdViewState string

const (
	AdViewIdle    AdViewState = "idle"
	AdViewViewing AdViewState = "viewing"
	AdViewSuccess AdViewState = "viewed-success"
	AdViewFailure AdViewState = "viewed-failure"
)
