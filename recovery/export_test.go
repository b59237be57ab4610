package recovery

// Seams so package-external tests can reach unexported helpers.
var (
	Summarize     = summarize
	TransitionKey = transitionKey
)
