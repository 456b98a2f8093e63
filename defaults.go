package pairdiff

// DefaultInputFile is the fixed two-column input file, resolved against the
// process working directory.
const DefaultInputFile = "1.txt"

// Default result line templates. Placeholders are expanded with Replace;
// besides its own score variable each line may reference {{input}} and
// {{rows}}.
var (
	DefaultDistanceTemplate   = "Total distance: {{distance}}"
	DefaultSimilarityTemplate = "Similarity score: {{similarity}}"
)
