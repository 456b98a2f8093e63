package pairdiff

import (
	"io"

	"github.com/projectdiscovery/fasttemplate"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Reconciler Options
type Options struct {
	// Path of the two column input file
	// if empty DefaultInputFile is used
	Path string
	// Loader reads and caches input datasets
	// if empty a new loader with default capacity is used
	Loader *Loader
	// DistanceTemplate renders the total distance result line
	// if empty DefaultDistanceTemplate is used
	DistanceTemplate string
	// SimilarityTemplate renders the similarity score result line
	// if empty DefaultSimilarityTemplate is used
	SimilarityTemplate string
}

// Reconciler
type Reconciler struct {
	Options *Options
}

// New creates and returns new reconciler instance from options
func New(opts *Options) (*Reconciler, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Path == "" {
		opts.Path = DefaultInputFile
	}
	if opts.DistanceTemplate == "" {
		opts.DistanceTemplate = DefaultDistanceTemplate
	}
	if opts.SimilarityTemplate == "" {
		opts.SimilarityTemplate = DefaultSimilarityTemplate
	}
	if opts.Loader == nil {
		loader, err := NewLoader(DefaultLoaderCapacity)
		if err != nil {
			return nil, err
		}
		opts.Loader = loader
	}
	r := &Reconciler{
		Options: opts,
	}
	if err := r.validateTemplates(); err != nil {
		return nil, err
	}
	return r, nil
}

// Dataset returns the parsed rows of the input file
func (r *Reconciler) Dataset() (*Dataset, error) {
	return r.Options.Loader.Load(r.Options.Path)
}

// TotalDistance pairs both columns by rank and sums their absolute differences
func (r *Reconciler) TotalDistance() (int64, error) {
	ds, err := r.Dataset()
	if err != nil {
		return 0, err
	}
	return TotalDistance(ds.Left, ds.Right), nil
}

// SimilarityScore weights every left value by how often it appears in the right column
func (r *Reconciler) SimilarityScore() (int64, error) {
	ds, err := r.Dataset()
	if err != nil {
		return 0, err
	}
	return SimilarityScore(ds.Left, ds.Right), nil
}

// WriteResults computes both scores and writes their rendered result lines
// to type that implements io.Writer interface
func (r *Reconciler) WriteResults(writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("pairdiff", "writer destination cannot be nil")
	}
	distance, err := r.TotalDistance()
	if err != nil {
		return err
	}
	if err := r.writeLine(writer, r.Options.DistanceTemplate, "distance", distance); err != nil {
		return err
	}
	similarity, err := r.SimilarityScore()
	if err != nil {
		return err
	}
	return r.writeLine(writer, r.Options.SimilarityTemplate, "similarity", similarity)
}

// writeLine renders one result line with its template and writes it
func (r *Reconciler) writeLine(writer io.Writer, template string, scoreVar string, score int64) error {
	ds, err := r.Dataset()
	if err != nil {
		return err
	}
	values := map[string]interface{}{
		scoreVar: score,
		"input":  r.Options.Path,
		"rows":   ds.Rows(),
	}
	_, err = writer.Write([]byte(Replace(template, values) + "\n"))
	return err
}

// validates result templates by compiling them and resolving their placeholders
func (r *Reconciler) validateTemplates() error {
	templates := map[string]string{
		"distance":   r.Options.DistanceTemplate,
		"similarity": r.Options.SimilarityTemplate,
	}
	for scoreVar, template := range templates {
		if _, err := fasttemplate.NewTemplate(template, ParenthesisOpen, ParenthesisClose); err != nil {
			return err
		}
		if err := checkMissing(template, r.sampleValues(scoreVar)); err != nil {
			return errorutil.NewWithTag("pairdiff", "invalid template `%v` got: %v", template, err.Error())
		}
	}
	return nil
}

// sampleValues returns placeholder values of a result line before it is computed
func (r *Reconciler) sampleValues(scoreVar string) map[string]interface{} {
	return map[string]interface{}{
		scoreVar: 0,
		"input":  r.Options.Path,
		"rows":   0,
	}
}
