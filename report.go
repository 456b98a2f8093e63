package pairdiff

import (
	"os"

	errorutil "github.com/projectdiscovery/utils/errors"
	sliceutil "github.com/projectdiscovery/utils/slice"
	"gopkg.in/yaml.v3"
)

// Report summarizes one reconciliation run
type Report struct {
	Input         string `yaml:"input"`
	Rows          int    `yaml:"rows"`
	DistinctLeft  int    `yaml:"distinct_left"`
	DistinctRight int    `yaml:"distinct_right"`
	Distance      int64  `yaml:"distance"`
	Similarity    int64  `yaml:"similarity"`
}

// Report computes both scores along with input stats
func (r *Reconciler) Report() (*Report, error) {
	ds, err := r.Dataset()
	if err != nil {
		return nil, err
	}
	distance, err := r.TotalDistance()
	if err != nil {
		return nil, err
	}
	similarity, err := r.SimilarityScore()
	if err != nil {
		return nil, err
	}
	return &Report{
		Input:         r.Options.Path,
		Rows:          ds.Rows(),
		DistinctLeft:  len(sliceutil.Dedupe(ds.Left)),
		DistinctRight: len(sliceutil.Dedupe(ds.Right)),
		Distance:      distance,
		Similarity:    similarity,
	}, nil
}

// LoadReport reads report from file
func LoadReport(filePath string) (*Report, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var report Report
	if err = yaml.Unmarshal(bin, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Save writes report to a yaml file
func (rp *Report) Save(filePath string) error {
	bin, err := yaml.Marshal(rp)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// Compare checks both scores against an expected report. Input stats are
// bookkeeping only and do not take part in the comparison.
func (rp *Report) Compare(expected *Report) error {
	if expected == nil {
		return errorutil.NewWithTag("pairdiff", "expected report cannot be nil")
	}
	if rp.Distance != expected.Distance {
		return errorutil.NewWithTag("pairdiff", "total distance mismatch: got %v expected %v", rp.Distance, expected.Distance)
	}
	if rp.Similarity != expected.Similarity {
		return errorutil.NewWithTag("pairdiff", "similarity score mismatch: got %v expected %v", rp.Similarity, expected.Similarity)
	}
	return nil
}
