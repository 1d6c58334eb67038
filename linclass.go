// Package linclass provides tools for learning binary
// linear classifiers over sparse document features using
// stochastic gradient descent.
// Multiclass problems can be handled by composing
// several binary learners externally.
package linclass

import "fmt"

// A DocID identifies a document within a DocSource.
type DocID int

// A Label is a class label.
type Label string

// A Feature is one component of a sparse feature vector:
// a feature id paired with a numeric value.
type Feature struct {
	ID    int
	Value float64
}

// A FeatureVector is a sparse feature vector: an ordered
// list of features with unique ids.
// Features absent from the list have value 0.
type FeatureVector []Feature

// A Document pairs a sparse feature vector with its gold
// class label.
type Document struct {
	Features FeatureVector
	Label    Label
}

// A DocSource supplies feature vectors and gold labels
// for documents, like a forward index does.
//
// Lookups must be deterministic and repeatable for the
// same id within one training run.
type DocSource interface {
	// NumFeatures returns the size of the feature
	// vocabulary.
	// Feature ids in training documents are less than
	// NumFeatures().
	NumFeatures() int

	// GetDocument returns the document for the id.
	GetDocument(id DocID) (*Document, error)
}

// A SliceSource is a concrete in-memory DocSource with
// predetermined documents.
// Document ids are indices into Docs.
type SliceSource struct {
	Docs []Document

	// NumFeats is the size of the feature vocabulary.
	// If it is 0, the vocabulary is sized as one more
	// than the largest feature id in Docs.
	NumFeats int
}

// NumFeatures returns the vocabulary size.
func (s *SliceSource) NumFeatures() int {
	if s.NumFeats != 0 {
		return s.NumFeats
	}
	maxID := -1
	for _, doc := range s.Docs {
		for _, f := range doc.Features {
			if f.ID > maxID {
				maxID = f.ID
			}
		}
	}
	return maxID + 1
}

// GetDocument returns the document at the index.
func (s *SliceSource) GetDocument(id DocID) (*Document, error) {
	if id < 0 || int(id) >= len(s.Docs) {
		return nil, fmt.Errorf("no document with id %d", id)
	}
	return &s.Docs[id], nil
}
