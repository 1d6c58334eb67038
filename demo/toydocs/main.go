// Command toydocs trains a binary linear classifier on a
// synthetic two-topic document set and reports its
// training accuracy.
package main

import (
	"log"
	"math/rand"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/linclass"
)

const (
	numDocs     = 400
	vocabSize   = 100
	featsPerDoc = 10
)

func main() {
	log.Println("Generating documents...")

	rng := rand.New(rand.NewSource(1337))
	src := &linclass.SliceSource{NumFeats: vocabSize}
	ids := make([]linclass.DocID, numDocs)
	for i := range ids {
		label := linclass.Label("sports")
		base := 0
		if i%2 == 1 {
			label = "politics"
			base = vocabSize / 2
		}
		fv := make(linclass.FeatureVector, featsPerDoc)
		for j, id := range rng.Perm(vocabSize / 2)[:featsPerDoc] {
			fv[j] = linclass.Feature{ID: base + id, Value: 1 + rng.Float64()}
		}
		src.Docs = append(src.Docs, linclass.Document{Features: fv, Label: label})
		ids[i] = linclass.DocID(i)
	}

	log.Println("Training...")

	learner, err := linclass.NewSGD(src, "sports", "politics", linclass.Hinge{},
		linclass.DefaultConfig())
	if err != nil {
		essentials.Die(err)
	}
	if err := learner.Train(ids); err != nil {
		essentials.Die(err)
	}

	log.Println("Computing statistics...")

	var correct int
	for _, id := range ids {
		label, err := learner.Classify(id)
		if err != nil {
			essentials.Die(err)
		}
		if label == src.Docs[id].Label {
			correct++
		}
	}
	log.Printf("Training accuracy: %d/%d", correct, numDocs)
}
