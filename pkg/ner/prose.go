package ner

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer runs prose's pretrained English NER model, which tags
// GPE and PERSON spans. The model is loaded on the first call and shared by
// later calls.
type ProseRecognizer struct {
	mu    sync.Mutex
	model *prose.Model
}

// NewProseRecognizer returns a recognizer that loads prose's built-in model
// lazily.
func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// Recognize tags the entities of one location fragment.
func (r *ProseRecognizer) Recognize(text string) ([]Entity, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	// Location strings are short fragments, sentence splitting only hurts.
	opts := []prose.DocOpt{prose.WithSegmentation(false)}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.model != nil {
		opts = append(opts, prose.UsingModel(r.model))
	}

	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("prose: failed to analyse text: %w", err)
	}
	if r.model == nil {
		r.model = doc.Model
	}

	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, ent := range ents {
		out = append(out, Entity{Text: ent.Text, Label: ent.Label})
	}
	return out, nil
}
