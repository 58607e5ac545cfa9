// Package ner wraps named-entity recognizers behind a small interface so the
// location parser can run against a pretrained model or a fixed gazetteer.
package ner

// Entity labels emitted by the recognizers.
const (
	LabelGPE    = "GPE"
	LabelPerson = "PERSON"
)

// Entity is a recognised text span.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer finds named entities in free text.
type Recognizer interface {
	Recognize(text string) ([]Entity, error)
}

// RecognizerFunc adapts a plain function to Recognizer.
type RecognizerFunc func(text string) ([]Entity, error)

func (f RecognizerFunc) Recognize(text string) ([]Entity, error) {
	return f(text)
}
