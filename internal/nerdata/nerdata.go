// Package nerdata builds NER training material from the datasets.
package nerdata

import (
	"bytes"
	"strings"

	"github.com/nlpjobsfinder/jobs-finder/pkg/cities"
	nerdatapkg "github.com/nlpjobsfinder/jobs-finder/pkg/nerdata"
	"github.com/nlpjobsfinder/jobs-finder/pkg/storage"
)

// WriteTokens tags the rows of the city file at input and writes the
// Token,Label CSV to output. Returns the number of pairs written.
func WriteTokens(input, output string) (int, error) {
	rows, err := cities.ReadFile(input)
	if err != nil {
		return 0, err
	}

	pairs := nerdatapkg.Build(rows)
	var buf bytes.Buffer
	if err := nerdatapkg.WriteCSV(&buf, pairs); err != nil {
		return 0, err
	}
	if err := storage.SaveFile(output, buf.Bytes()); err != nil {
		return 0, err
	}
	return len(pairs), nil
}

// RenderSentences reads the companies file and returns one sentence per line.
func RenderSentences(companiesFile string) (string, int, error) {
	companies, err := storage.ReadCompanies(companiesFile)
	if err != nil {
		return "", 0, err
	}

	sentences := nerdatapkg.Sentences(companies)
	if len(sentences) == 0 {
		return "", 0, nil
	}
	return strings.Join(sentences, "\n") + "\n", len(sentences), nil
}
