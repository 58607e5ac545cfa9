package models

// TokenLabel is a single BIO-tagged training example.
type TokenLabel struct {
	Token string
	Label string
}

// BIO labels used by the training data generator.
const (
	LabelOutside  = "O"
	LabelBCity    = "B-City"
	LabelICity    = "I-City"
	LabelBCountry = "B-Country"
	LabelICountry = "I-Country"
	LabelBState   = "B-State"
	LabelIState   = "I-State"
)
