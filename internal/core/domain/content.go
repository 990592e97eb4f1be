package domain

import "errors"

// Content collection names. The store enforces no schema on any of them; each
// holds arbitrary documents managed through the site's admin panel.
const (
	CollectionProfile    = "profile"
	CollectionServices   = "services"
	CollectionExperience = "experience"
	CollectionPortfolio  = "portfolio"
	CollectionSlider     = "slider"
	CollectionReview     = "review"
)

var ErrNotFound = errors.New("document not found")
var ErrInvalidID = errors.New("invalid document id")
var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("access forbidden")

// Document is a schema-free content record. Identifiers are normalised to
// their hex string form under the "_id" key when documents leave the store.
type Document map[string]any

// ID returns the document's identifier, or "" when absent.
func (d Document) ID() string {
	id, _ := d["_id"].(string)
	return id
}
