package entity

// ExtractionTier tags which parsing strategy produced an analysis.
type ExtractionTier string

const (
	// TierStructured means the JSON object embedded in the response was
	// parsed directly.
	TierStructured ExtractionTier = "structured"
	// TierRecovered means the structured tier was absent or malformed
	// and the fields were scraped from the raw text per field name.
	TierRecovered ExtractionTier = "recovered"
)

// FieldOrigin records how an individual field value was obtained.
type FieldOrigin string

const (
	OriginStructured FieldOrigin = "structured"
	OriginRecovered  FieldOrigin = "recovered"
	// OriginMissing marks a field that neither tier could locate; its
	// value is a "No <field> provided" placeholder.
	OriginMissing FieldOrigin = "missing"
)

// Extraction is the tagged result of parsing a free-text analysis
// response. All seven field names are always present in Fields, so
// downstream code can distinguish a fully-parsed analysis from a
// degraded one instead of treating both as equal success.
type Extraction struct {
	Tier    ExtractionTier
	Fields  map[string]string
	Origins map[string]FieldOrigin
}

// Degraded reports whether the structured tier failed and the fields
// came from text recovery.
func (e *Extraction) Degraded() bool {
	return e.Tier == TierRecovered
}

// LowConfidence reports the degenerate case: recovery matched nothing
// and every field holds its placeholder. Callers should flag such an
// analysis to the user rather than presenting it as authoritative.
func (e *Extraction) LowConfidence() bool {
	if e.Tier != TierRecovered {
		return false
	}
	for _, origin := range e.Origins {
		if origin != OriginMissing {
			return false
		}
	}
	return true
}
