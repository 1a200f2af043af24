package types

// CatalogVersion tags the output artifact format so the consuming front-end
// can detect incompatible regenerations.
const CatalogVersion = "bls_static_v1"

// Catalog is the full output artifact serialized to careers.json.
type Catalog struct {
	Version string         `json:"version"`
	Careers []CareerRecord `json:"careers"`
}
