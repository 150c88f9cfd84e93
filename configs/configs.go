// Package configs embeds the default data files shipped with the binary.
package configs

import _ "embed"

// CaseCatalog is the default case catalog, used when CASE_CATALOG_PATH is unset
//
//go:embed cases.json
var CaseCatalog []byte

// CaseCatalogSchema is the JSON schema every case catalog must satisfy
//
//go:embed cases.schema.json
var CaseCatalogSchema []byte
