package domain

// Document is a raw store document on its way to a client. It is an alias,
// not a defined type, so driver maps pass through repositories without
// conversion. Keys follow the store's schema until serialization renames
// them for the wire.
type Document = map[string]any
