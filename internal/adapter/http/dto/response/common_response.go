package response

// ImportResponse reports how many records a bulk import produced.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// Orders, logs and catalog items are serialized straight from the domain
// entities: their JSON tags are the wire format, shared with the snapshot
// and sync documents on purpose.
