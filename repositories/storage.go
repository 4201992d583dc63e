package repositories

// StorageChangeEvent describes a slot mutation performed by some client of
// the shared durable medium. Origin identifies the writer so a client can
// recognize (and a medium can filter) its own writes.
type StorageChangeEvent struct {
	Key      string `json:"key"`
	NewValue string `json:"new_value"`
	Origin   string `json:"origin"`
}

// StorageMedium is a shared durable key-value medium with change
// notifications. Implementations deliver events for writes made by other
// clients of the same medium, never for the subscriber's own writes.
//
// Get returns the raw slot contents; ok is false when the slot is absent.
// Set persists raw contents under key and broadcasts a change event.
// Subscribe registers a handler for external change events; handlers must
// not write back to the medium, that would loop notifications between
// clients.
type StorageMedium interface {
	Get(key string) (raw string, ok bool, err error)
	Set(key, raw string) error
	Subscribe(handler func(StorageChangeEvent))
	Origin() string
}
