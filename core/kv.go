package core

// KV is durable string storage keyed by object identity, backing the session
// snapshot store. It must survive the full session, including a process
// restart mid-session, which is why it is modeled as an external capability
// rather than process memory.
//
// Get reports presence explicitly so an empty stored value is distinguishable
// from an absent key; the restore policy depends on that distinction.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Erase(key string) error
}
