// Package kvstore abstracts the dashboard's small persistence needs,
// theme choice and onboarding-tour completion, behind an injectable
// store so non-browser targets can swap in-memory or file-backed
// storage.
package kvstore

type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
	Keys() []string
}
