package bookmark

import "fmt"

// KeyGen generates Redis key names for a bookmark namespace.
type KeyGen struct {
	Namespace string
}

// NewKeyGen creates a KeyGen for the given namespace.
func NewKeyGen(namespace string) *KeyGen {
	return &KeyGen{Namespace: namespace}
}

// Entry returns the hash key holding one bookmark.
// e.g., pcspath:default:bm:docs
func (k *KeyGen) Entry(name string) string {
	return fmt.Sprintf("pcspath:%s:bm:%s", k.Namespace, name)
}

// Names returns the set key listing every bookmark name.
// e.g., pcspath:default:names
func (k *KeyGen) Names() string {
	return fmt.Sprintf("pcspath:%s:names", k.Namespace)
}
