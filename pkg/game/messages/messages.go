// Package messages holds the player-facing text of the game, keyed by
// translation id and loaded from an embedded PO catalog.
package messages

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var english []byte

var (
	once    sync.Once
	catalog *gotext.Po
)

// Keys and catalog text are formats chosen at runtime. Calling through
// variables keeps go vet from treating Get as a printf wrapper.
var (
	translate = (*gotext.Po).Get
	sprintf   = fmt.Sprintf
)

func load() {
	catalog = gotext.NewPo()
	catalog.Parse(english)
}

// Get returns the message for key with vars substituted Printf-style.
// Unknown keys come back unchanged.
func Get(key string, vars ...interface{}) string {
	once.Do(load)
	msg := translate(catalog, key)
	if len(vars) == 0 {
		return msg
	}
	return sprintf(msg, vars...)
}
