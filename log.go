package huffman

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

// The default backend logs everything; keep this package quiet until the
// program configures logging itself.
func init() {
	logging.SetLevel(logging.WARNING, "huffman")
}
