package parser

import (
	"strings"

	"github.com/tliron/commonlog"
)

// Trace logs when p is entered and how it returns, indented by nesting
// depth. It logs at debug level to the logger set with WithLogger and does
// nothing without one.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	return func(in *Input) (T, error) {
		log := in.logger
		if log == nil || !log.AllowLevel(commonlog.Debug) {
			return p(in)
		}

		indent := strings.Repeat("  ", in.depth)
		start := in.Cursor()
		log.Debugf("%s> %s @ %s", indent, name, start)

		in.depth++
		v, err := p(in)
		in.depth--

		switch {
		case err == nil:
			log.Debugf("%s< %s ok %q", indent, name, in.SubstringToCurrent(start))
		case IsNotFound(err):
			log.Debugf("%s< %s not found", indent, name)
		default:
			log.Debugf("%s< %s error: %v", indent, name, err)
		}
		return v, err
	}
}
