package console

import (
	"strings"
	"time"

	"github.com/moznion/go-optional"
)

// timestampLayout renders wall-clock time for operators, e.g. "10/14/2026, 3:04:05 PM".
const timestampLayout = "1/2/2006, 3:04:05 PM"

// fileDateLayout is the date suffix of a log file name.
const fileDateLayout = "2006-01-02"

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// composeLine builds "[timestamp] [source] [account] [symbol] message",
// omitting absent tags.
func composeLine(timestamp string, o Options, message string) string {
	var b strings.Builder

	b.WriteString("[")
	b.WriteString(timestamp)
	b.WriteString("]")

	for _, tag := range []optional.Option[string]{o.Source, o.Account, o.Symbol} {
		if v, ok := tagValue(tag); ok {
			b.WriteString(" [")
			b.WriteString(v)
			b.WriteString("]")
		}
	}

	b.WriteString(" ")
	b.WriteString(message)

	return b.String()
}

// tagValue reports the value of an optional tag. Empty strings count as absent.
func tagValue(tag optional.Option[string]) (string, bool) {
	if tag.IsNone() {
		return "", false
	}

	v := tag.Unwrap()

	return v, v != ""
}

// route identifies the log file a line is persisted to.
type route struct {
	key      string
	bySymbol bool
}

// routeFor selects the file route of a log call. It reports false when the
// line stays on the terminal only.
func routeFor(o Options) (route, bool) {
	if symbol, ok := tagValue(o.Symbol); ok {
		return route{key: symbol, bySymbol: true}, true
	}

	if !o.LogToFile {
		return route{}, false
	}

	return route{key: RoutingKey(o), bySymbol: false}, true
}

// RoutingKey returns the base name of the file a line with these options is
// persisted to: the symbol, else the lower-cased source with spaces replaced
// by hyphens, else DefaultRoutingKey.
func RoutingKey(o Options) string {
	if symbol, ok := tagValue(o.Symbol); ok {
		return symbol
	}

	source, ok := tagValue(o.Source)
	if !ok {
		return DefaultRoutingKey
	}

	return strings.ReplaceAll(strings.ToLower(source), " ", "-")
}

// fileKeyReplacer maps path separators to hyphens so a key always names a
// file directly inside the log directory.
var fileKeyReplacer = strings.NewReplacer("/", "-", `\`, "-")

// FileName returns "{key}-{YYYY}-{MM}-{DD}.log" for the given day.
func FileName(key string, day time.Time) string {
	return fileKeyReplacer.Replace(key) + "-" + day.Format(fileDateLayout) + ".log"
}
