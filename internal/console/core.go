package console

import (
	"fmt"
	"sort"
	"strings"

	"github.com/moznion/go-optional"
	"go.uber.org/zap/zapcore"
)

// Field keys the zap bridge maps onto Options instead of rendering them.
const (
	FieldSource    = "source"
	FieldAccount   = "account"
	FieldSymbol    = "symbol"
	FieldLogToFile = "log_to_file"
)

// coordinatorCore is a zapcore.Core that emits every entry as a log
// transaction on a Coordinator.
type coordinatorCore struct {
	zapcore.LevelEnabler
	coordinator *Coordinator
	fields      []zapcore.Field
}

// NewCore returns a zapcore.Core writing through c. The logger name, when
// set, is used as the source unless a source field is present.
func NewCore(c *Coordinator, enab zapcore.LevelEnabler) zapcore.Core {
	return &coordinatorCore{
		LevelEnabler: enab,
		coordinator:  c,
		fields:       nil,
	}
}

func (cc *coordinatorCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(cc.fields)+len(fields))
	merged = append(merged, cc.fields...)
	merged = append(merged, fields...)

	return &coordinatorCore{
		LevelEnabler: cc.LevelEnabler,
		coordinator:  cc.coordinator,
		fields:       merged,
	}
}

func (cc *coordinatorCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if cc.Enabled(ent.Level) {
		return ce.AddCore(ent, cc)
	}

	return ce
}

func (cc *coordinatorCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	opts := Options{Type: typeForLevel(ent.Level)}
	if ent.LoggerName != "" {
		opts.Source = optional.Some(ent.LoggerName)
	}

	var extra strings.Builder

	for _, f := range append(cc.fields[:len(cc.fields):len(cc.fields)], fields...) {
		switch {
		case f.Key == FieldSource && f.Type == zapcore.StringType:
			opts.Source = optional.Some(f.String)
		case f.Key == FieldAccount && f.Type == zapcore.StringType:
			opts.Account = optional.Some(f.String)
		case f.Key == FieldSymbol && f.Type == zapcore.StringType:
			opts.Symbol = optional.Some(f.String)
		case f.Key == FieldLogToFile && f.Type == zapcore.BoolType:
			opts.LogToFile = f.Integer == 1
		default:
			enc := zapcore.NewMapObjectEncoder()
			f.AddTo(enc)

			// One field may expand to several keys; keep them stable.
			keys := make([]string, 0, len(enc.Fields))
			for k := range enc.Fields {
				keys = append(keys, k)
			}

			sort.Strings(keys)

			for _, k := range keys {
				fmt.Fprintf(&extra, " %s=%v", k, enc.Fields[k])
			}
		}
	}

	cc.coordinator.Log(ent.Message+extra.String(), opts)

	return nil
}

func (cc *coordinatorCore) Sync() error {
	return nil
}

func typeForLevel(level zapcore.Level) LogType {
	switch {
	case level >= zapcore.ErrorLevel:
		return LogTypeError
	case level == zapcore.WarnLevel:
		return LogTypeWarn
	default:
		return LogTypePlain
	}
}
