package objstack

import (
	"github.com/google/uuid"
)

// newStackID returns a UUID used to correlate one Stack's log events in a
// shared log stream when multiple Stacks are alive in the same process.
func newStackID() uuid.UUID {
	return uuid.New()
}

// trace emits a debug-level structured log event for s, if s.Logger is
// set. kv is a flat key/value list, fields alternating name then value;
// unsupported value types fall back to zerolog's generic Interface
// encoding. Tracing is disabled (and free of allocation) whenever Logger
// is nil, which is the default.
func (s *Stack) trace(event string, kv ...any) {
	if s.Logger == nil {
		return
	}
	e := s.Logger.Debug().Str("stack_id", s.id.String())
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		switch v := kv[i+1].(type) {
		case int:
			e = e.Int(key, v)
		case uintptr:
			e = e.Uint64(key, uint64(v))
		case bool:
			e = e.Bool(key, v)
		case string:
			e = e.Str(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	e.Msg(event)
}
