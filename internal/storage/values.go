package storage

import (
	"fmt"
	"strings"
	"time"

	"mailcorpus/internal/mailstore"
)

// Column values are scanned into `any` and converted on access, so a value
// the decoder stored with an unexpected type surfaces as an accessor error
// on that one attribute instead of failing the whole row.

func textValue(v any) (mailstore.Optional[mailstore.Text], error) {
	switch x := v.(type) {
	case nil:
		return mailstore.None[mailstore.Text](), nil
	case string:
		return mailstore.SomeString(x), nil
	case []byte:
		return mailstore.Some(mailstore.Bytes(x)), nil
	default:
		return mailstore.None[mailstore.Text](), fmt.Errorf("column holds %T, want text", v)
	}
}

func intValue(v any) (mailstore.Optional[int64], error) {
	switch x := v.(type) {
	case nil:
		return mailstore.None[int64](), nil
	case int64:
		return mailstore.Some(x), nil
	default:
		return mailstore.None[int64](), fmt.Errorf("column holds %T, want integer", v)
	}
}

func boolValue(v any) (mailstore.Optional[bool], error) {
	switch x := v.(type) {
	case nil:
		return mailstore.None[bool](), nil
	case int64:
		return mailstore.Some(x != 0), nil
	case bool:
		return mailstore.Some(x), nil
	default:
		return mailstore.None[bool](), fmt.Errorf("column holds %T, want boolean", v)
	}
}

// timeLayouts are the textual timestamp forms decoders are known to write.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

func timeValue(v any) (mailstore.Optional[time.Time], error) {
	switch x := v.(type) {
	case nil:
		return mailstore.None[time.Time](), nil
	case time.Time:
		return mailstore.Some(x), nil
	case int64:
		return mailstore.Some(time.Unix(x, 0).UTC()), nil
	case []byte:
		return parseTime(string(x))
	case string:
		return parseTime(x)
	default:
		return mailstore.None[time.Time](), fmt.Errorf("column holds %T, want timestamp", v)
	}
}

func parseTime(s string) (mailstore.Optional[time.Time], error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return mailstore.None[time.Time](), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return mailstore.Some(t), nil
		}
	}
	return mailstore.None[time.Time](), fmt.Errorf("unrecognized timestamp %q", s)
}

// FormatTime renders t the way Writer stores timestamps.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
