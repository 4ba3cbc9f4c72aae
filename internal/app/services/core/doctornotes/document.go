package doctornotes

import (
	"anubha-web/internal/pkg/exceptions"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var emptyDocument = json.RawMessage(`{}`)

// Path segments are literal keys, so every character gjson and sjson treat as syntax is escaped.
var segmentEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
	`:`, `\:`,
	`!`, `\!`,
)

func jsonPath(path []string) (string, error) {
	if len(path) == 0 {
		return "", exceptions.ErrDraftPathEmpty(nil)
	}

	escaped := make([]string, len(path))
	for i, segment := range path {
		if segment == "" {
			return "", exceptions.ErrDraftPathEmpty(nil)
		}
		escaped[i] = segmentEscaper.Replace(segment)
	}
	return strings.Join(escaped, "."), nil
}

func cloneDocument(doc json.RawMessage) json.RawMessage {
	if len(doc) == 0 {
		return append(json.RawMessage(nil), emptyDocument...)
	}
	return append(json.RawMessage(nil), doc...)
}

func isObject(doc json.RawMessage) bool {
	return len(doc) > 0 && gjson.ValidBytes(doc) && gjson.ParseBytes(doc).IsObject()
}

// SetValue returns a copy of doc with value stored at path. Missing or scalar
// intermediate members become objects; doc itself is never modified.
func SetValue(doc json.RawMessage, path []string, value json.RawMessage) (json.RawMessage, error) {
	full, err := jsonPath(path)
	if err != nil {
		return nil, err
	}
	if !json.Valid(value) {
		return nil, exceptions.ErrDraftDocumentInvalid(nil)
	}

	next := cloneDocument(doc)
	if !isObject(next) {
		return nil, exceptions.ErrDraftDocumentInvalid(nil)
	}

	for depth := 1; depth < len(path); depth++ {
		prefix, _ := jsonPath(path[:depth])
		parent := gjson.GetBytes(next, prefix)
		if parent.IsObject() || parent.IsArray() {
			continue
		}
		next, err = sjson.SetRawBytes(next, prefix, emptyDocument)
		if err != nil {
			return nil, exceptions.ErrDraftDocumentInvalid(err)
		}
	}

	next, err = sjson.SetRawBytes(next, full, value)
	if err != nil {
		return nil, exceptions.ErrDraftDocumentInvalid(err)
	}
	return next, nil
}

// GetValue reads the raw JSON stored at path.
func GetValue(doc json.RawMessage, path []string) (json.RawMessage, bool, error) {
	full, err := jsonPath(path)
	if err != nil {
		return nil, false, err
	}
	if len(doc) == 0 {
		return nil, false, nil
	}

	result := gjson.GetBytes(doc, full)
	if !result.Exists() {
		return nil, false, nil
	}
	return json.RawMessage(result.Raw), true, nil
}

// MergeServerWins overlays the server's top-level keys on the local draft.
// Keys only the draft has survive; a missing or non-object side is ignored.
func MergeServerWins(local, server json.RawMessage) (json.RawMessage, error) {
	switch {
	case !isObject(server) && !isObject(local):
		return cloneDocument(nil), nil
	case !isObject(server):
		return cloneDocument(local), nil
	case !isObject(local):
		return cloneDocument(server), nil
	}

	merged := cloneDocument(local)
	var mergeErr error
	gjson.ParseBytes(server).ForEach(func(key, value gjson.Result) bool {
		merged, mergeErr = sjson.SetRawBytes(merged, segmentEscaper.Replace(key.String()), []byte(value.Raw))
		return mergeErr == nil
	})
	if mergeErr != nil {
		return nil, exceptions.ErrDraftDocumentInvalid(mergeErr)
	}
	return merged, nil
}
