package format

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"go.followtheprocess.codes/courier/internal/bind"
	"go.followtheprocess.codes/courier/internal/endpoint"
)

// TODO(@FollowTheProcess): Raw bodies that aren't JSON are dropped from the command entirely,
// they should probably go through --data-binary, but existing exports rely on the current output.

const (
	// curlCommand is the name of the command line client invoked by the generated command.
	curlCommand = "curl"

	// continuation separates clauses of the generated command, onto a new indented line.
	continuation = " \\\n"

	// indent is the indentation of every clause after the first line.
	indent = "  "
)

// quoteEscaper escapes single quotes so text can be embedded in a single quoted
// POSIX shell string, by closing the string, emitting an escaped quote and re-opening it.
//
//nolint:gochecknoglobals // Only needs building once
var quoteEscaper = strings.NewReplacer("'", `'\''`)

// CurlExporter is an [Exporter] that renders an endpoint as a curl shell command.
//
// The output is deterministic: headers are emitted sorted by name regardless of the
// order they were written in, so repeated exports of the same endpoint are byte identical.
type CurlExporter struct{}

// Generate implements [Exporter] for [CurlExporter].
//
// The endpoint is bound first and any binding error is returned unchanged. A raw
// body is included as a -d clause only if it is valid JSON, in which case it is
// compacted onto a single line. Any other body is silently left out of the command.
func (c CurlExporter) Generate(ep endpoint.Endpoint) (string, error) {
	request, err := bind.Bind(ep)
	if err != nil {
		return "", err
	}

	builder := &strings.Builder{}

	builder.WriteString(curlCommand)
	builder.WriteString(" -X ")
	builder.WriteString(string(request.Method))
	builder.WriteByte(' ')
	builder.WriteString(shellWord(request.URL.String()))

	if len(request.Header) != 0 {
		builder.WriteString(continuation)

		names := slices.Sorted(maps.Keys(request.Header))
		for i, name := range names {
			builder.WriteString(indent)
			builder.WriteString("-H '")
			builder.WriteString(quoteEscaper.Replace(name + ": " + request.Header.Get(name)))
			builder.WriteByte('\'')

			if i < len(names)-1 {
				builder.WriteString(continuation)
			}
		}
	}

	if data, ok := jsonData(request.Body); ok {
		builder.WriteString(continuation)
		builder.WriteString(indent)
		builder.WriteString("-d '")
		builder.WriteString(quoteEscaper.Replace(data))
		builder.WriteByte('\'')
	}

	return builder.String(), nil
}

// jsonData returns the compacted JSON form of a raw body, and whether there is one.
//
// Bodies that are not raw, are empty, or do not parse as JSON return false.
func jsonData(body endpoint.Body) (string, bool) {
	if body.Kind != endpoint.KindRaw || len(body.Content) == 0 {
		return "", false
	}

	buf := &bytes.Buffer{}
	if err := json.Compact(buf, body.Content); err != nil {
		return "", false
	}

	return buf.String(), true
}

// shellWord returns s unchanged if a POSIX shell would read it as a single literal
// word, otherwise it returns s single quoted.
func shellWord(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuoting) == -1 {
		return s
	}

	return "'" + quoteEscaper.Replace(s) + "'"
}

// needsQuoting reports whether r has special meaning to a POSIX shell.
func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}

	return !strings.ContainsRune("-_.,:/@%+=~", r)
}
