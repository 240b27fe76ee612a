package endpoint_test

import (
	"flag"
	"os"
	"strings"
	"testing"

	"go.followtheprocess.codes/courier/internal/endpoint"
	"go.followtheprocess.codes/snapshot"
	"go.followtheprocess.codes/test"
)

var (
	update = flag.Bool("update", false, "Update snapshots")
	clean  = flag.Bool("clean", false, "Clean all snapshots and recreate")
)

func TestMethod(t *testing.T) {
	tests := []struct {
		name      string          // Name of the test case
		method    endpoint.Method // Method under test
		canonical endpoint.Method // Expected canonical form
		valid     bool            // Expected return from Valid
	}{
		{name: "get", method: "GET", canonical: endpoint.MethodGet, valid: true},
		{name: "lower", method: "post", canonical: endpoint.MethodPost, valid: true},
		{name: "mixed", method: "PaTcH", canonical: endpoint.MethodPatch, valid: true},
		{name: "padded", method: "  delete\t", canonical: endpoint.MethodDelete, valid: true},
		{name: "trace", method: "trace", canonical: endpoint.MethodTrace, valid: true},
		{name: "empty", method: "", canonical: "", valid: false},
		{name: "unknown", method: "fetch", canonical: "FETCH", valid: false},
		{name: "inner space", method: "G ET", canonical: "G ET", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, tt.method.Canonical(), tt.canonical)
			test.Equal(t, tt.method.Valid(), tt.valid)
		})
	}
}

func TestClone(t *testing.T) {
	original := endpoint.Endpoint{
		Name:   "create",
		Method: endpoint.MethodPost,
		URL:    "https://api.example.com/v1/items",
		Headers: []endpoint.Header{
			{Name: "Accept", Value: "application/json"},
		},
		Query: []endpoint.Param{
			{Name: "dry-run", Value: "true"},
		},
		Body: endpoint.Raw(endpoint.EncodingJSON, []byte(`{"a":1}`)),
	}

	clone := original.Clone()
	test.True(t, clone.Equal(original), test.Context("clone should be equal to the original"))

	// Mutating the clone must never be visible through the original
	clone.Headers[0].Value = "text/plain"
	clone.Query[0].Value = "false"
	clone.Body.Content[0] = '['

	test.Equal(t, original.Headers[0].Value, "application/json")
	test.Equal(t, original.Query[0].Value, "true")
	test.Equal(t, original.Body.Content.String(), `{"a":1}`)
	test.False(t, clone.Equal(original), test.Context("mutated clone should not equal the original"))
}

func TestEqual(t *testing.T) {
	base := endpoint.Endpoint{
		Method:  endpoint.MethodGet,
		URL:     "https://api.example.com",
		Headers: []endpoint.Header{{Name: "Accept", Value: "*/*"}},
	}

	tests := []struct {
		name  string            // Name of the test case
		other endpoint.Endpoint // The endpoint to compare with base
		want  bool              // Expected result
	}{
		{
			name:  "identical",
			other: base.Clone(),
			want:  true,
		},
		{
			name: "nil vs empty slices",
			other: endpoint.Endpoint{
				Method:  endpoint.MethodGet,
				URL:     "https://api.example.com",
				Headers: []endpoint.Header{{Name: "Accept", Value: "*/*"}},
				Query:   []endpoint.Param{},
			},
			want: true,
		},
		{
			name: "header order matters",
			other: endpoint.Endpoint{
				Method: endpoint.MethodGet,
				URL:    "https://api.example.com",
				Headers: []endpoint.Header{
					{Name: "X-Other", Value: "1"},
					{Name: "Accept", Value: "*/*"},
				},
			},
			want: false,
		},
		{
			name: "different body",
			other: endpoint.Endpoint{
				Method:  endpoint.MethodGet,
				URL:     "https://api.example.com",
				Headers: []endpoint.Header{{Name: "Accept", Value: "*/*"}},
				Body:    endpoint.Raw(endpoint.EncodingPlain, []byte("hello")),
			},
			want: false,
		},
		{
			name: "different method",
			other: endpoint.Endpoint{
				Method:  endpoint.MethodPost,
				URL:     "https://api.example.com",
				Headers: []endpoint.Header{{Name: "Accept", Value: "*/*"}},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, base.Equal(tt.other), tt.want)
			test.Equal(t, tt.other.Equal(base), tt.want, test.Context("Equal should be symmetric"))
		})
	}
}

func TestBodyUnmarshalText(t *testing.T) {
	t.Run("kind", func(t *testing.T) {
		var kind endpoint.Kind
		test.Ok(t, kind.UnmarshalText([]byte("multipart")))
		test.Equal(t, kind, endpoint.KindMultipart)

		test.Err(t, kind.UnmarshalText([]byte("graphql")))
	})

	t.Run("encoding", func(t *testing.T) {
		var encoding endpoint.Encoding
		test.Ok(t, encoding.UnmarshalText([]byte("octet-stream")))
		test.Equal(t, encoding, endpoint.EncodingOctetStream)
		test.Equal(t, encoding.ContentType(), "application/octet-stream")

		test.Err(t, encoding.UnmarshalText([]byte("yaml")))
	})

	t.Run("content", func(t *testing.T) {
		var content endpoint.Content
		test.Ok(t, content.UnmarshalText([]byte(`{"stuff":"here"}`)))
		test.Equal(t, content.String(), `{"stuff":"here"}`)

		text, err := content.MarshalText()
		test.Ok(t, err)
		test.Equal(t, string(text), `{"stuff":"here"}`)
	})
}

func TestBodyIsZero(t *testing.T) {
	test.True(t, endpoint.Body{}.IsZero())
	test.False(t, endpoint.Raw(endpoint.EncodingPlain, nil).IsZero())
	test.False(t, endpoint.URLEncoded(endpoint.Param{Name: "a"}).IsZero())
}

func TestFile(t *testing.T) {
	file := endpoint.File{
		Name: "demo",
		Endpoints: []endpoint.Endpoint{
			{Name: "list", Method: endpoint.MethodGet, URL: "https://api.example.com/items"},
			{Method: endpoint.MethodPost, URL: "https://api.example.com/items"},
			{Name: "delete", Method: endpoint.MethodDelete, URL: "https://api.example.com/items/1"},
		},
	}

	named := file.NameEndpoints()
	test.Diff(t, strings.Join(named.Names(), ","), "list,#2,delete")
	test.Equal(t, file.Endpoints[1].Name, "", test.Context("NameEndpoints must not mutate the receiver"))

	got, ok := named.Get("#2")
	test.True(t, ok)
	test.Equal(t, got.Method, endpoint.MethodPost)

	_, ok = named.Get("missing")
	test.False(t, ok)

	test.Equal(t, len(named.Filter()), 3)

	filtered := named.Filter("delete", "list")
	test.Equal(t, len(filtered), 2)
	test.Equal(t, filtered[0].Name, "list", test.Context("Filter should preserve document order"))
	test.Equal(t, filtered[1].Name, "delete")

	test.Equal(t, len(named.Filter("nope")), 0)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string            // Name of the test case
		endpoint endpoint.Endpoint // The endpoint to render
	}{
		{
			name: "simple",
			endpoint: endpoint.Endpoint{
				Method: endpoint.MethodGet,
				URL:    "https://api.nowhere.com/v1/items/1234",
			},
		},
		{
			name: "named with comment",
			endpoint: endpoint.Endpoint{
				Name:    "GetItem",
				Comment: "Fetch a single item",
				Method:  endpoint.MethodGet,
				URL:     "https://api.nowhere.com/v1/items/1234",
			},
		},
		{
			name: "with headers and query",
			endpoint: endpoint.Endpoint{
				Method: endpoint.MethodGet,
				URL:    "https://jsonplaceholder.typicode.com/todos",
				Headers: []endpoint.Header{
					{Name: "Accept", Value: "application/json"},
					{Name: "X-Debug", Value: "yes", Disabled: true},
				},
				Query: []endpoint.Param{
					{Name: "page", Value: "2"},
					{Name: "limit", Value: "10", Disabled: true},
				},
			},
		},
		{
			name: "with raw body",
			endpoint: endpoint.Endpoint{
				Method: endpoint.MethodPost,
				URL:    "https://somewhere.org/api/items/1",
				Body:   endpoint.Raw(endpoint.EncodingJSON, []byte("{\"stuff\": \"here\"}\n")),
			},
		},
		{
			name: "with form body",
			endpoint: endpoint.Endpoint{
				Method: endpoint.MethodPost,
				URL:    "https://somewhere.org/login",
				Body: endpoint.URLEncoded(
					endpoint.Param{Name: "user", Value: "me"},
					endpoint.Param{Name: "remember", Value: "true", Disabled: true},
				),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshot.New(
				t,
				snapshot.Update(*update),
				snapshot.Clean(*clean),
				snapshot.Color(os.Getenv("CI") == ""),
			)
			snap.Snap(tt.endpoint.String())
		})
	}
}

func TestFormatRaw(t *testing.T) {
	ep := endpoint.Endpoint{
		Name:    "create",
		Comment: "Make a thing",
		Method:  endpoint.MethodPost,
		URL:     "https://api.example.com/things",
		Headers: []endpoint.Header{{Name: "Content-Type", Value: "application/json"}},
		Body:    endpoint.Raw(endpoint.EncodingJSON, []byte(`{"a":1}`)),
	}

	want := "### Make a thing\n" +
		"# @name = create\n" +
		"POST https://api.example.com/things\n" +
		"Content-Type: application/json\n" +
		"\n" +
		"{\"a\":1}\n"

	test.Diff(t, ep.String(), want)
}
