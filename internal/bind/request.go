package bind

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"go.followtheprocess.codes/courier/internal/endpoint"
)

// HTTPRequest builds a [http.Request] ready to be handed to a [http.Client].
//
// The body is encoded according to its kind, and a Content-Type header is added
// if the endpoint did not set one itself. The receiver is not modified.
func (r Request) HTTPRequest(ctx context.Context) (*http.Request, error) {
	if r.URL == nil {
		return nil, fmt.Errorf("%w: request was not bound", ErrInvalidURL)
	}

	body, contentType, err := encodeBody(r.Body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, string(r.Method), r.URL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("could not build HTTP request: %w", err)
	}

	req.Header = r.Header.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}

// encodeBody returns a reader over the encoded body along with the content type
// it should be sent with. A nil reader means no body.
func encodeBody(body endpoint.Body) (io.Reader, string, error) {
	switch body.Kind {
	case endpoint.KindRaw:
		if len(body.Content) == 0 {
			return nil, "", nil
		}

		return bytes.NewReader(body.Content), body.Encoding.ContentType(), nil
	case endpoint.KindURLEncoded:
		values := make(url.Values)
		for _, field := range body.Fields {
			if field.Disabled {
				continue
			}

			values.Add(field.Name, field.Value)
		}

		return bytes.NewBufferString(values.Encode()), "application/x-www-form-urlencoded", nil
	case endpoint.KindMultipart:
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)

		for _, field := range body.Fields {
			if field.Disabled {
				continue
			}

			if err := writer.WriteField(field.Name, field.Value); err != nil {
				return nil, "", fmt.Errorf("could not write multipart field %s: %w", field.Name, err)
			}
		}

		if err := writer.Close(); err != nil {
			return nil, "", fmt.Errorf("could not finish multipart body: %w", err)
		}

		return buf, writer.FormDataContentType(), nil
	default:
		return nil, "", nil
	}
}
