package courier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"go.followtheprocess.codes/courier/internal/bind"
	"go.followtheprocess.codes/courier/internal/config"
	"go.followtheprocess.codes/courier/internal/endpoint"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/log"
)

// Styles.
const (
	// headerKeyStyle is the style used for printing header keys
	// like Content-Type when we show the response on the command line.
	headerKeyStyle = hue.Cyan

	// dimmed is the style used for printing informational content like
	// response duration or endpoint name.
	dimmed = hue.BrightBlack | hue.Italic

	// success is the style used to render successful HTTP response status lines.
	success = hue.Green | hue.Bold

	// failure is the style used to render failed HTTP response status lines.
	failure = hue.Red | hue.Bold

	// sepWidth is the width in characters of the horizontal line separator
	// between HTTP responses.
	sepWidth = 80
)

// DefaultOverallTimeout is the default amount of time allowed for the entire
// execution when running multiple endpoints from a file.
const DefaultOverallTimeout = 1 * time.Minute

// RunOptions are the options passed to the run subcommand.
type RunOptions struct {
	// Output is the name of a file in which to save the response body, if empty,
	// the response is printed to stdout.
	Output string

	// Requests is the list of endpoint names to run, empty or nil means
	// run every endpoint in the file.
	Requests []string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// ConnectionTimeout is the per-request connection timeout.
	ConnectionTimeout time.Duration

	// OverallTimeout is the overall timeout, used when running multiple requests.
	OverallTimeout time.Duration

	// Pick, if true, selects the endpoints to run interactively.
	Pick bool

	// NoRedirect, if true, disables following http redirects.
	NoRedirect bool

	// Insecure, if true, skips TLS certificate verification.
	Insecure bool

	// Debug enables debug logging.
	Debug bool
}

// WithConfig returns a copy of r with anything not set on the command line
// taken from cfg.
func (r RunOptions) WithConfig(cfg config.Config) RunOptions {
	if r.Timeout == 0 {
		r.Timeout = cfg.Timeout.Std()
	}

	if r.ConnectionTimeout == 0 {
		r.ConnectionTimeout = cfg.ConnectionTimeout.Std()
	}

	if r.OverallTimeout == 0 {
		r.OverallTimeout = DefaultOverallTimeout
	}

	r.NoRedirect = r.NoRedirect || cfg.NoRedirect
	r.Insecure = r.Insecure || cfg.Insecure

	return r
}

// Validate reports whether the RunOptions is valid, returning an error
// if it's not.
//
// nil means the options are valid.
func (r RunOptions) Validate() error {
	switch {
	case r.Timeout <= 0:
		return errors.New("timeout must be positive")
	case r.ConnectionTimeout <= 0:
		return errors.New("connection-timeout must be positive")
	case r.OverallTimeout <= 0:
		return errors.New("overall-timeout must be positive")
	case r.ConnectionTimeout >= r.Timeout:
		return fmt.Errorf("connection-timeout (%s) cannot be larger than timeout (%s)", r.ConnectionTimeout, r.Timeout)
	case r.Timeout > r.OverallTimeout:
		return fmt.Errorf("timeout (%s) cannot be larger than overall-timeout (%s)", r.Timeout, r.OverallTimeout)
	case r.Pick && len(r.Requests) != 0:
		return errors.New("--pick and --request are mutually exclusive")
	default:
		return nil
	}
}

// Run implements the run subcommand.
func (c Courier) Run(ctx context.Context, file string, options RunOptions) error {
	logger := c.logger.Prefixed("run").With(slog.String("file", file))

	logger.Debug("Run configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	if err := options.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, options.OverallTimeout)
	defer cancel()

	doc, err := c.selectEndpoints(ctx, logger, file, options.Requests, options.Pick)
	if err != nil {
		return err
	}

	client := NewHTTPClient(ClientOptions{
		Timeout:           options.Timeout,
		ConnectionTimeout: options.ConnectionTimeout,
		NoRedirect:        options.NoRedirect,
		Insecure:          options.Insecure,
	})

	for _, ep := range doc.Endpoints {
		logger.Debug(
			"Executing endpoint",
			slog.String("endpoint", ep.Name),
			slog.String("method", ep.Method.String()),
			slog.String("url", ep.URL),
		)

		response, err := c.doRequest(ctx, logger, client, ep)
		if err != nil {
			return err
		}

		if options.Output != "" {
			if err := os.WriteFile(options.Output, response.Body, 0o644); err != nil {
				return fmt.Errorf("could not save response: %w", err)
			}

			logger.Debug("Saved response body", slog.String("output", options.Output))

			response.Body = nil
		}

		c.showResponse(doc.Name, ep, response)
	}

	return nil
}

// Response is a compact version of a [http.Response] with only the data we need
// to display a HTTP response to a user.
type Response struct {
	Header        http.Header   // Response headers
	Status        string        // E.g. "200 OK"
	Proto         string        // e.g. "HTTP/1.1"
	Body          []byte        // The read body
	StatusCode    int           // HTTP status code
	ContentLength int           // len(Body)
	Duration      time.Duration // Duration of the request/response round trip
}

// doRequest binds and executes a single endpoint.
func (c Courier) doRequest(ctx context.Context, logger *log.Logger, client *http.Client, ep endpoint.Endpoint) (Response, error) {
	request, err := bind.Bind(ep)
	if err != nil {
		return Response{}, fmt.Errorf("endpoint %s: %w", ep.Name, err)
	}

	req, err := request.HTTPRequest(ctx)
	if err != nil {
		return Response{}, fmt.Errorf("endpoint %s: %w", ep.Name, err)
	}

	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", "go.followtheprocess.codes/courier "+c.version)
	}

	start := time.Now()

	res, err := client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("HTTP response error: %w", err)
	}
	defer res.Body.Close()

	duration := time.Since(start)

	logger.Debug(
		"Received HTTP response from URL",
		slog.String("url", req.URL.String()),
		slog.Int("status", res.StatusCode),
		slog.String("content-type", res.Header.Get("Content-Type")),
		slog.Duration("duration", duration),
	)

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, fmt.Errorf("could not read HTTP response body: %w", err)
	}

	response := Response{
		Status:        res.Status,
		StatusCode:    res.StatusCode,
		Proto:         res.Proto,
		Header:        res.Header,
		Body:          body,
		ContentLength: len(body),
		Duration:      duration,
	}

	return response, nil
}

// showResponse prints the response in a user friendly way to c.stdout.
func (c Courier) showResponse(file string, ep endpoint.Endpoint, response Response) {
	fmt.Fprintln(c.stdout)

	fmt.Fprintf(c.stdout, "%s: %s\n", hue.Bold.Text(file), dimmed.Text(ep.Name))

	fmt.Fprintln(c.stdout, strings.Repeat("─", sepWidth)+"\n")

	status := success
	if response.StatusCode >= http.StatusBadRequest {
		status = failure
	}

	fmt.Fprintf(
		c.stdout,
		"%s %s (%s)\n",
		hue.Bold.Text(response.Proto),
		status.Text(response.Status),
		dimmed.Text(response.Duration.String()),
	)

	fmt.Fprintln(c.stdout) // Line space

	for _, key := range slices.Sorted(maps.Keys(response.Header)) {
		fmt.Fprintf(c.stdout, "%s: %s\n", headerKeyStyle.Text(key), response.Header.Get(key))
	}

	if len(response.Body) != 0 {
		fmt.Fprintln(c.stdout) // Line space
		fmt.Fprintln(c.stdout, string(response.Body))
	}
}
