package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Client is the remote strategy: it posts the draft context to the
// serve endpoint, which forwards it to the upstream completion API.
// Every failure mode collapses into ErrGenerationFailed.
type Client struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

// NewClient creates the remote strategy pointing at the serve
// endpoint URL.
func NewClient(endpoint string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{},
		log:      log,
	}
}

// Generate posts the input to the endpoint and copies the returned
// description, pros, and cons verbatim. Bullet counts are not
// validated; the endpoint's output is trusted as-is.
func (c *Client) Generate(ctx context.Context, in Input) (*Suggestion, error) {
	bodyBytes, err := json.Marshal(in)
	if err != nil {
		return nil, c.fail("marshaling request", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return nil, c.fail("creating request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.fail("calling enrichment endpoint", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail("reading response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.fail(
			fmt.Sprintf("endpoint status %d", resp.StatusCode),
			fmt.Errorf("%s", string(respBody)),
		)
	}

	var suggestion Suggestion
	if err := json.Unmarshal(respBody, &suggestion); err != nil {
		return nil, c.fail("decoding response", err)
	}

	return &suggestion, nil
}

// fail logs the underlying cause and returns the opaque failure.
func (c *Client) fail(stage string, err error) error {
	c.log.Debug("enrichment request failed", zap.String("stage", stage), zap.Error(err))
	return ErrGenerationFailed
}
