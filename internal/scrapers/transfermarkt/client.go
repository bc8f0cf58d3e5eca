// client.go contains the transport to the site, it knows nothing about page contents.

package transfermarkt

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"tmscraper/internal/components/assert"
	"tmscraper/internal/components/restydump"
	"tmscraper/internal/components/telemetry"
	"tmscraper/pkg/htmlutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

// Fetcher returns the parsed document found at `path` on the site.
//
// note: fault injection point
type Fetcher interface {
	Document(ctx context.Context, path string, query url.Values) (htmlutil.Node, error)
}

type ClientOptions struct {
	BaseUrl   string
	UserAgent string
	// 0 means no timeout
	Timeout time.Duration
	// wraps the transport to look like a browser to cloudflare
	CloudflareBypass bool
	// when set, every exchange is written to this directory (cleared first)
	DumpDir string
}

// Client is the resty based Fetcher. It does not retry, failed requests are returned
// as errors to the caller.
type Client struct {
	http *resty.Client
	tel  telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel, "telemetry")
	tel = telemetry.NewScopedAPI("transfermarkt_client", tel)

	if _, err := url.ParseRequestURI(opts.BaseUrl); err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", opts.BaseUrl)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	if opts.UserAgent != "" {
		httpClient.SetHeader("user-agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	if opts.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	if opts.DumpDir != "" {
		output, err := restydump.NewFilesystemOutput(opts.DumpDir)
		if err != nil {
			return nil, errors.Wrapf(err, "dump dir %q", opts.DumpDir)
		}
		restydump.Attach(httpClient, output)
	}

	telemetry.InstrumentResty(httpClient, tel)

	return &Client{http: httpClient, tel: tel}, nil
}

func (c *Client) Document(ctx context.Context, path string, query url.Values) (htmlutil.Node, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s", path)
	}
	if res.IsError() {
		err := errors.Newf("fetch %s: unexpected status %s", path, res.Status())
		c.tel.ReportBroken(report_client_fetch, err)
		return nil, err
	}

	doc, err := htmlutil.ParseBytes(res.Body())
	if err != nil {
		c.tel.ReportBroken(report_client_fetch, errors.Wrap(err, "parse html"), path)
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return doc, nil
}

func searchPath() string {
	return "/schnellsuche/ergebnis/schnellsuche"
}

func profilePath(player PlayerIdentity) string {
	return fmt.Sprintf("/%s/profil/spieler/%s", player.ProfilePath, player.PlayerId)
}

func performancePath(player PlayerIdentity) string {
	return fmt.Sprintf("/%s/leistungsdaten/spieler/%s/0", player.ProfilePath, player.PlayerId)
}

func nationalTeamPath(player PlayerIdentity) string {
	return fmt.Sprintf("/%s/nationalmannschaft/spieler/%s", player.ProfilePath, player.PlayerId)
}
