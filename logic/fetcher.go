package logic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mention_herald/dto"
	"mention_herald/shared"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_fetcher.go -package mocks mention_herald/logic IFetcher

// IFetcher enriches a post or media reference with content and permalink from
// the Graph API.
type IFetcher interface {
	FetchPost(platform, postId, accessToken string) (*dto.PostDetails, error)
}

// The Graph API rejects fields that don't exist on the queried node type, so
// each platform gets its own field set.
const fbFieldsParam = "message,permalink_url"
const igFieldsParam = "caption,permalink"

const graphTimeoutSec = 10
const graphRetryMax = 2

var errNoAccessToken = errors.New("no access token for page")

type fetcher struct {
	cfg     *shared.Config
	logger  shared.ILogger
	metrics IMetrics
	client  *retryablehttp.Client
}

func NewFetcher(cfg *shared.Config, logger shared.ILogger, metrics IMetrics) IFetcher {
	client := retryablehttp.NewClient()
	client.Logger = nil
	client.RetryMax = graphRetryMax
	client.HTTPClient.Timeout = graphTimeoutSec * time.Second
	return &fetcher{cfg, logger, metrics, client}
}

func (f *fetcher) FetchPost(platform, postId, accessToken string) (*dto.PostDetails, error) {

	if accessToken == "" {
		f.logger.Warnf("No access token available; skipping content lookup for %s", postId)
		f.metrics.GraphRequestFailed()
		return nil, errNoAccessToken
	}

	obs := f.metrics.StartGraphRequestOut(platform)
	defer obs.Finish()

	fields := fbFieldsParam
	if platform == dto.PlatformInstagram {
		fields = igFieldsParam
	}

	query := url.Values{}
	query.Set("fields", fields)
	query.Set("access_token", accessToken)
	reqUrl := fmt.Sprintf("%s/%s?%s", f.cfg.GraphApiBase, url.PathEscape(postId), query.Encode())

	req, err := retryablehttp.NewRequest("GET", reqUrl, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Errorf("Content lookup for %s failed: %v", postId, err)
		f.metrics.GraphRequestFailed()
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.Errorf("Failed to read content lookup response for %s: %v", postId, err)
		f.metrics.GraphRequestFailed()
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var graphErr dto.GraphError
		if jsonErr := json.Unmarshal(bodyBytes, &graphErr); jsonErr == nil && graphErr.Error.Message != "" {
			f.logger.Errorf("Content lookup for %s got status %d: %s (code %d)",
				postId, resp.StatusCode, graphErr.Error.Message, graphErr.Error.Code)
		} else {
			f.logger.Errorf("Content lookup for %s got status %d", postId, resp.StatusCode)
		}
		f.metrics.GraphRequestFailed()
		return nil, fmt.Errorf("content lookup failed with status %d", resp.StatusCode)
	}

	var details dto.PostDetails
	if err = json.Unmarshal(bodyBytes, &details); err != nil {
		f.logger.Errorf("Failed to parse content lookup response for %s: %v", postId, err)
		f.metrics.GraphRequestFailed()
		return nil, err
	}

	return &details, nil
}
