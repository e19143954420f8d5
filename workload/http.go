package workload

import (
	"fmt"

	"github.com/valyala/fasthttp"
)

// httpGet issues a GET request per iteration, measuring round-trip
// latency against a live endpoint.
type httpGet struct {
	url    string
	client *fasthttp.Client

	req  *fasthttp.Request
	resp *fasthttp.Response
}

func NewHTTPGet(url string) *httpGet {
	return &httpGet{
		url:    url,
		client: &fasthttp.Client{},
	}
}

func (w *httpGet) Name() string { return "http" }

func (w *httpGet) Setup() error {
	if w.req != nil {
		fasthttp.ReleaseRequest(w.req)
		fasthttp.ReleaseResponse(w.resp)
	}
	w.req = fasthttp.AcquireRequest()
	w.resp = fasthttp.AcquireResponse()
	w.req.SetRequestURI(w.url)
	return nil
}

func (w *httpGet) Core() error {
	if err := w.client.Do(w.req, w.resp); err != nil {
		return fmt.Errorf("GET %s: %w", w.url, err)
	}
	if code := w.resp.StatusCode(); code >= fasthttp.StatusInternalServerError {
		return fmt.Errorf("GET %s: unexpected status %d", w.url, code)
	}
	return nil
}
