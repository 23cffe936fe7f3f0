package pagination

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

const MaxLimit = 100

type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is the list envelope: total count, neighbour page links and results.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// FromQuery reads ?page= and ?limit=. Missing or malformed values fall back
// to page 1 and defaultLimit; limit is capped at MaxLimit.
func FromQuery(c *gin.Context, defaultLimit int) Params {
	p := Params{Page: 1, Limit: defaultLimit}

	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// New builds the envelope for one page of results. base is the request URL;
// its other query parameters are preserved in the links.
func New[T any](base *url.URL, p Params, count int64, results []T) Page[T] {
	if results == nil {
		results = []T{}
	}
	out := Page[T]{Count: count, Results: results}

	if int64(p.Page*p.Limit) < count {
		out.Next = pageLink(base, p.Page+1)
	}
	if p.Page > 1 {
		out.Previous = pageLink(base, p.Page-1)
	}
	return out
}

func pageLink(base *url.URL, page int) *string {
	if base == nil {
		return nil
	}
	u := *base
	q := u.Query()
	if page == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}

// RequestURL returns the absolute URL of the current request.
func RequestURL(c *gin.Context) *url.URL {
	u := *c.Request.URL
	u.Host = c.Request.Host
	u.Scheme = "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		u.Scheme = "https"
	}
	return &u
}
