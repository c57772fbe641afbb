package pagination

import (
	"net/url"
	"strconv"

	"jsonviews/pkg/apiinfo"
)

// PageRequest selects a slice of a remote collection. Zero fields are omitted
// and the remote side falls back to returning everything.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) Values() url.Values {
	v := url.Values{}
	if p.Limit > 0 {
		v.Set(apiinfo.LimitParam, strconv.Itoa(p.Limit))
	}
	if p.Page > 0 {
		v.Set(apiinfo.PageParam, strconv.Itoa(p.Page))
	}
	return v
}

func FirstPage(limit int) PageRequest {
	return PageRequest{Limit: limit}
}
