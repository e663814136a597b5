package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// envelope mirrors the storefront feed: products live under data.products.
type envelope struct {
	Data struct {
		Products []productDTO `json:"products"`
	} `json:"data"`
}

// productDTO is one product record as served by the storefront API. Field
// presence is unreliable; every accessor below treats absent as empty.
type productDTO struct {
	ID               flexString `json:"id"`
	Title            string     `json:"title"`
	Author           string     `json:"author"`
	Blurb            string     `json:"blurb"`
	Description      string     `json:"description"`
	Price            flexString `json:"price"`
	Runtime          int        `json:"runtime"`
	AgeRange         []*int     `json:"ageRange"`
	ContentType      []string   `json:"contentType"`
	AvailableForSale bool       `json:"availableForSale"`
	Flag             string     `json:"flag"`
}

// newToCatalogFlag is the storefront's novelty marker.
const newToCatalogFlag = "New to Yoto"

func (p *productDTO) description() string {
	if p.Blurb != "" {
		return p.Blurb
	}
	return p.Description
}

func (p *productDTO) price() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(p.Price)), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (p *productDTO) ageRange() (min, max int, ok bool) {
	if len(p.AgeRange) < 2 || p.AgeRange[0] == nil || p.AgeRange[1] == nil {
		return 0, 0, false
	}
	return *p.AgeRange[0], *p.AgeRange[1], true
}

// flexString decodes JSON strings and numbers alike; the feed serves price
// as a string and has served numeric ids.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}
