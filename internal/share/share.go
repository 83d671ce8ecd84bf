// Package share builds permalinks for a comparison and renders them as QR codes.
package share

import (
	"fmt"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/skip2/go-qrcode"

	"github.com/aaronzipp/player-compare/internal/models"
)

// Link returns baseURL with the selection as left/right query parameters. Empty slots are omitted.
func Link(baseURL string, sel models.Selection) string {
	q := url.Values{}
	if sel.Left != "" {
		q.Set("left", sel.Left)
	}
	if sel.Right != "" {
		q.Set("right", sel.Right)
	}
	link := strings.TrimRight(baseURL, "/") + "/"
	if len(q) > 0 {
		link += "?" + q.Encode()
	}
	return link
}

// QRCache renders QR code PNGs and keeps the most recent ones
type QRCache struct {
	size  int
	cache *lru.Cache[string, []byte]
}

// NewQRCache returns a cache of up to capacity PNGs of size pixels square
func NewQRCache(size, capacity int) (*QRCache, error) {
	c, err := lru.New[string, []byte](capacity)
	if err != nil {
		return nil, fmt.Errorf("creating qr cache: %w", err)
	}
	return &QRCache{size: size, cache: c}, nil
}

// PNG returns the QR code for content
func (q *QRCache) PNG(content string) ([]byte, error) {
	if png, ok := q.cache.Get(content); ok {
		return png, nil
	}
	png, err := qrcode.Encode(content, qrcode.Medium, q.size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	q.cache.Add(content, png)
	return png, nil
}

// Len returns the number of cached codes
func (q *QRCache) Len() int {
	return q.cache.Len()
}
