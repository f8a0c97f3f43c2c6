package display

import "github.com/goliatone/go-storefront/pkg/catalog"

// DefaultImageRole tags the image the catalog designates as the main
// product shot.
const DefaultImageRole = "image"

// SelectImage returns the first product image whose role set contains role.
// An empty role skips role filtering and returns the first image outright.
// The second return value is false when no image qualifies.
func SelectImage(p catalog.Product, role string) (catalog.Image, bool) {
	if role == "" {
		if len(p.Images) == 0 {
			return catalog.Image{}, false
		}
		return p.Images[0], true
	}
	for _, img := range p.Images {
		if img.HasRole(role) {
			return img, true
		}
	}
	return catalog.Image{}, false
}

// BuildImageList projects the images to their URLs in order, moving
// primaryURL to the front when it appears in the list. An absent or unknown
// primaryURL leaves the order unchanged.
func BuildImageList(primaryURL string, images []catalog.Image) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	if primaryURL == "" {
		return urls
	}
	for i, url := range urls {
		if url == primaryURL {
			return append(append([]string{url}, urls[:i]...), urls[i+1:]...)
		}
	}
	return urls
}
