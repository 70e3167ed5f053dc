package domain

// ImageAsset is one gallery entry. ID doubles as the blob-storage key;
// URL is derived from it at list time and never stored.
type ImageAsset struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}
