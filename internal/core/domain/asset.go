package domain

// HostedAsset references a binary object held by the external media provider.
// At most one asset is live per reference slot; replacing it must remove the
// previous object from the provider.
type HostedAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"-"`
}
