package restapi

// listingResponse is one page of the source's search endpoint.
type listingResponse struct {
	Items    []listingItem `json:"items"`
	NextPage string        `json:"nextPage"`
	HasMore  bool          `json:"hasMore"`
}

type listingItem struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	URL  string `json:"url"`
}

// detailResponse is the full record of one item.
type detailResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   *string           `json:"description"`
	CreatedDate   string            `json:"createdDate"`
	PublishedDate string            `json:"publishedDate"`
	Attributes    map[string]string `json:"attributes"`
	Assets        []detailAsset     `json:"assets"`
}

type detailAsset struct {
	URL       string `json:"url"`
	Size      int64  `json:"size"`
	Extension string `json:"extension"`
}
