package dto

// PostDetails is the enrichment we request from the Graph API content-lookup
// endpoint. Facebook posts answer with "message" and "permalink_url";
// Instagram media answer with "caption" and "permalink".
type PostDetails struct {
	Id           string `json:"id"`
	Message      string `json:"message"`
	PermalinkUrl string `json:"permalink_url"`
	Caption      string `json:"caption"`
	Permalink    string `json:"permalink"`
}

// Content returns the post text regardless of which platform answered.
func (pd *PostDetails) Content() string {
	if pd.Message != "" {
		return pd.Message
	}
	return pd.Caption
}

// Url returns the post permalink regardless of which platform answered.
func (pd *PostDetails) Url() string {
	if pd.PermalinkUrl != "" {
		return pd.PermalinkUrl
	}
	return pd.Permalink
}

// GraphError is the error envelope the Graph API returns on non-2xx.
type GraphError struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		FbtraceId string `json:"fbtrace_id"`
	} `json:"error"`
}
