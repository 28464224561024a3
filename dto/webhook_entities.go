package dto

// Envelope is the outer object Meta POSTs to the webhook endpoint. The same
// shape arrives for both Facebook Pages ("page") and Instagram ("instagram").
type Envelope struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry is one change notification for one monitored page or account.
type Entry struct {
	Id      string   `json:"id"`
	Time    int64    `json:"time"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue is the union of the fields the two platforms deliver for a
// comment change. Facebook "feed" changes carry Item, PostId, Message and
// From.Name; Instagram "comments" changes carry MediaId, Text and
// From.Username.
type ChangeValue struct {
	Item        string  `json:"item"`
	Verb        string  `json:"verb"`
	CommentId   string  `json:"comment_id"`
	PostId      string  `json:"post_id"`
	Message     string  `json:"message"`
	CreatedTime int64   `json:"created_time"`
	Id          string  `json:"id"`
	Text        string  `json:"text"`
	Media       *Media  `json:"media"`
	From        FromRef `json:"from"`
}

type Media struct {
	Id               string `json:"id"`
	MediaProductType string `json:"media_product_type"`
}

type FromRef struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
